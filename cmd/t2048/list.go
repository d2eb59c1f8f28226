package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board variants",
	Long:  `Shows every registered board variant with its stored best score.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	bests := map[string]int{}
	if store, err := storage.Open(flagDBPath); err == nil {
		for _, g := range registry.List() {
			if best, err := store.BestScore(context.Background(), g.ID); err == nil {
				bests[g.ID] = best
			}
		}
		store.Close()
	}

	writeBoardList(os.Stdout, registry.List(), bests)
}

// writeBoardList prints one row per variant. Variants without a record show "-".
func writeBoardList(w io.Writer, boards []registry.GameInfo, bests map[string]int) {
	if len(boards) == 0 {
		fmt.Fprintln(w, "No boards available.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle\tBest")
	fmt.Fprintln(tw, "  --\t-----\t----")
	for _, b := range boards {
		best := "-"
		if n := bests[b.ID]; n > 0 {
			best = fmt.Sprint(n)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", b.ID, b.Title, best)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 't2048 play <id>' to play a board.")
}
