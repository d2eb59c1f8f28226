package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagResetYes     bool
	flagResetHistory bool
)

var resetCmd = &cobra.Command{
	Use:   "reset [variant]",
	Short: "Erase the stored best score",
	Long: `Erase the best score of a board variant (default: 2048).

A confirmation dialog is shown first unless --yes is given.

Examples:
  t2048 reset
  t2048 reset 2048_5x5 --yes
  t2048 reset --history   # also delete finished games`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVar(&flagResetHistory, "history", false, "Also delete the score history")
}

func runReset(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	var confirm t2048.Confirmer
	var prompt *tui.PromptConfirmer
	if flagResetYes {
		confirm = t2048.ConfirmFunc(func(string) bool { return true })
	} else {
		cfg := runtimeConfig()
		prompt = &tui.PromptConfirmer{Width: cfg.ScreenW, Height: cfg.ScreenH}
		confirm = prompt
	}

	ctrl := t2048.NewController(t2048.DefaultOptions(), flagSeed,
		t2048.WithBestScoreStore(store.BestScoresFor(gameID)))

	erased, err := ctrl.ResetBestScore(context.Background(), confirm)
	if err != nil {
		return err
	}
	if prompt != nil && prompt.Err != nil {
		return fmt.Errorf("error showing confirmation: %w", prompt.Err)
	}
	if !erased {
		fmt.Println("Nothing was erased.")
		return nil
	}

	if flagResetHistory {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("error clearing score history: %w", err)
		}
	}

	fmt.Printf("Best score for %s erased.\n", gameID)
	return nil
}
