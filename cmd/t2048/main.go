// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list               - List board variants
//	t2048 play [variant]     - Play a board (default: 2048)
//	t2048 menu               - Pick a board interactively
//	t2048 scores [variant]   - Show high scores and the best score
//	t2048 reset [variant]    - Erase the stored best score
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.t2048/scores.db)
//	--config <path>     - Use a custom config YAML
//	--preset <name>     - Spawn preset: classic, easy, hard
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
)

// logFile is closed on exit when --log-file is set.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys. Equal tiles that collide merge
into one tile worth their sum. Reach 2048 and keep going until the
board locks up.

Available commands:
  list     - Show the board variants
  play     - Play a board directly
  menu     - Interactive board picker
  scores   - View high scores
  reset    - Erase the stored best score
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play 2048_5x5 --preset easy
  t2048 menu
  t2048 reset --yes
  t2048 serve --ssh :2222`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Spawn preset: classic, easy, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies the global flags to the game package before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	t2048.SetConfigPath(flagConfig)
	t2048.SetPreset(flagPreset)

	if flagLogFile == "" {
		return nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	t2048.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "t2048",
	}))
	return nil
}

// openStore opens the scores database and binds it as the best-score record.
// Games still run without it, keeping the best score in memory.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	tui.BindBestScores(store)
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// variantArg returns the variant named by args, defaulting to the classic board.
func variantArg(args []string) (string, error) {
	if len(args) == 0 {
		return t2048.New().ID(), nil
	}
	if !t2048.IsVariant(args[0]) {
		return "", fmt.Errorf("unknown variant %q, run 't2048 list' to see available boards", args[0])
	}
	return args[0], nil
}
