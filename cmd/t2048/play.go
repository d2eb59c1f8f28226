package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: 2048).

Controls:
  Arrows/WASD/HJKL - Slide tiles
  N                - New game (asks if progress would be lost)
  X                - Reset best score (asks first)
  Y/Enter, Esc     - Answer a question
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit (asks if progress would be lost)

Presets:
  classic - Spawned tiles are 2 or 4 with equal odds
  easy    - Mostly 2s
  hard    - Mostly 4s

Examples:
  t2048 play
  t2048 play 2048_6x6
  t2048 play --preset hard
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if _, err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
