package t2048

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// preset stores the spawn preset set via CLI
var preset config.Preset

// bestScoreSource opens the best-score record for a game ID
var bestScoreSource func(gameID string) BestScoreStore

// logger is shared by every game instance
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the spawn preset ("classic", "easy", "hard").
func SetPreset(name string) {
	preset = config.ParsePreset(name)
}

// SetBestScoreSource sets where games keep their best score.
// Without one the best score lives in memory only.
func SetBestScoreSource(source func(gameID string) BestScoreStore) {
	bestScoreSource = source
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Controller to the tick-driven platform loop and acts as its
// rendering collaborator.
type Game struct {
	variant variant
	cfg     config.T2048Config
	ctrl    *Controller
	ctx     context.Context
	log     *log.Logger
	tick    uint64

	// Screen dimensions
	screenW int
	screenH int

	// Layout received from the controller
	size  int
	cellW int
	cellH int

	paused   bool
	tooSmall bool
	prompt   *prompt
	fx       transitions
	over     *gameOverNotice

	// Best score kept across restarts when no persistent store is set
	memBest memoryBestScore
}

func newGame(v variant) *Game {
	return &Game{variant: v}
}

// bestScores returns the persistent record for this variant, or the
// in-memory one.
func (g *Game) bestScores() BestScoreStore {
	if bestScoreSource != nil {
		if store := bestScoreSource(g.variant.id); store != nil {
			return store
		}
	}
	return &g.memBest
}

// memoryBestScore is a BestScoreStore that lives as long as the game.
type memoryBestScore struct {
	score int
}

func (m *memoryBestScore) LoadBestScore(context.Context) (int, error) {
	return m.score, nil
}

func (m *memoryBestScore) SaveBestScore(_ context.Context, score int) error {
	m.score = score
	return nil
}

func (m *memoryBestScore) ClearBestScore(context.Context) error {
	m.score = 0
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.title
}

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ctx = context.Background()
	g.log = logger.With("game", g.variant.id)
	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.paused = false
	g.prompt = nil

	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		g.log.Warn("could not load config, using defaults", "path", configPath, "error", err)
	}
	config.ApplyT2048Preset(&cfg, preset)
	if g.variant.size > 0 {
		cfg.Grid.Size = g.variant.size
		cfg.Spawn.InitialTiles = min(cfg.Spawn.InitialTiles, g.variant.size*g.variant.size)
	}
	g.cfg = cfg
	g.fx = newTransitions(cfg.Transitions.SlideTicks, cfg.Transitions.PopTicks)

	opts := []Option{WithRenderer(g), WithLogger(g.log), WithBestScoreStore(g.bestScores())}
	g.ctrl = NewController(Options{
		Size:             cfg.Grid.Size,
		InitialTiles:     cfg.Spawn.InitialTiles,
		FourProbability:  cfg.Spawn.FourProbability,
		AwaitTransitions: cfg.Transitions.Await,
		CellWidth:        cfg.Render.CellWidth,
		CellHeight:       cfg.Render.CellHeight,
	}, runtime.Seed, opts...)
	g.ctrl.StartGame(g.ctx)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.fx.advance() {
		g.ctrl.AcknowledgeTransitions()
	}

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.prompt != nil {
		switch {
		case in.Has(core.ActionConfirm):
			g.answerPrompt(true)
		case in.Has(core.ActionCancel), in.Has(core.ActionNewGame), in.Has(core.ActionResetBest):
			g.answerPrompt(false)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && g.over == nil {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionNewGame):
		g.request(g.newGame)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionResetBest):
		g.request(g.resetBest)
		return core.StepResult{State: g.State()}
	}

	// Restart after game over is done by the platform via Reset
	if g.over != nil {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		out, err := g.ctrl.ApplyMove(g.ctx, dir)
		if err != nil {
			g.log.Error("move failed", "direction", dir, "error", err)
		} else if !out.Rejected {
			g.log.Debug("move", "direction", dir, "gained", out.Gained, "score", g.ctrl.Score())
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps the first direction action in the frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

func (g *Game) newGame(c Confirmer) bool {
	return g.ctrl.NewGame(g.ctx, c)
}

func (g *Game) resetBest(c Confirmer) bool {
	ok, err := g.ctrl.ResetBestScore(g.ctx, c)
	if err != nil {
		g.log.Error("reset best score", "error", err)
	}
	if ok && g.over != nil {
		g.over.best = 0
	}
	return ok
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		Best:     g.ctrl.Best(),
		GameOver: g.over != nil,
		Paused:   g.paused || g.tooSmall || g.prompt != nil,
		MadeMove: g.ctrl.HasUnsavedProgress(),
		MaxTile:  g.ctrl.Grid().MaxTile(),
	}
}

// Controller exposes the session controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Layout is called by the controller at the start of every session.
func (g *Game) Layout(size, cellWidth, cellHeight int) {
	g.size = size
	g.cellW = cellWidth
	g.cellH = cellHeight
	g.over = nil
	g.paused = false
	g.fx.clear()
	g.checkScreenSize()
}

// TileSpawned queues the pop of a new tile.
func (g *Game) TileSpawned(id uint64, x, y, value int) {
	g.fx.spawn(id, x, y, value)
}

// TilesMoved starts the slide of a resolved move.
func (g *Game) TilesMoved(moves []TileMove, merges []TileMerge) {
	g.fx.startSlide(moves, merges)
}

// GameOver shows the final result.
func (g *Game) GameOver(final, best int, newBest bool) {
	g.over = &gameOverNotice{final: final, best: best, newBest: newBest}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	minW := boardW + 4
	minH := boardH + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen dimensions without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}
