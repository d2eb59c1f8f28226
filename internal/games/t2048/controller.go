package t2048

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// State is the controller state.
type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
	StateGameOver  State = "gameover"
)

const (
	eventMove   = "move"
	eventSettle = "settle"
	eventEnd    = "end"
)

// Prompts shown by the lifecycle collaborator.
const (
	MsgNewGame   = "Your progress will be lost. Continue leaving?"
	MsgResetBest = "You want to reset your data? Your data will be lost forever!"
)

// BestScoreStore persists the best score across sessions.
// A store with nothing saved reports 0.
type BestScoreStore interface {
	LoadBestScore(ctx context.Context) (int, error)
	SaveBestScore(ctx context.Context, score int) error
	ClearBestScore(ctx context.Context) error
}

// Renderer receives board changes after the logical state has settled.
type Renderer interface {
	Layout(size, cellWidth, cellHeight int)
	TileSpawned(id uint64, x, y, value int)
	TilesMoved(moves []TileMove, merges []TileMerge)
	GameOver(final, best int, newBest bool)
}

// Confirmer asks the user before destructive actions.
type Confirmer interface {
	ConfirmDestructiveAction(message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(message string) bool

// ConfirmDestructiveAction calls f(message).
func (f ConfirmFunc) ConfirmDestructiveAction(message string) bool {
	return f(message)
}

// Options configures a Controller.
type Options struct {
	Size             int
	InitialTiles     int
	FourProbability  float64 // Chance a spawned tile is 4 instead of 2
	AwaitTransitions bool    // Hold input until AcknowledgeTransitions
	CellWidth        int     // Layout hint for the renderer
	CellHeight       int
}

// DefaultOptions returns the classic 4x4 setup.
func DefaultOptions() Options {
	return Options{
		Size:            4,
		InitialTiles:    2,
		FourProbability: 0.5,
		CellWidth:       7,
		CellHeight:      2,
	}
}

// MoveOutcome reports what ApplyMove did.
type MoveOutcome struct {
	Rejected  bool
	Gained    int
	Merges    int
	SpawnedID uint64
	GameOver  bool
	NewBest   bool
}

type gameOverNotice struct {
	final, best int
	newBest     bool
}

// Controller owns one game session: the grid, the score and the best score.
// It is not safe for concurrent use.
type Controller struct {
	opts     Options
	machine  *fsm.FSM
	grid     *Grid
	rng      *rand.Rand
	nextID   uint64
	score    int
	best     int
	madeMove bool

	awaiting    bool
	pendingOver *gameOverNotice

	store    BestScoreStore
	renderer Renderer
	logger   *log.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithBestScoreStore sets the persistence collaborator.
func WithBestScoreStore(s BestScoreStore) Option {
	return func(c *Controller) { c.store = s }
}

// WithRenderer sets the rendering collaborator.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller. Call StartGame before the first move.
func NewController(opts Options, seed int64, options ...Option) *Controller {
	c := &Controller{
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		renderer: nopRenderer{},
		logger:   log.New(io.Discard),
	}
	for _, o := range options {
		o(c)
	}
	if c.opts.Size < 2 {
		c.opts.Size = 2
	}
	c.opts.InitialTiles = max(1, min(c.opts.InitialTiles, c.opts.Size*c.opts.Size))

	c.machine = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventMove, Src: []string{string(StateIdle)}, Dst: string(StateResolving)},
			{Name: eventSettle, Src: []string{string(StateResolving)}, Dst: string(StateIdle)},
			{Name: eventEnd, Src: []string{string(StateResolving)}, Dst: string(StateGameOver)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug("state change", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	c.grid = NewGrid(c.opts.Size)
	return c
}

// StartGame resets the score, builds a new grid and spawns the initial tiles.
func (c *Controller) StartGame(ctx context.Context) {
	c.score = 0
	c.madeMove = false
	c.awaiting = false
	c.pendingOver = nil
	c.nextID = 0
	c.grid = NewGrid(c.opts.Size)
	c.machine.SetState(string(StateIdle))
	c.best = c.loadBest(ctx)

	c.renderer.Layout(c.opts.Size, c.opts.CellWidth, c.opts.CellHeight)
	for range c.opts.InitialTiles {
		c.spawnTile()
	}
	c.logger.Info("game started", "size", c.opts.Size, "best", c.best)
}

// Restore resumes a session on an existing grid, such as one rebuilt with
// GridFromValues. The controller takes ownership of g. A grid with no legal
// move puts the controller straight into the game-over state.
func (c *Controller) Restore(ctx context.Context, g *Grid, score int) {
	c.opts.Size = g.Size()
	c.grid = g
	c.nextID = g.maxTileID()
	c.score = max(score, 0)
	c.madeMove = false
	c.awaiting = false
	c.pendingOver = nil
	c.best = c.loadBest(ctx)
	c.renderer.Layout(c.opts.Size, c.opts.CellWidth, c.opts.CellHeight)

	if c.Movable() {
		c.machine.SetState(string(StateIdle))
	} else {
		c.machine.SetState(string(StateGameOver))
	}
	c.logger.Info("game restored", "size", c.opts.Size, "score", c.score, "state", c.machine.Current())
}

// NewGame starts over. When a move has been made in a game that is not over,
// confirm must approve MsgNewGame first; a nil confirm declines.
func (c *Controller) NewGame(ctx context.Context, confirm Confirmer) bool {
	if c.HasUnsavedProgress() {
		if confirm == nil || !confirm.ConfirmDestructiveAction(MsgNewGame) {
			return false
		}
	}
	c.StartGame(ctx)
	return true
}

// ResetBestScore erases the persisted best score after confirm approves
// MsgResetBest. The in-memory best is cleared even if the store fails.
func (c *Controller) ResetBestScore(ctx context.Context, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm.ConfirmDestructiveAction(MsgResetBest) {
		return false, nil
	}
	c.best = 0
	if c.store == nil {
		return true, nil
	}
	if err := c.store.ClearBestScore(ctx); err != nil {
		c.logger.Warn("could not clear best score", "error", err)
		return true, fmt.Errorf("t2048: clear best score: %w", err)
	}
	return true, nil
}

// ApplyMove resolves one move. The move is rejected, with nothing changed,
// unless the controller is idle, no transition acknowledgment is pending and
// dir can move the board.
func (c *Controller) ApplyMove(ctx context.Context, dir Direction) (MoveOutcome, error) {
	if !c.machine.Is(string(StateIdle)) || c.awaiting || !c.CanMove(dir) {
		return MoveOutcome{Rejected: true}, nil
	}
	// A refused fsm event stays pending and would block every later move.
	if err := ctx.Err(); err != nil {
		return MoveOutcome{Rejected: true}, err
	}
	if err := c.machine.Event(ctx, eventMove); err != nil {
		return MoveOutcome{}, fmt.Errorf("t2048: begin move: %w", err)
	}

	result := Resolve(c.grid, dir)
	c.madeMove = true
	c.score += result.Gained
	c.renderer.TilesMoved(result.Moves, result.Merges)

	spawned := c.spawnTile()
	out := MoveOutcome{
		Gained:    result.Gained,
		Merges:    len(result.Merges),
		SpawnedID: spawned.ID(),
	}
	c.awaiting = c.opts.AwaitTransitions

	if c.Movable() {
		if err := c.machine.Event(ctx, eventSettle); err != nil {
			return out, fmt.Errorf("t2048: settle move: %w", err)
		}
		return out, nil
	}

	if err := c.machine.Event(ctx, eventEnd); err != nil {
		return out, fmt.Errorf("t2048: end game: %w", err)
	}
	out.GameOver = true
	out.NewBest = c.finishGame(ctx)
	return out, nil
}

// AcknowledgeTransitions tells the controller the renderer finished showing
// the last move. It reopens input and delivers a deferred game-over notice.
func (c *Controller) AcknowledgeTransitions() {
	c.awaiting = false
	if c.pendingOver != nil {
		notice := *c.pendingOver
		c.pendingOver = nil
		c.renderer.GameOver(notice.final, notice.best, notice.newBest)
	}
}

// CanMove reports whether dir would move at least one tile.
func (c *Controller) CanMove(dir Direction) bool {
	return CanMove(c.grid.Lines(dir))
}

// Movable reports whether any direction can move.
func (c *Controller) Movable() bool {
	for _, dir := range Directions {
		if c.CanMove(dir) {
			return true
		}
	}
	return false
}

// HasUnsavedProgress reports whether leaving now would lose a game in progress.
func (c *Controller) HasUnsavedProgress() bool {
	return c.madeMove && !c.machine.Is(string(StateGameOver))
}

// State returns the current state.
func (c *Controller) State() State {
	return State(c.machine.Current())
}

// Awaiting reports whether input is held for a transition acknowledgment.
func (c *Controller) Awaiting() bool {
	return c.awaiting
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.score
}

// Best returns the best score as of the last load or game over.
func (c *Controller) Best() int {
	return c.best
}

// Grid returns the current grid. Callers must not mutate it.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Options returns the options in effect.
func (c *Controller) Options() Options {
	return c.opts
}

// finishGame compares the final score with the stored best, saves it when
// beaten and issues (or defers) the game-over notification.
func (c *Controller) finishGame(ctx context.Context) bool {
	best := c.loadBest(ctx)
	newBest := c.score > best
	if newBest {
		best = c.score
		if c.store != nil {
			if err := c.store.SaveBestScore(ctx, c.score); err != nil {
				c.logger.Warn("could not save best score", "score", c.score, "error", err)
			}
		}
	}
	c.best = best
	c.logger.Info("game over", "score", c.score, "best", best, "new_best", newBest)

	notice := gameOverNotice{final: c.score, best: best, newBest: newBest}
	if c.awaiting {
		c.pendingOver = &notice
	} else {
		c.renderer.GameOver(notice.final, notice.best, notice.newBest)
	}
	return newBest
}

// loadBest reads the stored best score. Any failure counts as no record.
func (c *Controller) loadBest(ctx context.Context) int {
	if c.store == nil {
		return c.best
	}
	best, err := c.store.LoadBestScore(ctx)
	if err != nil {
		c.logger.Warn("could not load best score, using 0", "error", err)
		return 0
	}
	return max(best, 0)
}

// spawnTile places a new 2 or 4 on a random empty cell.
func (c *Controller) spawnTile() *Tile {
	if c.grid.EmptyCount() == 0 {
		panic(fmt.Errorf("t2048: spawn requested on a full grid: %w", ErrNoEmptyCell))
	}
	value := 2
	if c.rng.Float64() < c.opts.FourProbability {
		value = 4
	}
	cell, err := c.grid.RandomEmptyCell(c.rng)
	if err != nil {
		panic(err)
	}

	c.nextID++
	tile := NewTile(c.nextID, value)
	cell.SetTile(tile)
	c.renderer.TileSpawned(tile.ID(), cell.X(), cell.Y(), value)
	return tile
}

type nopRenderer struct{}

func (nopRenderer) Layout(int, int, int) {}
func (nopRenderer) TileSpawned(uint64, int, int, int) {}
func (nopRenderer) TilesMoved([]TileMove, []TileMerge) {}
func (nopRenderer) GameOver(int, int, bool) {}
