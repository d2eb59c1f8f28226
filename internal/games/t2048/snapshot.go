package t2048

// SnapshotState is the coarse state reported in a snapshot.
type SnapshotState string

const (
	SnapshotPlaying     SnapshotState = "playing"
	SnapshotPrompt      SnapshotState = "prompt"
	SnapshotPaused      SnapshotState = "paused"
	SnapshotGameOver    SnapshotState = "game_over"
	SnapshotPausedSmall SnapshotState = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	GameID   string
	Size     int
	Score    int
	Best     int
	Board    [][]int // Board[y][x], 0 for empty
	MaxTile  int
	State    SnapshotState
	Phase    State
	MadeMove bool
	Awaiting bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := SnapshotPlaying
	switch {
	case g.tooSmall:
		state = SnapshotPausedSmall
	case g.prompt != nil:
		state = SnapshotPrompt
	case g.over != nil:
		state = SnapshotGameOver
	case g.paused:
		state = SnapshotPaused
	}

	return Snapshot{
		Tick:     g.tick,
		GameID:   g.variant.id,
		Size:     g.ctrl.Grid().Size(),
		Score:    g.ctrl.Score(),
		Best:     g.ctrl.Best(),
		Board:    g.ctrl.Grid().Values(),
		MaxTile:  g.ctrl.Grid().MaxTile(),
		State:    state,
		Phase:    g.ctrl.State(),
		MadeMove: g.ctrl.HasUnsavedProgress(),
		Awaiting: g.ctrl.Awaiting(),
	}
}
