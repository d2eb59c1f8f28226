package t2048

// transitionPhase is the visual phase currently playing.
type transitionPhase int

const (
	phaseNone transitionPhase = iota
	phaseSlide
	phasePop
)

// tileTransition is one tile being drawn somewhere other than its cell.
type tileTransition struct {
	id       uint64
	value    int
	fromX    int
	fromY    int
	toX      int
	toY      int
	progress float64 // 0.0 → 1.0
	merging  bool
}

// transitions tracks the slide and pop phases that follow a move. The board
// is already final while they play; they only change what is drawn.
type transitions struct {
	phase      transitionPhase
	ticks      int
	slideTicks int
	popTicks   int

	sliding  []tileTransition
	preMerge map[uint64]int // settled tile ID → value before its merge
	pending  []tileTransition
	popping  []tileTransition
	merged   map[uint64]bool
}

func newTransitions(slideTicks, popTicks int) transitions {
	return transitions{
		slideTicks: max(slideTicks, 0),
		popTicks:   max(popTicks, 0),
	}
}

// clear drops everything in flight.
func (t *transitions) clear() {
	t.phase = phaseNone
	t.ticks = 0
	t.sliding = nil
	t.preMerge = nil
	t.pending = nil
	t.popping = nil
	t.merged = nil
}

// active reports whether any phase is playing.
func (t *transitions) active() bool {
	return t.phase != phaseNone
}

// startSlide begins the slide phase for one move.
func (t *transitions) startSlide(moves []TileMove, merges []TileMerge) {
	t.clear()
	t.preMerge = make(map[uint64]int, len(merges))
	t.merged = make(map[uint64]bool, len(merges))
	for _, m := range merges {
		t.preMerge[m.TileID] = m.Value / 2
		t.merged[m.TileID] = true
	}
	for _, m := range moves {
		t.sliding = append(t.sliding, tileTransition{
			id:      m.TileID,
			value:   m.Value,
			fromX:   m.FromX,
			fromY:   m.FromY,
			toX:     m.ToX,
			toY:     m.ToY,
			merging: m.Merging,
		})
	}
	t.phase = phaseSlide
}

// spawn queues a pop for a new tile. During a slide the pop waits for the
// slide to end.
func (t *transitions) spawn(id uint64, x, y, value int) {
	tr := tileTransition{id: id, value: value, fromX: x, fromY: y, toX: x, toY: y}
	switch t.phase {
	case phaseSlide:
		t.pending = append(t.pending, tr)
	case phasePop:
		t.popping = append(t.popping, tr)
	default:
		t.popping = []tileTransition{tr}
		t.phase = phasePop
		t.ticks = 0
	}
}

// advance moves the current phase forward one tick. It returns true when the
// last phase has just finished.
func (t *transitions) advance() bool {
	if t.phase == phaseNone {
		return false
	}

	t.ticks++

	// Determine duration based on phase
	duration := t.popTicks
	current := t.popping
	if t.phase == phaseSlide {
		duration = t.slideTicks
		current = t.sliding
	}

	progress := 1.0
	if duration > 0 {
		progress = min(float64(t.ticks)/float64(duration), 1.0)
	}
	for i := range current {
		current[i].progress = progress
	}

	if t.ticks < duration {
		return false
	}
	return t.finishPhase()
}

// finishPhase ends the current phase and starts the pop phase when spawns
// are waiting on the slide.
func (t *transitions) finishPhase() bool {
	if t.phase == phaseSlide {
		t.sliding = nil
		t.preMerge = nil
		t.ticks = 0
		if len(t.pending) > 0 {
			t.popping = t.pending
			t.pending = nil
			t.phase = phasePop
			return false
		}
	}

	t.phase = phaseNone
	t.popping = nil
	t.merged = nil
	t.ticks = 0
	return true
}

// hidden reports whether the tile must not be drawn in its cell this frame.
func (t *transitions) hidden(id uint64) bool {
	for _, tr := range t.sliding {
		if tr.id == id {
			return true
		}
	}
	for _, tr := range t.pending {
		if tr.id == id {
			return true
		}
	}
	return false
}

// displayValue returns the value to draw for a settled tile this frame.
func (t *transitions) displayValue(id uint64, value int) int {
	if v, ok := t.preMerge[id]; ok {
		return v
	}
	return value
}

// highlighted reports whether the tile is popping or was just merged.
func (t *transitions) highlighted(id uint64) bool {
	if t.phase != phasePop {
		return false
	}
	if t.merged[id] {
		return true
	}
	for _, tr := range t.popping {
		if tr.id == id {
			return true
		}
	}
	return false
}

// easeOutQuad provides smooth deceleration for transitions.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// position returns the current position in cell units.
func (tr *tileTransition) position() (x, y float64) {
	p := easeOutQuad(tr.progress)
	x = float64(tr.fromX) + float64(tr.toX-tr.fromX)*p
	y = float64(tr.fromY) + float64(tr.toY-tr.fromY)*p
	return x, y
}
