package tui

import (
	"maps"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// fakeGame records the input it receives and reports a scripted state.
type fakeGame struct {
	state   core.GameState
	resets  int
	resized [2]int
	inputs  []core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "board") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(width, height int) { g.resized = [2]int{width, height} }
// Step records a copy because the model clears its frame after every tick.
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, core.InputFrame{Actions: maps.Clone(in.Actions)})
	return core.StepResult{State: g.state}
}

func newTestModel(g *fakeGame) GameModel {
	return NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestQuitWithoutProgressExits(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("quit without moves should exit immediately")
	}
}

func TestQuitWithProgressAsks(t *testing.T) {
	g := &fakeGame{state: core.GameState{MadeMove: true}}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, runeKey('q'))
	if m.IsQuitting() || cmd != nil {
		t.Fatal("quit with progress should ask first")
	}
	if !strings.Contains(m.View(), "leaving?") {
		t.Error("view should show the leave question")
	}

	m, _ = update(t, m, runeKey('n'))
	if m.IsQuitting() {
		t.Fatal("declining should keep the game running")
	}
	if !strings.Contains(m.View(), "board") {
		t.Error("declining should return to the board")
	}

	m, _ = update(t, m, runeKey('q'))
	m, cmd = update(t, m, runeKey('y'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("accepting should exit")
	}
}

func TestQuitAfterGameOverSkipsQuestion(t *testing.T) {
	g := &fakeGame{state: core.GameState{MadeMove: true, GameOver: true}}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("a finished game has nothing to lose")
	}
}

func TestKeysReachGameOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionUp) {
		t.Error("first tick should carry Up")
	}
	if g.inputs[1].Has(core.ActionUp) {
		t.Error("input should be cleared after a tick")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1 while playing", g.resets)
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('r'))
	_, _ = update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2 after game over", g.resets)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 0 {
		t.Error("resizable games should not be reset")
	}
}

func TestBackToMenuWhenPaused(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.Paused = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestConfirmModel(t *testing.T) {
	m := NewConfirmModel("Erase?", 40, 10)
	if !strings.Contains(m.View(), "Erase?") {
		t.Fatal("dialog should show its question")
	}

	next, cmd := m.Update(runeKey('y'))
	if !next.(ConfirmModel).Accepted() || cmd == nil {
		t.Error("y should accept and close")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(ConfirmModel).Accepted() {
		t.Error("esc should decline")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "2048", core.ColorOrange)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "2048") || !strings.Contains(lines[1], "ok") {
		t.Errorf("unexpected output %q", out)
	}
}
