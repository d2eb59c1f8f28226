package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ConfirmModel is a yes/no dialog for destructive actions.
type ConfirmModel struct {
	message   string
	width     int
	height    int
	keyMapper *KeyMapper
	answered  bool
	accepted  bool
}

// NewConfirmModel creates a dialog asking the given question.
func NewConfirmModel(message string, width, height int) ConfirmModel {
	return ConfirmModel{
		message:   message,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the dialog.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dialog.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToConfirm(msg) {
		case ConfirmYes:
			m.answered, m.accepted = true, true
			return m, tea.Quit
		case ConfirmNo:
			m.answered = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}
	return renderConfirm(m.message, m.width, m.height)
}

// Accepted reports whether the player answered yes.
func (m ConfirmModel) Accepted() bool {
	return m.accepted
}

// renderConfirm draws a centered dialog box with the question and key hints.
func renderConfirm(message string, width, height int) string {
	boxWidth := min(max(width-8, 20), 50)
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.DialogText.Width(boxWidth).Align(lipgloss.Center).Render(message),
		"",
		theme.DialogHint.Render("y: yes   n/esc: no"),
	)
	box := theme.DialogBox.Render(body)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// RunConfirm shows a full-screen yes/no dialog and returns the answer.
func RunConfirm(message string, width, height int) (bool, error) {
	p := tea.NewProgram(
		NewConfirmModel(message, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ConfirmModel)
	if !ok {
		return false, nil
	}
	return m.Accepted(), nil
}

// PromptConfirmer asks destructive-action questions through a terminal dialog.
// A failing terminal counts as a declined answer.
type PromptConfirmer struct {
	Width  int
	Height int
	Err    error
}

var _ t2048.Confirmer = (*PromptConfirmer)(nil)

// ConfirmDestructiveAction shows the dialog and blocks until the player answers.
func (p *PromptConfirmer) ConfirmDestructiveAction(message string) bool {
	ok, err := RunConfirm(message, p.Width, p.Height)
	if err != nil {
		p.Err = err
		return false
	}
	return ok
}
