package t2048

// prompt is a destructive-action question shown over the board.
type prompt struct {
	message string
	action  func(Confirmer) bool
}

// recordingConfirmer declines every question and remembers the message, so an
// action can be run once to learn whether it needs confirmation at all.
type recordingConfirmer struct {
	message string
}

func (r *recordingConfirmer) ConfirmDestructiveAction(message string) bool {
	r.message = message
	return false
}

// approve answers yes to any question.
var approve = ConfirmFunc(func(string) bool { return true })

// request runs action. If the action asked a question, the question is shown
// and the action is replayed when the player accepts.
func (g *Game) request(action func(Confirmer) bool) {
	rec := &recordingConfirmer{}
	if action(rec) || rec.message == "" {
		return
	}
	g.prompt = &prompt{message: rec.message, action: action}
}

// answerPrompt resolves the pending prompt.
func (g *Game) answerPrompt(yes bool) {
	p := g.prompt
	g.prompt = nil
	if p == nil || !yes {
		return
	}
	p.action(approve)
}

// PromptMessage returns the question being asked, or "".
func (g *Game) PromptMessage() string {
	if g.prompt == nil {
		return ""
	}
	return g.prompt.message
}
