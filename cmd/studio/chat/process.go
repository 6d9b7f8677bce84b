// Package chat provides the interactive TUI chat interface for QualityStudio.
// This file contains prompt submission.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"qualitystudio/internal/studio"
)

// submit sends one prompt through the orchestrator. It runs as a tea command
// on its own goroutine and owns the session until its message is delivered:
// the isLoading guard keeps at most one submission in flight, and Update
// renders only the model's history snapshot in the meantime. No timeout is
// configured here: the provider call's own default timeout applies, and a
// failed turn is simply resent by the user.
func (m Model) submit(prompt string) tea.Cmd {
	req := studio.SubmitRequest{
		Prompt:       prompt,
		PersonaKey:   m.personaKey,
		UseReasoning: m.useReasoning,
		Grounding:    m.grounding,
		Attachment:   m.attachment,
	}
	orch := m.orch
	return func() tea.Msg {
		result, err := orch.Submit(context.Background(), req)
		if err != nil {
			return errorMsg{err: err}
		}
		return responseMsg{result: result}
	}
}
