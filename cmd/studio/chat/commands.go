// Package chat provides the interactive TUI chat interface for QualityStudio.
// This file contains /command handling: the slash commands stand in for the
// sidebar selectors of the original web UI.
package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"qualitystudio/internal/gemini"
	"qualitystudio/internal/persona"
)

func (m Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "/quit", "/exit", "/q":
		return m, tea.Quit

	case "/reset", "/clear":
		m.orch.Reset()
		m.history = nil
		m.attachment = nil
		m.errText = ""
		m.viewport.SetContent("")
		m.textarea.Reset()
		return m, nil

	case "/persona":
		if len(args) == 0 {
			m.errText = fmt.Sprintf("usage: /persona <%s>", strings.Join(persona.Keys(), "|"))
			return m, nil
		}
		p, err := persona.Get(args[0])
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.personaKey = p.Key
		m.textarea.Reset()
		return m, nil

	case "/pro":
		m.useReasoning = !m.useReasoning
		m.textarea.Reset()
		return m, nil

	case "/grounding":
		if len(args) == 0 {
			m.errText = "usage: /grounding none|search|maps"
			return m, nil
		}
		mode, err := gemini.ParseGroundingMode(args[0])
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.grounding = mode
		m.textarea.Reset()
		return m, nil

	case "/attach":
		if len(args) == 0 {
			m.errText = "usage: /attach <path to png|jpg|jpeg|mp3|wav>"
			return m, nil
		}
		att, err := gemini.LoadAttachment(strings.Join(args, " "))
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.attachment = att
		m.textarea.Reset()
		return m, nil

	case "/detach":
		m.attachment = nil
		m.textarea.Reset()
		return m, nil

	case "/status", "/help":
		// Both render the same panel; /help leads with the command list.
		m.errText = ""
		m.viewport.SetContent(m.renderHistory() + "\n" + m.renderHelp())
		m.viewport.GotoBottom()
		m.textarea.Reset()
		return m, nil

	default:
		m.errText = fmt.Sprintf("unknown command %s (try /help)", cmd)
		return m, nil
	}
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Muted.Render("Commands:") + "\n")
	for _, line := range []string{
		"/persona <" + strings.Join(persona.Keys(), "|") + ">  select the AI personality",
		"/pro                 toggle Pro reasoning (" + gemini.ModelReasoning + ")",
		"/grounding <none|search|maps>  grounding source",
		"/attach <path>       attach a png/jpg/jpeg/mp3/wav file to the next message",
		"/detach              drop the pending attachment",
		"/reset               clear the conversation",
		"/quit                exit",
	} {
		sb.WriteString(m.styles.Muted.Render("  "+line) + "\n")
	}
	return sb.String()
}
