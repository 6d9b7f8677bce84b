// Package chat provides the interactive TUI chat interface for QualityStudio.
// This file contains view rendering.
package chat

import (
	"fmt"
	"strings"

	"qualitystudio/internal/persona"
	"qualitystudio/internal/session"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.errText != "" {
		sb.WriteString(m.styles.Error.Render("Error: "+m.errText) + "\n")
	}
	if m.isLoading {
		label := "Generating..."
		if m.useReasoning {
			label = "Thinking..."
		}
		sb.WriteString(m.spinner.View() + " " + m.styles.Muted.Render(label) + "\n")
	} else {
		sb.WriteString(m.styles.InputBox.Render(m.textarea.View()) + "\n")
	}

	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderHeader() string {
	return m.styles.Header.Width(m.width).Render("⚡ QualityStudio — Gemini 3 Power Interface")
}

func (m Model) renderFooter() string {
	p, _ := persona.Get(m.personaKey)
	engine := "flash"
	if m.useReasoning {
		engine = "pro"
	}
	grounding := string(m.grounding)
	if grounding == "" {
		grounding = "none"
	}
	status := fmt.Sprintf("persona: %s · engine: %s · grounding: %s", p.DisplayName, engine, grounding)
	if m.attachment != nil {
		status += fmt.Sprintf(" · 📎 %s", m.attachment.Name)
	}
	return m.styles.Footer.Render(status)
}

// renderHistory renders the model's history snapshot, never the live
// session: a submit command may be mutating the session on its own
// goroutine while this runs.
func (m Model) renderHistory() string {
	var sb strings.Builder
	for _, turn := range m.history {
		switch turn.Role {
		case session.RoleUser:
			sb.WriteString(m.styles.UserLabel.Render("You") + "\n")
			sb.WriteString(m.styles.UserText.Render(turn.Content) + "\n")
		case session.RoleAssistant:
			sb.WriteString(m.styles.BotLabel.Render("QualityStudio") + "\n")
			sb.WriteString(m.safeRenderMarkdown(turn.Content))
			if len(turn.URLs) > 0 {
				sb.WriteString(m.renderSourceTags(turn.URLs) + "\n")
			}
		}
	}
	return sb.String()
}

// renderPendingTurn shows the just-submitted prompt while the provider call
// is in flight.
func (m Model) renderPendingTurn(prompt string) string {
	var sb strings.Builder
	sb.WriteString(m.styles.UserLabel.Render("You") + "\n")
	sb.WriteString(m.styles.UserText.Render(prompt) + "\n")
	if m.attachment != nil {
		sb.WriteString(m.styles.Muted.Render("  📎 Attached: "+m.attachment.Name) + "\n")
	}
	return sb.String()
}

// renderSourceTags renders grounding URLs as short host-name tags.
func (m Model) renderSourceTags(urls []string) string {
	tags := make([]string, 0, len(urls))
	for _, u := range urls {
		tags = append(tags, m.styles.SourceTag.Render(hostLabel(u)))
	}
	return "  " + strings.Join(tags, " ")
}

// hostLabel reduces a URL to its host for compact display.
func hostLabel(u string) string {
	s := u
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[i+2:]
	}
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return u
	}
	return s
}

// safeRenderMarkdown renders markdown with panic recovery: a glamour render
// failure must never take down the chat.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content + "\n"
		}
	}()

	if m.renderer == nil {
		return content + "\n"
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return rendered
}
