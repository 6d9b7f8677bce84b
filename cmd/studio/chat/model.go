// Package chat provides the interactive TUI chat interface for QualityStudio.
// The functionality is split across files:
//   - model.go: types, Init, Update loop
//   - commands.go: /command handling
//   - process.go: prompt submission
//   - view.go: rendering
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"qualitystudio/cmd/studio/ui"
	"qualitystudio/internal/gemini"
	"qualitystudio/internal/session"
	"qualitystudio/internal/studio"
)

// Options configures the chat interface at startup.
type Options struct {
	Orchestrator *studio.Orchestrator
	PersonaKey   string
	UseReasoning bool
	Grounding    gemini.GroundingMode
}

// Model is the bubbletea model for the interactive chat.
type Model struct {
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	orch *studio.Orchestrator

	// history is this goroutine's snapshot of the session. While a submit
	// command is in flight the session belongs to that goroutine, so all
	// rendering (including resizes) reads the snapshot; it is refreshed
	// only once the command's message is delivered back here.
	history       []session.Turn
	pendingPrompt string

	// Current UI selections; read at submit time to build the request.
	personaKey   string
	useReasoning bool
	grounding    gemini.GroundingMode
	attachment   *gemini.Attachment

	isLoading bool
	errText   string
	width     int
	height    int
	ready     bool
}

// Messages flowing back from the submit command.
type (
	responseMsg struct{ result *gemini.Result }
	errorMsg    struct{ err error }
)

// New builds the chat model.
func New(opts Options) (Model, error) {
	ta := textarea.New()
	ta.Placeholder = "Send a message... (/help for commands)"
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return Model{}, err
	}

	return Model{
		textarea:     ta,
		spinner:      sp,
		styles:       ui.NewStyles(),
		renderer:     renderer,
		orch:         opts.Orchestrator,
		personaKey:   opts.PersonaKey,
		useReasoning: opts.UseReasoning,
		grounding:    opts.Grounding,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 2
		inputHeight := m.textarea.Height() + 2
		vpHeight := m.height - headerHeight - footerHeight - inputHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(m.width - 4)
		content := m.renderHistory()
		if m.isLoading {
			content += m.renderPendingTurn(m.pendingPrompt)
		}
		m.viewport.SetContent(content)
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" || m.isLoading {
				return m, nil
			}
			m.errText = ""
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}
			m.isLoading = true
			m.pendingPrompt = input
			m.textarea.Reset()
			cmd := m.submit(input)
			// The snapshot does not have the user turn yet; render it as
			// pending so input feels instant.
			m.viewport.SetContent(m.renderHistory() + m.renderPendingTurn(input))
			m.viewport.GotoBottom()
			return m, tea.Batch(cmd, m.spinner.Tick)
		}

	case responseMsg:
		m.isLoading = false
		m.pendingPrompt = ""
		m.attachment = nil // consumed by this turn
		m.history = m.orch.History()
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.pendingPrompt = ""
		m.errText = msg.err.Error()
		m.history = m.orch.History()
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}
