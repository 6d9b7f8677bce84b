// Package studio wires the session store to the provider boundary. One
// Submit per user turn: assemble the request from the current selections,
// call the provider once, record the outcome.
package studio

import (
	"context"

	"go.uber.org/zap"

	"qualitystudio/internal/gemini"
	"qualitystudio/internal/persona"
	"qualitystudio/internal/session"
)

// Provider issues one generation call per request spec.
type Provider interface {
	Generate(ctx context.Context, spec gemini.RequestSpec) (*gemini.Result, error)
}

// SubmitRequest captures the UI selections for one turn.
type SubmitRequest struct {
	Prompt       string
	PersonaKey   string
	UseReasoning bool
	Grounding    gemini.GroundingMode
	Attachment   *gemini.Attachment
}

// Orchestrator owns the session and drives the linear request/response
// cycle. It is used from a single goroutine per turn; there is no concurrent
// access to the session.
type Orchestrator struct {
	provider Provider
	session  *session.Session
	logger   *zap.Logger
}

// New creates an orchestrator with an empty session.
func New(provider Provider, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		provider: provider,
		session:  session.New(),
		logger:   logger,
	}
}

// History returns the conversation so far, in insertion order.
func (o *Orchestrator) History() []session.Turn {
	return o.session.All()
}

// Turns returns the number of recorded turns.
func (o *Orchestrator) Turns() int {
	return o.session.Len()
}

// Reset clears the session history.
func (o *Orchestrator) Reset() {
	o.logger.Info("session reset", zap.Int("discarded_turns", o.session.Len()))
	o.session.Clear()
}

// Submit runs one turn: the user turn is recorded, the provider is called
// exactly once, and on success the assistant turn is appended with its
// grounding sources. On a provider fault the error is returned and no
// assistant turn is recorded; the user's own message stays in the history so
// it can be read back when they resend.
func (o *Orchestrator) Submit(ctx context.Context, req SubmitRequest) (*gemini.Result, error) {
	p, err := persona.Get(req.PersonaKey)
	if err != nil {
		return nil, err
	}

	o.session.Append(session.NewTurn(session.RoleUser, req.Prompt, nil))

	spec := gemini.RequestSpec{
		Prompt:       req.Prompt,
		Persona:      p.Instruction,
		UseReasoning: req.UseReasoning,
		Grounding:    req.Grounding,
		Attachment:   req.Attachment,
	}

	result, err := o.provider.Generate(ctx, spec)
	if err != nil {
		return nil, err
	}

	o.session.Append(session.NewTurn(session.RoleAssistant, result.Text, result.Sources))
	return result, nil
}
