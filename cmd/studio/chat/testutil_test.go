package chat

import (
	"context"
	"errors"
	"testing"

	"qualitystudio/internal/gemini"
	"qualitystudio/internal/studio"
)

// echoProvider answers every prompt with a fixed shape; fail makes it fault.
type echoProvider struct {
	fail    bool
	sources []string
}

func (p *echoProvider) Generate(_ context.Context, spec gemini.RequestSpec) (*gemini.Result, error) {
	if p.fail {
		return nil, &gemini.CallError{Model: spec.Model(), Err: errors.New("simulated provider fault")}
	}
	return &gemini.Result{Text: "echo: " + spec.Prompt, Sources: p.sources}, nil
}

// newTestModel builds a ready-to-use chat model backed by the given provider.
func newTestModel(t *testing.T, provider studio.Provider) Model {
	t.Helper()
	m, err := New(Options{
		Orchestrator: studio.New(provider, nil),
		PersonaKey:   "assistant",
		Grounding:    gemini.GroundingNone,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.ready = true
	return m
}
