package studio

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"qualitystudio/internal/gemini"
	"qualitystudio/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// go.opencensus.io (a transitive dependency) starts a background
		// worker goroutine at package init that never exits.
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

// stubProvider replies with canned results, failing on prompts it was told to
// fail on.
type stubProvider struct {
	failOn   map[string]error
	lastSpec gemini.RequestSpec
	calls    int
}

func (s *stubProvider) Generate(_ context.Context, spec gemini.RequestSpec) (*gemini.Result, error) {
	s.calls++
	s.lastSpec = spec
	if err, ok := s.failOn[spec.Prompt]; ok {
		return nil, err
	}
	return &gemini.Result{
		Text:    "echo: " + spec.Prompt,
		Sources: []string{"https://a.com/x"},
	}, nil
}

func TestSubmit_TurnCountIs2NAfterNSuccesses(t *testing.T) {
	provider := &stubProvider{}
	orch := New(provider, nil)

	const n = 4
	for i := 0; i < n; i++ {
		_, err := orch.Submit(context.Background(), SubmitRequest{
			Prompt:     fmt.Sprintf("question %d", i),
			PersonaKey: "assistant",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2*n, orch.Turns())

	history := orch.History()
	for i := 0; i < n; i++ {
		assert.Equal(t, session.RoleUser, history[2*i].Role)
		assert.Equal(t, session.RoleAssistant, history[2*i+1].Role)
	}
}

func TestSubmit_ProviderFaultAppendsOnlyUserTurn(t *testing.T) {
	provider := &stubProvider{
		failOn: map[string]error{
			"doomed": &gemini.CallError{Model: gemini.ModelFast, Err: errors.New("network down")},
		},
	}
	orch := New(provider, nil)

	_, err := orch.Submit(context.Background(), SubmitRequest{
		Prompt:     "doomed",
		PersonaKey: "assistant",
	})

	var callErr *gemini.CallError
	require.ErrorAs(t, err, &callErr)

	// The user's own message is recorded; no assistant turn beyond it.
	history := orch.History()
	require.Len(t, history, 1)
	assert.Equal(t, session.RoleUser, history[0].Role)
	assert.Equal(t, "doomed", history[0].Content)
}

func TestSubmit_UnknownPersonaRecordsNothing(t *testing.T) {
	provider := &stubProvider{}
	orch := New(provider, nil)

	_, err := orch.Submit(context.Background(), SubmitRequest{
		Prompt:     "hello",
		PersonaKey: "pirate",
	})
	require.Error(t, err)
	assert.Equal(t, 0, orch.Turns())
	assert.Equal(t, 0, provider.calls)
}

func TestSubmit_AssistantTurnCarriesSources(t *testing.T) {
	orch := New(&stubProvider{}, nil)

	_, err := orch.Submit(context.Background(), SubmitRequest{
		Prompt:     "grounded question",
		PersonaKey: "critic",
	})
	require.NoError(t, err)

	history := orch.History()
	require.Len(t, history, 2)
	assert.Equal(t, []string{"https://a.com/x"}, history[1].URLs)
}

func TestSubmit_PassesSelectionsToProvider(t *testing.T) {
	provider := &stubProvider{}
	orch := New(provider, nil)

	att := &gemini.Attachment{Name: "song.mp3", MIMEType: "audio/mpeg", Data: []byte{1, 2, 3}}
	_, err := orch.Submit(context.Background(), SubmitRequest{
		Prompt:       "what song is this?",
		PersonaKey:   "writer",
		UseReasoning: true,
		Grounding:    gemini.GroundingWeb,
		Attachment:   att,
	})
	require.NoError(t, err)

	spec := provider.lastSpec
	assert.Equal(t, "what song is this?", spec.Prompt)
	assert.Contains(t, spec.Persona, "Pulitzer")
	assert.True(t, spec.UseReasoning)
	assert.Equal(t, gemini.GroundingWeb, spec.Grounding)
	assert.Same(t, att, spec.Attachment)
}

func TestReset_AlwaysYieldsEmptySession(t *testing.T) {
	orch := New(&stubProvider{}, nil)

	for i := 0; i < 3; i++ {
		_, err := orch.Submit(context.Background(), SubmitRequest{
			Prompt:     "q",
			PersonaKey: "assistant",
		})
		require.NoError(t, err)
	}
	require.Equal(t, 6, orch.Turns())

	orch.Reset()
	assert.Equal(t, 0, orch.Turns())
	assert.Empty(t, orch.History())

	// Reset on an already-empty session is a no-op.
	orch.Reset()
	assert.Equal(t, 0, orch.Turns())
}
