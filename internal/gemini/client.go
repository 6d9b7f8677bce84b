package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// apiVersion pins the endpoint revision that carries the Gemini 3 preview
// models and the maps grounding tool.
const apiVersion = "v1alpha"

// Generator is the narrow slice of the SDK the client depends on. The SDK's
// Models service satisfies it; tests substitute a fake.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client issues generation requests and extracts results. One synchronous
// call per turn; no retries, no caching. A failed turn is resent by the user.
type Client struct {
	gen    Generator
	logger *zap.Logger
}

// NewClient builds a Client backed by the real Gemini SDK. The API key is
// required; callers are expected to have validated configuration before
// reaching this point.
func NewClient(ctx context.Context, apiKey string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return NewClientWithGenerator(sdk.Models, logger), nil
}

// NewClientWithGenerator builds a Client on any Generator. Used directly by
// tests and indirectly by NewClient.
func NewClientWithGenerator(gen Generator, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{gen: gen, logger: logger}
}

// Generate issues exactly one call for spec and extracts the result. Any
// fault at the call boundary comes back as a *CallError; a structurally
// odd but successful response is tolerated, never an error.
func (c *Client) Generate(ctx context.Context, spec RequestSpec) (*Result, error) {
	model := spec.Model()
	c.logger.Debug("generate",
		zap.String("model", model),
		zap.String("grounding", string(spec.Grounding)),
		zap.Bool("reasoning", spec.UseReasoning),
		zap.Bool("attachment", spec.Attachment != nil),
		zap.Int("prompt_len", len(spec.Prompt)),
	)

	resp, err := c.gen.GenerateContent(ctx, model, spec.Contents(), spec.Config())
	if err != nil {
		c.logger.Warn("generate failed", zap.String("model", model), zap.Error(err))
		return nil, &CallError{Model: model, Err: err}
	}

	result := Extract(resp)
	c.logger.Debug("generate done",
		zap.String("model", model),
		zap.Int("text_len", len(result.Text)),
		zap.Int("sources", len(result.Sources)),
	)
	return result, nil
}
