// Package gemini is the provider boundary: it assembles generation requests
// for the Gemini API, issues them through the official SDK, and defensively
// extracts text and grounding sources from the reply.
package gemini

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Model identifiers for the two supported variants.
const (
	// ModelFast is the default low-latency variant.
	ModelFast = "gemini-3-flash-preview"
	// ModelReasoning is the higher-capability variant with thinking enabled.
	ModelReasoning = "gemini-3-pro-preview"
)

// DefaultThinkingBudget caps internal deliberation for the reasoning variant.
const DefaultThinkingBudget int32 = 4000

// GroundingMode selects which built-in grounding tool, if any, is attached.
type GroundingMode string

const (
	GroundingNone GroundingMode = "none"
	GroundingWeb  GroundingMode = "search"
	GroundingMaps GroundingMode = "maps"
)

// Active reports whether a grounding tool is attached in this mode. The zero
// value counts as none.
func (g GroundingMode) Active() bool {
	return g == GroundingWeb || g == GroundingMaps
}

// ParseGroundingMode maps user-facing selector values onto a GroundingMode.
func ParseGroundingMode(s string) (GroundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return GroundingNone, nil
	case "search", "web", "web-search", "google-search":
		return GroundingWeb, nil
	case "maps", "google-maps":
		return GroundingMaps, nil
	}
	return GroundingNone, fmt.Errorf("unknown grounding mode %q (valid: none, search, maps)", s)
}

// Attachment is a fully in-memory uploaded file plus its declared media type.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// mimeByExt is the accepted upload surface: still images and short audio.
var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
}

// LoadAttachment reads path fully into memory and infers the media type from
// the file extension. Unsupported extensions are rejected up front so the
// provider never sees a blob it cannot decode.
func LoadAttachment(path string) (*Attachment, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := mimeByExt[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported attachment type %q (accepted: png, jpg, jpeg, mp3, wav)", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attachment: %w", err)
	}
	return &Attachment{
		Name:     filepath.Base(path),
		MIMEType: mime,
		Data:     data,
	}, nil
}

// RequestSpec captures everything that varies per turn. It is constructed
// fresh from the current UI selections and never stored.
type RequestSpec struct {
	Prompt       string
	Persona      string // system instruction text
	UseReasoning bool
	Grounding    GroundingMode
	Attachment   *Attachment
}

// Model returns the target model identifier for this spec.
func (r RequestSpec) Model() string {
	if r.UseReasoning {
		return ModelReasoning
	}
	return ModelFast
}

// Contents builds the ordered content-part sequence. The attachment part, when
// present, strictly precedes the text part.
func (r RequestSpec) Contents() []*genai.Content {
	var parts []*genai.Part
	if r.Attachment != nil {
		parts = append(parts, genai.NewPartFromBytes(r.Attachment.Data, r.Attachment.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(r.Prompt))
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// Config builds the generation config: persona system instruction, at most one
// grounding tool, and the thinking budget. Grounding and the thinking budget
// are mutually exclusive: the budget is attached only when grounding is off
// and the reasoning variant is selected. That is product policy, not an API
// limitation.
func (r RequestSpec) Config() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}

	if r.Persona != "" {
		cfg.SystemInstruction = genai.NewContentFromText(r.Persona, genai.RoleUser)
	}

	switch r.Grounding {
	case GroundingWeb:
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	case GroundingMaps:
		cfg.Tools = []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}}
	}

	if r.UseReasoning && !r.Grounding.Active() {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(DefaultThinkingBudget),
		}
	}

	return cfg
}
