package gemini

import (
	"google.golang.org/genai"
)

// Placeholder stands in for replies that carried no text parts at all.
const Placeholder = "_No textual response returned._"

// Result is the distilled reply for one turn.
type Result struct {
	// Text is the ordered concatenation of all non-empty text fragments in
	// the first candidate, or Placeholder when nothing was concatenated.
	Text string
	// Sources are the deduplicated grounding URLs (web and maps). Order of
	// the set is not guaranteed.
	Sources []string
	// Raw is the full provider response, kept for callers that need fields
	// the extraction does not surface.
	Raw *genai.GenerateContentResponse
}

// Extract pulls text and grounding sources out of a provider response. Every
// field is treated as optional: a missing candidate, content, part, or
// metadata block degrades to the default value rather than an error.
func Extract(resp *genai.GenerateContentResponse) *Result {
	result := &Result{Text: Placeholder, Raw: resp}
	if resp == nil || len(resp.Candidates) == 0 {
		return result
	}

	cand := resp.Candidates[0]
	if cand == nil {
		return result
	}

	if text := extractText(cand.Content); text != "" {
		result.Text = text
	}
	result.Sources = extractSources(cand.GroundingMetadata)
	return result
}

func extractText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var out string
	for _, part := range content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		out += part.Text
	}
	return out
}

func extractSources(meta *genai.GroundingMetadata) []string {
	if meta == nil || len(meta.GroundingChunks) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var sources []string
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil {
			continue
		}
		if chunk.Web != nil && chunk.Web.URI != "" {
			if _, dup := seen[chunk.Web.URI]; !dup {
				seen[chunk.Web.URI] = struct{}{}
				sources = append(sources, chunk.Web.URI)
			}
		}
		if chunk.Maps != nil && chunk.Maps.URI != "" {
			if _, dup := seen[chunk.Maps.URI]; !dup {
				seen[chunk.Maps.URI] = struct{}{}
				sources = append(sources, chunk.Maps.URI)
			}
		}
	}
	return sources
}
