package gemini

import "fmt"

// CallError is a fault at the provider call boundary: network, auth, quota,
// or a malformed response the SDK itself rejected. It is the only error class
// Generate returns, so callers can show the description inline and move on.
type CallError struct {
	Model string
	Err   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("gemini call failed (model %s): %v", e.Model, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
