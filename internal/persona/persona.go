// Package persona holds the fixed set of system-instruction personas that
// steer the assistant's response style. The set is closed: selection happens
// by key, and unknown keys are rejected rather than silently defaulted.
package persona

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultKey is the persona used when the user has not picked one.
const DefaultKey = "assistant"

// Persona is a named system instruction.
type Persona struct {
	Key         string
	DisplayName string
	Instruction string
}

var registry = map[string]Persona{
	"assistant": {
		Key:         "assistant",
		DisplayName: "Helpful Assistant",
		Instruction: "You are a friendly, helpful AI assistant. Provide concise and accurate answers.",
	},
	"code": {
		Key:         "code",
		DisplayName: "Code Expert",
		Instruction: "You are a senior software engineer. Provide clean, optimized code snippets and architectural advice.",
	},
	"writer": {
		Key:         "writer",
		DisplayName: "Creative Writer",
		Instruction: "You are a Pulitzer Prize-winning author. Use evocative language and storytelling.",
	},
	"critic": {
		Key:         "critic",
		DisplayName: "Critical Thinker",
		Instruction: "You are a philosopher and scientist. Break down problems logically and explore multiple perspectives.",
	},
}

// Get returns the persona for key, or an error naming the valid keys.
func Get(key string) (Persona, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Persona{}, fmt.Errorf("unknown persona %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return p, nil
}

// Keys returns all persona keys in stable order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every registered persona, ordered by key.
func All() []Persona {
	personas := make([]Persona, 0, len(registry))
	for _, k := range Keys() {
		personas = append(personas, registry[k])
	}
	return personas
}
