// Package persona holds the built-in system-prompt presets selectable
// with --persona and the chat /persona command.
package persona

import (
	"fmt"
	"sort"
	"strings"
)

// Persona is a named system prompt. The default persona has an empty
// prompt, meaning no system instruction is sent.
type Persona struct {
	Name         string
	Description  string
	SystemPrompt string
}

var registry = map[string]Persona{
	"default": {
		Name:         "default",
		Description:  "no system prompt",
		SystemPrompt: "",
	},
	"translator": {
		Name:        "translator",
		Description: "faithful translation, no commentary",
		SystemPrompt: `You are a professional translator. Translate faithfully, preserving tone and register. Output only the translation, with no commentary or notes unless the text is ambiguous.`,
	},
	"coder": {
		Name:        "coder",
		Description: "programming assistant",
		SystemPrompt: `You are an expert programming assistant. Provide clear, well-documented code with proper error handling. Prefer production-ready solutions and explain your reasoning when making design decisions.`,
	},
	"writer": {
		Name:        "writer",
		Description: "creative writing partner",
		SystemPrompt: `You are a creative writing partner. Write vivid, original prose that matches the requested style and tone. Avoid cliches and filler. When asked for a specific form (haiku, essay, short story), honor its conventions.`,
	},
	"tutor": {
		Name:        "tutor",
		Description: "patient explainer",
		SystemPrompt: `You are a patient tutor. Explain concepts step by step, check understanding with short questions, and adjust depth to the student's replies. Prefer concrete examples over abstract definitions.`,
	},
}

// Get looks up a persona by name, case-insensitively.
func Get(name string) (Persona, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Persona{}, fmt.Errorf("unknown persona %q (one of: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names returns the persona names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all personas sorted by name.
func List() []Persona {
	personas := make([]Persona, 0, len(registry))
	for _, name := range Names() {
		personas = append(personas, registry[name])
	}
	return personas
}
