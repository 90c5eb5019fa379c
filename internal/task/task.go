// Package task builds the prompts for the single-purpose commands
// (translate, summarize, code, write). Each task carries its own
// generation overrides so the commands don't reach into config.
package task

import (
	"fmt"
	"strings"
)

// Task is a ready-to-send prompt plus any generation overrides. Nil
// Temperature means "use the configured default".
type Task struct {
	Name        string
	Prompt      string
	Temperature *float64
	MaxTokens   int
}

const (
	DefaultTargetLanguage = "English"
	DefaultSummaryWords   = 200
	DefaultCodeLanguage   = "Python"
	DefaultWritingStyle   = "modern prose"
)

func temp(v float64) *float64 { return &v }

// Translate asks for a translation into target, keeping the input text
// verbatim after the instruction.
func Translate(text, target string) Task {
	if strings.TrimSpace(target) == "" {
		target = DefaultTargetLanguage
	}
	return Task{
		Name:   "translate",
		Prompt: fmt.Sprintf("Translate the following text into %s:\n\n%s", target, text),
		// Translation wants fidelity over flair.
		Temperature: temp(0.3),
	}
}

// Summarize asks for a summary of at most maxWords words. The token cap
// is doubled so the model has room for the requested length.
func Summarize(text string, maxWords int) Task {
	if maxWords <= 0 {
		maxWords = DefaultSummaryWords
	}
	return Task{
		Name:      "summarize",
		Prompt:    fmt.Sprintf("Summarize the following text in at most %d words:\n\n%s", maxWords, text),
		MaxTokens: maxWords * 2,
	}
}

// Code asks for a complete, runnable implementation in language.
func Code(description, language string) Task {
	if strings.TrimSpace(language) == "" {
		language = DefaultCodeLanguage
	}
	return Task{
		Name: "code",
		Prompt: fmt.Sprintf("Write %s code that implements the following:\n\n%s\n\nProvide complete, runnable code with the necessary comments.",
			language, description),
		Temperature: temp(0.2),
	}
}

// Write asks for a piece of creative writing about topic in the given
// style.
func Write(topic, style string) Task {
	if strings.TrimSpace(style) == "" {
		style = DefaultWritingStyle
	}
	return Task{
		Name:        "write",
		Prompt:      fmt.Sprintf("Write a piece about %q in the style of %s.", topic, style),
		Temperature: temp(0.9),
	}
}
