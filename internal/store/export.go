package store

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultExportName returns a timestamped file name for an exported
// prompt.
func DefaultExportName(now time.Time) string {
	return "image_prompts_" + now.Format("20060102_150405") + ".txt"
}

// ExportText writes a saved prompt as a flat text file, one labeled
// block per field.
func ExportText(w io.Writer, p SavedPrompt, now time.Time) error {
	var sb strings.Builder
	sb.WriteString("AI image generation prompts\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	sb.WriteString("Generated: " + now.Format("2006-01-02 15:04:05") + "\n\n")

	sb.WriteString("Description:\n" + p.Description + "\n\n")
	sb.WriteString("Style:\n" + p.Style + "\n\n")
	sb.WriteString("Prompt:\n" + p.Prompt + "\n\n")
	for i, v := range p.Variations {
		fmt.Fprintf(&sb, "Variation %d:\n%s\n\n", i+1, v)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
