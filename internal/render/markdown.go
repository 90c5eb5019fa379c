// Package render turns model output into terminal-friendly text:
// markdown with syntax highlighting on a TTY, plain text otherwise.
package render

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Markdown renders model output as styled markdown. On any renderer
// failure it falls back to the normalized plain text.
func Markdown(text string) string {
	text = Normalize(text)

	var opts []glamour.TermRendererOption
	if isTTY() {
		// Wrap is left to the terminal; glamour wrapping mangles
		// code blocks.
		opts = []glamour.TermRendererOption{
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(0),
		}
	} else {
		opts = []glamour.TermRendererOption{
			glamour.WithStandardStyle("notty"),
			glamour.WithWordWrap(0),
		}
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return rendered
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
