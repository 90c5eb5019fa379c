package render

import (
	"strings"
)

// Normalize unwraps hard line breaks in model prose so the markdown
// renderer can reflow it. Gemini pre-wraps paragraphs at a fixed width;
// rendering those newlines literally breaks prose mid-sentence. Fenced
// code blocks pass through untouched.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")

	var out []string
	var para []string
	inFence := false
	blanks := 0

	flush := func() {
		if len(para) > 0 {
			out = append(out, strings.Join(para, " "))
			para = para[:0]
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")

		if strings.HasPrefix(strings.TrimSpace(trimmed), "```") {
			flush()
			inFence = !inFence
			out = append(out, line)
			blanks = 0
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}

		if trimmed == "" {
			flush()
			// Collapse runs of blank lines to a single separator.
			if blanks == 0 {
				out = append(out, "")
			}
			blanks++
			continue
		}
		blanks = 0

		// Markdown that depends on its own line stays on it.
		if standsAlone(trimmed) {
			flush()
			out = append(out, trimmed)
			continue
		}

		// Rejoin hyphenated word splits ("kom-" + "municera").
		if n := len(para); n > 0 && strings.HasSuffix(para[n-1], "-") {
			para[n-1] = strings.TrimSuffix(para[n-1], "-") + trimmed
			continue
		}
		para = append(para, trimmed)
	}
	flush()

	return strings.Join(out, "\n")
}

// standsAlone reports whether a line is block-level markdown that must
// not be merged into a paragraph.
func standsAlone(line string) bool {
	s := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(s, "#"),
		strings.HasPrefix(s, "- "),
		strings.HasPrefix(s, "* "),
		strings.HasPrefix(s, "> "),
		strings.HasPrefix(s, "|"):
		return true
	}
	// Ordered list items: "1. ", "12. "
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i+1 < len(s) && s[i] == '.' && s[i+1] == ' '
}
