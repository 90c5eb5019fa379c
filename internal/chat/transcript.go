package chat

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Transcript save format: a flat text log, one block per message. This is
// the only way conversation history leaves process memory.

// DefaultTranscriptName returns a timestamped file name for a saved chat.
func DefaultTranscriptName(now time.Time) string {
	return "conversation_" + now.Format("20060102_150405") + ".txt"
}

// WriteTranscript writes the conversation as a flat log. Turns counts
// user/model exchanges; system messages are not part of the log.
func WriteTranscript(w io.Writer, system string, messages []Message, now time.Time) error {
	turns := 0
	for _, m := range messages {
		if m.Role == RoleUser {
			turns++
		}
	}

	var sb strings.Builder
	sb.WriteString("gembox chat transcript\n")
	sb.WriteString("Time: " + now.Format("2006-01-02 15:04:05") + "\n")
	fmt.Fprintf(&sb, "Turns: %d\n", turns)
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	if system != "" {
		sb.WriteString("[system]\n" + system + "\n\n")
	}
	for _, m := range messages {
		if m.Role == RoleSystem {
			continue
		}
		sb.WriteString("[" + m.Role + "]\n" + m.Content + "\n\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// SaveTranscript writes the transcript to path, refusing to write an empty
// conversation.
func SaveTranscript(path, system string, messages []Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("nothing to save: conversation is empty")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transcript: %w", err)
	}
	if err := WriteTranscript(f, system, messages, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("write transcript: %w", err)
	}
	return f.Close()
}
