// Package chat holds the in-memory conversation model: ordered messages,
// the history builder, and the transcript writer. Nothing here persists
// anything unless the user explicitly saves a transcript.
package chat

import "time"

// Roles follow the Gemini convention: the assistant side is "model".
const (
	RoleUser   = "user"
	RoleModel  = "model"
	RoleSystem = "system"
)

type Message struct {
	Role    string
	Content string
	Time    time.Time
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Time: time.Now().UTC()}
}

func ModelMessage(content string) Message {
	return Message{Role: RoleModel, Content: content, Time: time.Now().UTC()}
}
