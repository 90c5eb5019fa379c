package chat

// BuildHistory returns the messages to send alongside a new user prompt.
// It applies the history limit (most recent first to go) and appends the
// prompt as the final user message. The system prompt travels separately
// (Gemini takes it as a system instruction, not a message).
func BuildHistory(history []Message, limit int, userPrompt string) []Message {
	limited := history
	if limit > 0 && len(limited) > limit {
		limited = limited[len(limited)-limit:]
	}

	messages := make([]Message, 0, len(limited)+1)
	messages = append(messages, limited...)
	messages = append(messages, Message{Role: RoleUser, Content: userPrompt})
	return messages
}
