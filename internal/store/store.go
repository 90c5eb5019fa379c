// Package store persists generated image prompts so they can be
// listed, re-read, and exported later.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a prompt ID does not exist.
var ErrNotFound = errors.New("prompt not found")

// SavedPrompt is one library entry: the description and style it was
// generated from, the assembled prompt, and any variations saved with
// it.
type SavedPrompt struct {
	ID          int64
	Description string
	Style       string
	Prompt      string
	Variations  []string
	CreatedAt   time.Time
}

// Store is the prompt library. *SQLiteStore is the only implementation.
type Store interface {
	Save(p SavedPrompt) (int64, error)
	List() ([]SavedPrompt, error)
	Get(id int64) (SavedPrompt, error)
	Delete(id int64) error
	Close() error
}
