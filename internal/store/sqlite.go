package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteTimeFormat = "2006-01-02 15:04:05"

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the prompt library at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Foreign keys are off by default in SQLite.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS prompts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		style TEXT NOT NULL,
		prompt TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS variations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prompt_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		text TEXT NOT NULL,
		FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_variations_prompt_id ON variations(prompt_id);
	`

	_, err := db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts a prompt and its variations in one transaction and
// returns the new ID.
func (s *SQLiteStore) Save(p SavedPrompt) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := tx.Exec(`
		INSERT INTO prompts (description, style, prompt, created_at)
		VALUES (?, ?, ?, ?)
	`, p.Description, p.Style, p.Prompt, createdAt.Format(sqliteTimeFormat))
	if err != nil {
		return 0, fmt.Errorf("insert prompt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	for i, v := range p.Variations {
		if _, err := tx.Exec(`
			INSERT INTO variations (prompt_id, position, text)
			VALUES (?, ?, ?)
		`, id, i, v); err != nil {
			return 0, fmt.Errorf("insert variation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// List returns all saved prompts, newest first, without their
// variations (use Get for the full entry).
func (s *SQLiteStore) List() ([]SavedPrompt, error) {
	rows, err := s.db.Query(`
		SELECT id, description, style, prompt, created_at
		FROM prompts
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query prompts: %w", err)
	}
	defer rows.Close()

	var prompts []SavedPrompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompts: %w", err)
	}
	return prompts, nil
}

// Get loads one prompt with its variations.
func (s *SQLiteStore) Get(id int64) (SavedPrompt, error) {
	row := s.db.QueryRow(`
		SELECT id, description, style, prompt, created_at
		FROM prompts WHERE id = ?
	`, id)

	p, err := scanPrompt(row)
	if err == sql.ErrNoRows {
		return SavedPrompt{}, ErrNotFound
	}
	if err != nil {
		return SavedPrompt{}, err
	}

	rows, err := s.db.Query(`
		SELECT text FROM variations
		WHERE prompt_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return SavedPrompt{}, fmt.Errorf("query variations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return SavedPrompt{}, fmt.Errorf("scan variation: %w", err)
		}
		p.Variations = append(p.Variations, text)
	}
	if err := rows.Err(); err != nil {
		return SavedPrompt{}, fmt.Errorf("iterate variations: %w", err)
	}
	return p, nil
}

// Delete removes a prompt; its variations go with it via the cascade.
func (s *SQLiteStore) Delete(id int64) error {
	result, err := s.db.Exec(`DELETE FROM prompts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row rowScanner) (SavedPrompt, error) {
	var p SavedPrompt
	var createdAt string
	if err := row.Scan(&p.ID, &p.Description, &p.Style, &p.Prompt, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return SavedPrompt{}, err
		}
		return SavedPrompt{}, fmt.Errorf("scan prompt: %w", err)
	}

	t, err := parseTimestamp(createdAt)
	if err != nil {
		return SavedPrompt{}, fmt.Errorf("parse timestamp: %w", err)
	}
	p.CreatedAt = t
	return p, nil
}

// parseTimestamp handles both SQLite default format and RFC 3339.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeFormat, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
