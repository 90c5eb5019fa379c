package config

import (
	"os"
	"path/filepath"
)

func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gembox")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "gembox")
}

// LibraryFile is the SQLite database holding saved image prompts.
func LibraryFile() string { return filepath.Join(Dir(), "prompts.db") }

// StylesFile is the optional user-defined image-prompt style pack.
func StylesFile() string { return filepath.Join(Dir(), "styles.yaml") }
