// Package commands implements the gembox subcommands. Each Run*
// function owns its flag set and returns an error for main to report.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/evhall/gembox/internal/cli"
	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
)

// stubbed in tests
var timeNow = time.Now

// newLogf returns the stderr logger the commands share; --quiet turns
// it into a no-op.
func newLogf(quiet bool) func(string) {
	return func(msg string) {
		if quiet {
			return
		}
		fmt.Fprintf(os.Stderr, "[gembox] %s\n", msg)
	}
}

// newClient builds the real API client from the resolved config.
func newClient(ctx context.Context, cfg config.Config) (*gemini.Client, error) {
	return gemini.New(ctx, cfg)
}

// complete runs one completion behind the spinner.
func complete(ctx context.Context, c gemini.Completer, req gemini.Request) (string, error) {
	return cli.ExecuteWithSpinner("thinking...", func() (string, error) {
		return c.Complete(ctx, req)
	})
}

// printConfig writes the resolved configuration, key redacted.
func printConfig(w *os.File, cfg config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintf(w, "  API key:     %s\n", cfg.RedactedKey())
	fmt.Fprintf(w, "  Model:       %s\n", cfg.Model)
	fmt.Fprintf(w, "  Temperature: %g\n", cfg.Temperature)
	fmt.Fprintf(w, "  Top-p:       %g\n", cfg.TopP)
	fmt.Fprintf(w, "  Top-k:       %d\n", cfg.TopK)
	fmt.Fprintf(w, "  Max tokens:  %d\n", cfg.MaxTokens)
	fmt.Fprintf(w, "  Safety:      %s\n", cfg.Safety)
	fmt.Fprintf(w, "  Config dir:  %s\n", config.Dir())
}
