package commands

import (
	"context"
	"flag"

	"github.com/evhall/gembox/internal/chat"
	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
	"github.com/evhall/gembox/internal/persona"
	"github.com/evhall/gembox/internal/tui"
)

// RunTUICommand handles the 'tui' subcommand.
func RunTUICommand(args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)

	var modelOverride string
	var personaName string
	var historyLimit int

	fs.StringVar(&modelOverride, "model", "", "override the configured model")
	fs.StringVar(&personaName, "persona", "default", "persona preset")
	fs.IntVar(&historyLimit, "history", 20, "number of prior messages sent per turn")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if modelOverride != "" {
		cfg.Model = modelOverride
	}

	p, err := persona.Get(personaName)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Model:        cfg.Model,
		Persona:      p,
		HistoryLimit: historyLimit,
		ExecuteFn: func(messages []chat.Message, system string) (string, error) {
			// The final message is the new prompt.
			last := messages[len(messages)-1]
			return client.Complete(ctx, gemini.Request{
				Prompt:  last.Content,
				System:  system,
				History: messages[:len(messages)-1],
			})
		},
	})
}
