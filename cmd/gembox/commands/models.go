package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/evhall/gembox/internal/cli"
	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
)

// RunModels handles the 'models' subcommand.
func RunModels(args []string) error {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newClient(ctx, config.Load())
	if err != nil {
		return err
	}

	models, err := cli.ExecuteWithSpinner("fetching models...", func() ([]gemini.ModelInfo, error) {
		return client.ListModels(ctx)
	})
	if err != nil {
		return err
	}

	fmt.Println("Models supporting content generation:")
	for _, m := range models {
		if m.DisplayName != "" && m.DisplayName != m.Name {
			fmt.Printf("  %s (%s)\n", m.Name, m.DisplayName)
		} else {
			fmt.Printf("  %s\n", m.Name)
		}
	}
	return nil
}
