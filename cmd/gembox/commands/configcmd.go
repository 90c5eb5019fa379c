package commands

import (
	"flag"
	"os"

	"github.com/evhall/gembox/internal/config"
)

// RunConfig handles the 'config' subcommand. It never needs an API
// key.
func RunConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	printConfig(os.Stdout, config.Load())
	return nil
}
