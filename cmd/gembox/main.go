package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/evhall/gembox/cmd/gembox/commands"
	"github.com/evhall/gembox/internal/gemini"
)

func main() {
	if len(os.Args) < 2 {
		commands.PrintUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "chat":
		err = commands.RunChatCommand(os.Args[2:])
	case "tui":
		err = commands.RunTUICommand(os.Args[2:])
	case "translate":
		err = commands.RunTranslate(os.Args[2:])
	case "summarize":
		err = commands.RunSummarize(os.Args[2:])
	case "code":
		err = commands.RunCode(os.Args[2:])
	case "write":
		err = commands.RunWrite(os.Args[2:])
	case "analyze":
		err = commands.RunAnalyze(os.Args[2:])
	case "imageprompt":
		err = commands.RunImagePrompt(os.Args[2:])
	case "models":
		err = commands.RunModels(os.Args[2:])
	case "config":
		err = commands.RunConfig(os.Args[2:])
	case "prompts":
		err = commands.RunPrompts(os.Args[2:])
	case "help", "-h", "--help":
		commands.PrintUsage()
	default:
		// Anything else is the prompt for a one-shot query.
		err = commands.RunOneShot(os.Args[1:])
	}

	if err != nil {
		if errors.Is(err, gemini.ErrMissingKey) {
			fmt.Fprintln(os.Stderr, "[gembox] GOOGLE_API_KEY is not set; export it or add it to .env")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "[gembox] error: %v\n", err)
		os.Exit(1)
	}
}
