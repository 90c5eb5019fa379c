package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/evhall/gembox/internal/chat"
	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
	"github.com/evhall/gembox/internal/persona"
	"github.com/evhall/gembox/internal/render"
)

// RunOneShot handles the default mode: send one prompt, print the
// reply.
func RunOneShot(args []string) error {
	fs := flag.NewFlagSet("gembox", flag.ExitOnError)

	var modelOverride string
	var personaName string
	var systemPrompt string
	var maxTokens int
	var quiet bool

	fs.StringVar(&modelOverride, "model", "", "override the configured model")
	fs.StringVar(&personaName, "persona", "", "persona preset (see `gembox help`)")
	fs.StringVar(&systemPrompt, "system", "", "system prompt (overrides persona)")
	fs.IntVar(&maxTokens, "max", 0, "max output tokens for this call")
	fs.BoolVar(&quiet, "quiet", false, "suppress non-error logs")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no prompt provided")
	}
	prompt := strings.Join(fs.Args(), " ")

	logf := newLogf(quiet)

	cfg := config.Load()
	if modelOverride != "" {
		cfg.Model = modelOverride
	}

	system := systemPrompt
	if system == "" && personaName != "" {
		p, err := persona.Get(personaName)
		if err != nil {
			return err
		}
		system = p.SystemPrompt
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	logf("model: " + cfg.Model)

	reply, err := complete(ctx, client, gemini.Request{
		Prompt:    prompt,
		System:    system,
		History:   []chat.Message{},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Markdown(reply))
	return nil
}

// PrintUsage prints the top-level help text.
func PrintUsage() {
	fmt.Println("gembox - Gemini CLI toolkit")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gembox [OPTIONS] \"your prompt\"               One-shot generation")
	fmt.Println("  gembox chat [OPTIONS]                         Interactive chat")
	fmt.Println("  gembox tui [OPTIONS]                          Full-screen chat")
	fmt.Println("  gembox translate --to LANG \"text\"            Translate text")
	fmt.Println("  gembox summarize --max N \"text\"              Summarize text")
	fmt.Println("  gembox code --lang LANG \"description\"        Generate code")
	fmt.Println("  gembox write --style STYLE \"topic\"           Creative writing")
	fmt.Println("  gembox analyze IMAGE [--prompt TEXT]          Ask about an image")
	fmt.Println("  gembox imageprompt generate --style S \"desc\"  Assemble an image prompt")
	fmt.Println("  gembox imageprompt vary --count N \"prompt\"    Prompt variations")
	fmt.Println("  gembox imageprompt refine \"description\"       Model-refined prompt")
	fmt.Println("  gembox imageprompt story --count N \"theme\"    Image prompts telling a story")
	fmt.Println("  gembox imageprompt styles                     List prompt styles")
	fmt.Println("  gembox imageprompt tips                       Prompt-writing tips")
	fmt.Println("  gembox models                                 List available models")
	fmt.Println("  gembox prompts list|show|delete               Saved prompt library")
	fmt.Println("  gembox config                                 Show configuration")
	fmt.Println()
	fmt.Println("COMMON OPTIONS:")
	fmt.Println("  --model NAME     Override the configured model")
	fmt.Println("  --persona NAME   Persona preset (see below)")
	fmt.Println("  --system TEXT    System prompt (overrides persona)")
	fmt.Println("  --quiet          Suppress non-error logs")
	fmt.Println()
	fmt.Println("PERSONAS:")
	for _, p := range persona.List() {
		fmt.Printf("  %-12s %s\n", p.Name, p.Description)
	}
	fmt.Println()
	fmt.Println("Set GOOGLE_API_KEY (or put it in .env) for commands that call the API.")
}
