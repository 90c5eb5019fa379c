package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
	"github.com/evhall/gembox/internal/promptgen"
	"github.com/evhall/gembox/internal/render"
	"github.com/evhall/gembox/internal/store"
)

// RunImagePrompt dispatches the 'imageprompt' subcommands. Everything
// except refine runs locally, without an API key.
func RunImagePrompt(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gembox imageprompt generate|vary|refine|story|styles|tips")
	}
	switch args[0] {
	case "generate":
		return runGenerate(args[1:])
	case "vary":
		return runVary(args[1:])
	case "refine":
		return runRefine(args[1:])
	case "story":
		return runStory(args[1:])
	case "styles":
		return runStyles(args[1:])
	case "tips":
		return runTips(args[1:])
	default:
		return fmt.Errorf("unknown imageprompt command %q (generate|vary|refine|story|styles|tips)", args[0])
	}
}

// newAssembler loads any user style pack on top of the built-ins.
func newAssembler() (*promptgen.Assembler, error) {
	userStyles, err := promptgen.LoadUserStyles(config.StylesFile())
	if err != nil {
		return nil, fmt.Errorf("load user styles: %w", err)
	}
	return promptgen.New(userStyles...), nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("imageprompt generate", flag.ExitOnError)

	var styleName string
	var count int
	var seed int64
	var save bool
	var export bool
	var outPath string

	fs.StringVar(&styleName, "style", promptgen.DefaultStyle, "prompt style")
	fs.IntVar(&count, "count", 0, "number of variations to generate")
	fs.Int64Var(&seed, "seed", 0, "random seed for variations")
	fs.BoolVar(&save, "save", false, "save to the prompt library")
	fs.BoolVar(&export, "export", false, "export under a timestamped default name")
	fs.StringVar(&outPath, "out", "", "export to a text file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no description provided")
	}
	description := strings.Join(fs.Args(), " ")
	seeded := flagSet(fs, "seed")

	asm, err := newAssembler()
	if err != nil {
		return err
	}
	prompt, err := asm.GeneratePrompt(description, styleName)
	if err != nil {
		return err
	}

	var variations []string
	if count > 0 {
		if seeded {
			variations = promptgen.CreateVariationsSeeded(prompt, count, seed)
		} else {
			variations = promptgen.CreateVariations(prompt, count)
		}
	}

	fmt.Println(prompt)
	for i, v := range variations {
		fmt.Printf("\nVariation %d:\n%s\n", i+1, v)
	}

	entry := store.SavedPrompt{
		Description: description,
		Style:       styleName,
		Prompt:      prompt,
		Variations:  variations,
	}
	if save {
		id, err := saveToLibrary(entry)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved to library as #%d\n", id)
	}
	if export || outPath != "" {
		path := resolveExportPath(outPath)
		if err := exportToFile(path, entry); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
	}
	return nil
}

func runVary(args []string) error {
	fs := flag.NewFlagSet("imageprompt vary", flag.ExitOnError)

	var count int
	var seed int64
	fs.IntVar(&count, "count", 3, "number of variations")
	fs.Int64Var(&seed, "seed", 0, "random seed")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no base prompt provided")
	}
	base := strings.Join(fs.Args(), " ")

	var variations []string
	if flagSet(fs, "seed") {
		variations = promptgen.CreateVariationsSeeded(base, count, seed)
	} else {
		variations = promptgen.CreateVariations(base, count)
	}

	for i, v := range variations {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Variation %d:\n%s\n", i+1, v)
	}
	return nil
}

func runRefine(args []string) error {
	fs := flag.NewFlagSet("imageprompt refine", flag.ExitOnError)

	var styleName string
	var negative bool
	var modelOverride string
	var quiet bool

	fs.StringVar(&styleName, "style", promptgen.DefaultStyle, "prompt style")
	fs.BoolVar(&negative, "negative", false, "also produce a negative prompt")
	fs.StringVar(&modelOverride, "model", "", "override the configured model")
	fs.BoolVar(&quiet, "quiet", false, "suppress non-error logs")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no description provided")
	}
	description := strings.Join(fs.Args(), " ")

	asm, err := newAssembler()
	if err != nil {
		return err
	}
	draft, err := asm.GeneratePrompt(description, styleName)
	if err != nil {
		return err
	}

	cfg := config.Load()
	if modelOverride != "" {
		cfg.Model = modelOverride
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	newLogf(quiet)("model: " + cfg.Model)

	reply, err := complete(ctx, client, gemini.Request{Prompt: refinePrompt(draft, negative)})
	if err != nil {
		return err
	}

	fmt.Println(strings.TrimSpace(reply))
	if negative {
		fmt.Println("\nFallback negative prompt:")
		fmt.Println(promptgen.DefaultNegativePrompt)
	}
	return nil
}

// refinePrompt is the instruction sent to the model to polish an
// assembled draft.
func refinePrompt(draft string, negative bool) string {
	var sb strings.Builder
	sb.WriteString("Improve the following AI image generation prompt.\n\n")
	sb.WriteString("Prompt: " + draft + "\n\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("1. Use professional art and photography vocabulary\n")
	sb.WriteString("2. Add concrete visual detail\n")
	sb.WriteString("3. Keep quality modifiers\n")
	sb.WriteString("4. Output only the improved prompt, no explanation\n")
	if negative {
		sb.WriteString("5. On a second line, output a matching negative prompt prefixed with \"Negative: \"\n")
	}
	return sb.String()
}

func runStory(args []string) error {
	fs := flag.NewFlagSet("imageprompt story", flag.ExitOnError)

	var count int
	var modelOverride string
	var quiet bool

	fs.IntVar(&count, "count", 4, "number of images in the story")
	fs.StringVar(&modelOverride, "model", "", "override the configured model")
	fs.BoolVar(&quiet, "quiet", false, "suppress non-error logs")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no theme provided")
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	theme := strings.Join(fs.Args(), " ")

	cfg := config.Load()
	if modelOverride != "" {
		cfg.Model = modelOverride
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	newLogf(quiet)("model: " + cfg.Model)

	reply, err := complete(ctx, client, gemini.Request{Prompt: storyPrompt(theme, count)})
	if err != nil {
		return err
	}

	fmt.Print(render.Markdown(reply))
	return nil
}

// storyPrompt asks the model for a visual story: a sequence of related
// image prompts around one theme.
func storyPrompt(theme string, count int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a visual story of %d images around the theme %q.\n\n", count, theme)
	sb.WriteString("For each image give:\n")
	sb.WriteString("1. A scene description\n")
	sb.WriteString("2. A detailed English image-generation prompt\n")
	sb.WriteString("3. Its role in the story\n\n")
	sb.WriteString("Start with a story title and a one-paragraph story description, ")
	sb.WriteString("then number the images in sequence. Format everything as markdown.")
	return sb.String()
}

func runStyles(args []string) error {
	fs := flag.NewFlagSet("imageprompt styles", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	asm, err := newAssembler()
	if err != nil {
		return err
	}

	fmt.Println("Available styles:")
	for _, s := range asm.Styles() {
		fmt.Printf("  %-16s %s\n", s.Name, s.Suffix)
	}
	return nil
}

func runTips(args []string) error {
	fs := flag.NewFlagSet("imageprompt tips", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Println("Elements of a good image prompt:")
	for _, tip := range promptgen.Tips {
		fmt.Println("  - " + tip)
	}
	fmt.Println("\nStock negative prompt:")
	fmt.Println("  " + promptgen.DefaultNegativePrompt)
	return nil
}

// flagSet reports whether the named flag was given explicitly.
func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
