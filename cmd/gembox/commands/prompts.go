package commands

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/store"
)

// RunPrompts dispatches the saved-prompt library subcommands.
func RunPrompts(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gembox prompts list|show|delete")
	}
	switch args[0] {
	case "list":
		return runPromptsList(args[1:])
	case "show":
		return runPromptsShow(args[1:])
	case "delete":
		return runPromptsDelete(args[1:])
	default:
		return fmt.Errorf("unknown prompts command %q (list|show|delete)", args[0])
	}
}

// openLibrary opens the SQLite library, creating the config dir on
// first use.
func openLibrary() (store.Store, error) {
	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return store.NewSQLiteStore(config.LibraryFile())
}

// saveToLibrary stores one entry and returns its ID.
func saveToLibrary(p store.SavedPrompt) (int64, error) {
	s, err := openLibrary()
	if err != nil {
		return 0, err
	}
	defer s.Close()
	return s.Save(p)
}

// resolveExportPath picks the export target: an explicit --out wins,
// otherwise the timestamped default name in the working directory.
func resolveExportPath(outPath string) string {
	if outPath != "" {
		return outPath
	}
	return store.DefaultExportName(timeNow())
}

// exportToFile writes an entry in the flat text export format.
func exportToFile(path string, p store.SavedPrompt) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := store.ExportText(f, p, timeNow()); err != nil {
		f.Close()
		return fmt.Errorf("write export: %w", err)
	}
	return f.Close()
}

func runPromptsList(args []string) error {
	fs := flag.NewFlagSet("prompts list", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	prompts, err := s.List()
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		fmt.Println("Library is empty. Save one with: gembox imageprompt generate --save \"...\"")
		return nil
	}

	for _, p := range prompts {
		desc := p.Description
		if len(desc) > 60 {
			desc = desc[:60] + "..."
		}
		fmt.Printf("#%-4d %s  %-16s %s\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"), p.Style, desc)
	}
	return nil
}

func runPromptsShow(args []string) error {
	fs := flag.NewFlagSet("prompts show", flag.ExitOnError)
	var outPath string
	var export bool
	fs.StringVar(&outPath, "out", "", "export to a text file")
	fs.BoolVar(&export, "export", false, "export under a timestamped default name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := promptID(fs)
	if err != nil {
		return err
	}

	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("#%d  %s  (%s)\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04:05"), p.Style)
	fmt.Printf("Description: %s\n\n", p.Description)
	fmt.Println(p.Prompt)
	for i, v := range p.Variations {
		fmt.Printf("\nVariation %d:\n%s\n", i+1, v)
	}

	if export || outPath != "" {
		path := resolveExportPath(outPath)
		if err := exportToFile(path, p); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", path)
	}
	return nil
}

func runPromptsDelete(args []string) error {
	fs := flag.NewFlagSet("prompts delete", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := promptID(fs)
	if err != nil {
		return err
	}

	s, err := openLibrary()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(id); err != nil {
		return err
	}
	fmt.Printf("Deleted prompt #%d\n", id)
	return nil
}

func promptID(fs *flag.FlagSet) (int64, error) {
	if fs.NArg() == 0 {
		return 0, fmt.Errorf("no prompt ID provided")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid prompt ID %q", fs.Arg(0))
	}
	return id, nil
}
