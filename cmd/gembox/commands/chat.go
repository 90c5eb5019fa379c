package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/evhall/gembox/internal/chat"
	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
	"github.com/evhall/gembox/internal/persona"
	"github.com/evhall/gembox/internal/render"
)

// RunChatCommand handles the 'chat' subcommand.
func RunChatCommand(args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)

	var modelOverride string
	var personaName string
	var systemPrompt string
	var historyLimit int
	var quiet bool

	fs.StringVar(&modelOverride, "model", "", "override the configured model")
	fs.StringVar(&personaName, "persona", "default", "persona preset")
	fs.StringVar(&systemPrompt, "system", "", "system prompt (overrides persona)")
	fs.IntVar(&historyLimit, "history", 20, "number of prior messages sent per turn")
	fs.BoolVar(&quiet, "quiet", false, "suppress non-error logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if modelOverride != "" {
		cfg.Model = modelOverride
	}

	current, err := persona.Get(personaName)
	if err != nil {
		return err
	}
	system := current.SystemPrompt
	if systemPrompt != "" {
		system = systemPrompt
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}

	logf := newLogf(quiet)
	logf("model: " + cfg.Model)

	return runChatLoop(ctx, client, cfg, current, system, historyLimit)
}

func runChatLoop(ctx context.Context, client gemini.Completer, cfg config.Config, current persona.Persona, system string, historyLimit int) error {
	fmt.Fprintf(os.Stderr, "Chat mode (model: %s | persona: %s)\n", cfg.Model, current.Name)
	if system != "" {
		fmt.Fprintf(os.Stderr, "System: %s\n", system)
	}
	fmt.Fprintln(os.Stderr, "Type /help for commands, Ctrl+C or Ctrl+D to exit.")
	fmt.Fprintln(os.Stderr)

	rl, err := readline.New("[" + current.Name + "] > ")
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	var history []chat.Message

	for {
		rl.SetPrompt("[" + current.Name + "] > ")
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Fprintln(os.Stderr, "\nExiting chat mode...")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			quit, err := handleSlash(input, &history, &current, &system, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "[error] %v\n\n", err)
				continue
			}
			if quit {
				return nil
			}
			continue
		}

		messages := chat.BuildHistory(history, historyLimit, input)
		reply, err := complete(ctx, client, gemini.Request{
			Prompt:  input,
			System:  system,
			History: messages[:len(messages)-1],
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "[error] %v\n\n", err)
			continue
		}

		fmt.Print(render.Markdown(reply))
		fmt.Println()

		history = append(history, chat.UserMessage(input), chat.ModelMessage(reply))
	}
}

// handleSlash dispatches the in-chat commands. It reports whether the
// loop should exit.
func handleSlash(input string, history *[]chat.Message, current *persona.Persona, system *string, cfg config.Config) (bool, error) {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/quit", "/exit":
		fmt.Fprintln(os.Stderr, "Exiting chat mode...")
		return true, nil

	case "/clear":
		*history = nil
		fmt.Fprintln(os.Stderr, "History cleared.")

	case "/save":
		path := rest
		if path == "" {
			path = chat.DefaultTranscriptName(timeNow())
		}
		if err := chat.SaveTranscript(path, *system, *history); err != nil {
			return false, err
		}
		fmt.Fprintf(os.Stderr, "Transcript saved to %s\n", path)

	case "/system":
		if rest == "" {
			return false, fmt.Errorf("usage: /system TEXT")
		}
		*system = rest
		fmt.Fprintln(os.Stderr, "System prompt updated.")

	case "/persona":
		if rest == "" {
			fmt.Fprintf(os.Stderr, "Personas: %s\n", strings.Join(persona.Names(), ", "))
			return false, nil
		}
		p, err := persona.Get(rest)
		if err != nil {
			return false, err
		}
		*current = p
		*system = p.SystemPrompt
		fmt.Fprintf(os.Stderr, "Switched to persona: %s\n", p.Name)

	case "/config":
		printConfig(os.Stderr, cfg)

	case "/help":
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  /save [FILE]    Save the transcript")
		fmt.Fprintln(os.Stderr, "  /clear          Forget the conversation so far")
		fmt.Fprintln(os.Stderr, "  /system TEXT    Set the system prompt")
		fmt.Fprintln(os.Stderr, "  /persona NAME   Switch persona (bare /persona lists them)")
		fmt.Fprintln(os.Stderr, "  /config         Show the current configuration")
		fmt.Fprintln(os.Stderr, "  /quit           Exit")

	default:
		return false, fmt.Errorf("unknown command %s (try /help)", cmd)
	}
	return false, nil
}
