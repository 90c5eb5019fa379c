package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
	"github.com/evhall/gembox/internal/render"
	"github.com/evhall/gembox/internal/task"
)

// taskFlags are the options every task subcommand shares.
type taskFlags struct {
	fs            *flag.FlagSet
	modelOverride string
	quiet         bool
}

func newTaskFlags(name string) *taskFlags {
	tf := &taskFlags{fs: flag.NewFlagSet(name, flag.ExitOnError)}
	tf.fs.StringVar(&tf.modelOverride, "model", "", "override the configured model")
	tf.fs.BoolVar(&tf.quiet, "quiet", false, "suppress non-error logs")
	return tf
}

func (tf *taskFlags) parse(args []string) (string, error) {
	if err := tf.fs.Parse(args); err != nil {
		return "", err
	}
	if tf.fs.NArg() == 0 {
		return "", fmt.Errorf("no input text provided")
	}
	return strings.Join(tf.fs.Args(), " "), nil
}

// RunTranslate handles the 'translate' subcommand.
func RunTranslate(args []string) error {
	tf := newTaskFlags("translate")
	var target string
	tf.fs.StringVar(&target, "to", task.DefaultTargetLanguage, "target language")

	text, err := tf.parse(args)
	if err != nil {
		return err
	}
	return runTask(task.Translate(text, target), tf)
}

// RunSummarize handles the 'summarize' subcommand.
func RunSummarize(args []string) error {
	tf := newTaskFlags("summarize")
	var maxWords int
	tf.fs.IntVar(&maxWords, "max", task.DefaultSummaryWords, "summary length limit in words")

	text, err := tf.parse(args)
	if err != nil {
		return err
	}
	return runTask(task.Summarize(text, maxWords), tf)
}

// RunCode handles the 'code' subcommand.
func RunCode(args []string) error {
	tf := newTaskFlags("code")
	var language string
	tf.fs.StringVar(&language, "lang", task.DefaultCodeLanguage, "programming language")

	description, err := tf.parse(args)
	if err != nil {
		return err
	}
	return runTask(task.Code(description, language), tf)
}

// RunWrite handles the 'write' subcommand.
func RunWrite(args []string) error {
	tf := newTaskFlags("write")
	var style string
	tf.fs.StringVar(&style, "style", task.DefaultWritingStyle, "writing style")

	topic, err := tf.parse(args)
	if err != nil {
		return err
	}
	return runTask(task.Write(topic, style), tf)
}

func runTask(t task.Task, tf *taskFlags) error {
	cfg := config.Load()
	if tf.modelOverride != "" {
		cfg.Model = tf.modelOverride
	}

	ctx := context.Background()
	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	newLogf(tf.quiet)(fmt.Sprintf("task: %s | model: %s", t.Name, cfg.Model))

	reply, err := complete(ctx, client, gemini.Request{
		Prompt:      t.Prompt,
		Temperature: t.Temperature,
		MaxTokens:   t.MaxTokens,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Markdown(reply))
	return nil
}
