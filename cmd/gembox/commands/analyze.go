package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/evhall/gembox/internal/config"
	"github.com/evhall/gembox/internal/gemini"
	"github.com/evhall/gembox/internal/render"
)

// DefaultAnalysisPrompt is used when --prompt is not given.
const DefaultAnalysisPrompt = "Describe this image in detail: the main subject and composition, the style and technique, the color and light, and the overall quality."

// RunAnalyze handles the 'analyze' subcommand: send an image with a
// question and print the model's answer.
func RunAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)

	var prompt string
	var modelOverride string
	var quiet bool

	fs.StringVar(&prompt, "prompt", DefaultAnalysisPrompt, "question to ask about the image")
	fs.StringVar(&modelOverride, "model", "", "override the configured model")
	fs.BoolVar(&quiet, "quiet", false, "suppress non-error logs")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no image file provided")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	mime, err := imageMIME(path, data)
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
	newLogf(quiet)(fmt.Sprintf("analyzing %s (%s) with %s", path, mime, cfg.Model))

	reply, err := complete(ctx, client, gemini.Request{
		Prompt:    prompt,
		ImageData: data,
		ImageMIME: mime,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Markdown(reply))
	return nil
}

// imageMIME resolves the image type from the file extension, sniffing
// the content when the extension is unknown.
func imageMIME(path string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	case ".gif":
		return "image/gif", nil
	case ".heic":
		return "image/heic", nil
	}

	if mime := http.DetectContentType(data); strings.HasPrefix(mime, "image/") {
		return mime, nil
	}
	return "", fmt.Errorf("%s does not look like a supported image (jpeg, png, webp, gif, heic)", path)
}
