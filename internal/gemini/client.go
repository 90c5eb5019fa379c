// Package gemini wraps the Google generative-language SDK behind a
// small Completer interface so commands can run against a mock.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/evhall/gembox/internal/chat"
	"github.com/evhall/gembox/internal/config"
)

// Request is one completion call. Nil Temperature and zero MaxTokens
// mean "use the configured defaults". ImageData (with its MIME type)
// rides inline alongside the prompt for multimodal calls.
type Request struct {
	Prompt      string
	System      string
	History     []chat.Message
	Temperature *float64
	MaxTokens   int
	ImageData   []byte
	ImageMIME   string
}

// Completer is the surface commands talk to. *Client implements it
// against the real API; tests use MockCompleter.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type Client struct {
	api *genai.Client
	cfg config.Config
}

// New builds a client from config. The API key is required here; the
// local-only commands never construct a Client.
func New(ctx context.Context, cfg config.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingKey
	}
	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{api: api, cfg: cfg}, nil
}

// Complete sends the prompt (with any history) and returns the text of
// the first candidate. Abnormal finish reasons map to sentinel errors.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	genCfg, err := c.generateConfig(req)
	if err != nil {
		return "", err
	}

	resp, err := c.api.Models.GenerateContent(ctx, c.cfg.Model, buildContents(req), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmpty
	}

	switch resp.Candidates[0].FinishReason {
	case genai.FinishReasonSafety:
		return "", ErrBlocked
	case genai.FinishReasonMaxTokens:
		return "", ErrTruncated
	case genai.FinishReasonRecitation:
		return "", ErrRecitation
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

func (c *Client) generateConfig(req Request) (*genai.GenerateContentConfig, error) {
	safety, err := SafetySettings(c.cfg.Safety)
	if err != nil {
		return nil, err
	}

	temperature := c.cfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := c.cfg.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(temperature)),
		TopP:            genai.Ptr(float32(c.cfg.TopP)),
		TopK:            genai.Ptr(float32(c.cfg.TopK)),
		MaxOutputTokens: int32(maxTokens),
		SafetySettings:  safety,
	}
	if req.System != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	return genCfg, nil
}

// buildContents turns the in-memory history plus the new prompt into
// the SDK's content list. System messages never appear here; they ride
// in the system instruction.
func buildContents(req Request) []*genai.Content {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, m := range req.History {
		if m.Role == chat.RoleSystem {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  m.Role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	parts := []*genai.Part{{Text: req.Prompt}}
	if len(req.ImageData) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: req.ImageMIME, Data: req.ImageData},
		})
	}
	return append(contents, &genai.Content{
		Role:  chat.RoleUser,
		Parts: parts,
	})
}
