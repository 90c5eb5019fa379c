package gemini

import (
	"context"
	"fmt"
	"strings"
)

// ModelInfo is the subset of the API's model metadata the models
// command prints.
type ModelInfo struct {
	Name        string
	DisplayName string
}

// ListModels returns the models that support text generation, in the
// order the API yields them.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	for m, err := range c.api.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		if !supportsGenerate(m.SupportedActions) {
			continue
		}
		models = append(models, ModelInfo{
			Name:        strings.TrimPrefix(m.Name, "models/"),
			DisplayName: m.DisplayName,
		})
	}
	return models, nil
}

func supportsGenerate(actions []string) bool {
	for _, a := range actions {
		if a == "generateContent" {
			return true
		}
	}
	return false
}
