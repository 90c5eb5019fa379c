package gemini

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// The four filterable harm categories. One configured threshold applies
// to all of them.
var harmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

var thresholds = map[string]genai.HarmBlockThreshold{
	"BLOCK_NONE":             genai.HarmBlockThresholdBlockNone,
	"BLOCK_ONLY_HIGH":        genai.HarmBlockThresholdBlockOnlyHigh,
	"BLOCK_MEDIUM_AND_ABOVE": genai.HarmBlockThresholdBlockMediumAndAbove,
	"BLOCK_LOW_AND_ABOVE":    genai.HarmBlockThresholdBlockLowAndAbove,
}

// Thresholds lists the accepted safety levels, for error messages and
// the config command.
func Thresholds() []string {
	return []string{"BLOCK_NONE", "BLOCK_ONLY_HIGH", "BLOCK_MEDIUM_AND_ABOVE", "BLOCK_LOW_AND_ABOVE"}
}

// ParseThreshold maps a configured safety level onto the SDK constant.
func ParseThreshold(level string) (genai.HarmBlockThreshold, error) {
	t, ok := thresholds[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return "", fmt.Errorf("unknown safety level %q (one of: %s)", level, strings.Join(Thresholds(), ", "))
	}
	return t, nil
}

// SafetySettings builds the per-category settings for a single
// threshold applied across the board.
func SafetySettings(level string) ([]*genai.SafetySetting, error) {
	t, err := ParseThreshold(level)
	if err != nil {
		return nil, err
	}
	settings := make([]*genai.SafetySetting, 0, len(harmCategories))
	for _, c := range harmCategories {
		settings = append(settings, &genai.SafetySetting{Category: c, Threshold: t})
	}
	return settings, nil
}
