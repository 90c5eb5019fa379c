package gemini

import "errors"

// Sentinel errors for the failure modes callers are expected to branch
// on. Everything else comes back wrapped from the SDK.
var (
	// ErrMissingKey means GOOGLE_API_KEY is not set.
	ErrMissingKey = errors.New("GOOGLE_API_KEY is not set")

	// ErrBlocked means the safety filter stopped the response.
	ErrBlocked = errors.New("response blocked by safety filter")

	// ErrTruncated means generation hit the max token limit.
	ErrTruncated = errors.New("response truncated at max tokens")

	// ErrRecitation means the model stopped for recited content.
	ErrRecitation = errors.New("response stopped for recitation")

	// ErrEmpty means the API returned no usable candidate.
	ErrEmpty = errors.New("empty response")
)
