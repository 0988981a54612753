package ai

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	ErrUnauthorized   = errors.New("ai api key rejected")
	ErrModelNotFound  = errors.New("ai model unavailable")
	ErrRateLimited    = errors.New("ai rate limit exceeded")
	ErrQuotaExhausted = errors.New("ai quota exhausted")
)

// UpstreamError carries an unclassified upstream failure along with its
// status text so the handler can surface it.
type UpstreamError struct {
	Code   int
	Status string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai service error: %d %s", e.Code, e.Status)
}

// classify re-tags an upstream error into a sentinel immediately at the
// call boundary; raw client errors never reach the handlers un-annotated.
func classify(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Code == 401 || apiErr.Code == 403:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Status)
	case apiErr.Code == 404:
		return fmt.Errorf("%w: %s", ErrModelNotFound, model)
	case apiErr.Code == 402:
		return fmt.Errorf("%w: %s", ErrQuotaExhausted, apiErr.Status)
	case apiErr.Code == 429 && strings.Contains(strings.ToLower(apiErr.Message), "quota"):
		// Gemini reports both throttling and exhausted quota as 429
		// RESOURCE_EXHAUSTED; the message text is the only discriminator.
		return fmt.Errorf("%w: %s", ErrQuotaExhausted, apiErr.Status)
	case apiErr.Code == 429:
		return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Status)
	default:
		return &UpstreamError{Code: apiErr.Code, Status: apiErr.Status}
	}
}
