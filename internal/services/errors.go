package services

import (
	"errors"
	"fmt"
)

// Custom errors

// ErrNoUsableModel is returned when neither the preference list nor the
// provider's model listing yields a model that supports generation.
var ErrNoUsableModel = errors.New("no usable Gemini model found for this API key")

// MissingKeyError is returned before any network call when the provider's
// credential is not configured.
type MissingKeyError struct{ Provider string }

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ProviderError carries a non-success provider response verbatim.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider request failed: %d %s", e.StatusCode, e.Body)
}
