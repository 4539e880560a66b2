// Package scribe provides speech-to-text transcription of media blobs.
package scribe

import (
	"context"
	"fmt"
)

// Result is a language-tagged transcript.
type Result struct {
	Text         string
	LanguageCode string
}

// Provider defines the interface for transcription backends.
type Provider interface {
	// Transcribe submits a media blob and returns the transcript.
	Transcribe(ctx context.Context, audio []byte) (*Result, error)
	// Name returns the name of this provider.
	Name() string
}

// APIError is a non-success response from a transcription service. Body
// holds the service's error text so callers can surface it to the user.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("transcription service returned status %d: %s", e.StatusCode, e.Body)
}
