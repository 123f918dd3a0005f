package pokeapi

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors classifying adapter failures. Match them with errors.Is.
var (
	// ErrNotFound indicates the API answered 404 for the requested record.
	ErrNotFound = errors.New("pokemon not found")

	// ErrMalformedResponse indicates a response body that is not valid JSON
	// or lacks a required field.
	ErrMalformedResponse = errors.New("malformed API response")

	// ErrTransport indicates a network failure or an unexpected HTTP status.
	ErrTransport = errors.New("API request failed")
)

// IsCanceled reports whether err stems from a cancelled fetch. Cancellation
// is expected when a fetch is superseded or its view is torn down.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func malformed(what string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(what, args...))
}
