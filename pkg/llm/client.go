package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answers with no content.
var ErrEmptyResponse = errors.New("empty response from provider")

// Completer is a single-shot text completion capability. Implementations
// carry their own API key and model identifier; Complete blocks on network
// I/O and honors ctx cancellation.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
