package agent

import (
	"context"
	"errors"
)

// Client defines the interface for the external generation service.
// We define it here to decouple handlers from the specific provider implementation.
type Client interface {
	// Generate returns the complete generated text once generation finishes.
	Generate(ctx context.Context, req Request) (string, error)
	// GenerateObject constrains generation to the given schema and decodes
	// the result into out. If out implements Validator, it is validated
	// after decoding.
	GenerateObject(ctx context.Context, req Request, schema Schema, out any) error
	// Stream delivers generated text incrementally, in generation order.
	// The returned channel is closed exactly once; a Chunk with a non-nil
	// Err is terminal.
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
}

// Request carries the rendered prompt and per-operation sampling settings.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// Chunk is one increment of streamed completion text.
type Chunk struct {
	Text string
	Err  error
}

// Schema declares the expected shape of a structured completion, in JSON
// Schema form, for the provider's constrained-output mode.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Validator is implemented by structured result types that restrict
// enum fields to closed sets.
type Validator interface {
	Validate() error
}

var (
	// ErrUnavailable indicates a network or service-level failure of the
	// generation service.
	ErrUnavailable = errors.New("generation service unavailable")
	// ErrTimeout indicates generation exceeded the configured ceiling.
	ErrTimeout = errors.New("generation timed out")
	// ErrSchemaViolation indicates the service returned output that does
	// not conform to the declared schema.
	ErrSchemaViolation = errors.New("generation output violates schema")
)
