// Package llm provides the prompt-execution seam between the parsing
// pipeline and language-model providers. The pipeline has zero knowledge of
// which vendor sits behind the Executor interface.
package llm

import (
	"context"
	"fmt"
)

// Options control a single prompt execution
type Options struct {
	Temperature float32
	MaxTokens   int
}

// DefaultOptions returns conservative options for structured extraction.
// Low temperature keeps JSON output consistent.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.1,
		MaxTokens:   8192,
	}
}

// Executor is the sole network dependency of the pipeline: submit a prompt,
// receive text. Implementations must honor ctx cancellation.
type Executor interface {
	// Execute submits a prompt and returns the model's raw text response
	Execute(ctx context.Context, prompt string, opts Options) (string, error)
}

// ProviderError represents a transport, auth, or rate-limit failure from an
// LLM provider
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// ExecutorFunc adapts a plain function to the Executor interface, useful for
// tests and small adapters
type ExecutorFunc func(ctx context.Context, prompt string, opts Options) (string, error)

// Execute calls f
func (f ExecutorFunc) Execute(ctx context.Context, prompt string, opts Options) (string, error) {
	return f(ctx, prompt, opts)
}
