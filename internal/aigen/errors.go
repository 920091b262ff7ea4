package aigen

import "fmt"

// GenerationError represents a provider-side failure while generating the
// AI candidate
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("AI generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ResponseParseError represents a model response that could not be coerced
// into the expected JSON shape. Callers fall back to the heuristic
// candidate; this is not a fatal pipeline error.
type ResponseParseError struct {
	Message string
	Cause   error
}

func (e *ResponseParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI response parse failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("AI response parse failed: %s", e.Message)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Cause
}
