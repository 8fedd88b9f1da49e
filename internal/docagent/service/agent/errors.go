package agent

import (
	"errors"
	"strings"
)

// ErrorKind classifies a failed agent run for user-facing reporting.
type ErrorKind int

const (
	// ErrKindGeneric is any run failure without a more specific mapping.
	ErrKindGeneric ErrorKind = iota

	// ErrKindRateLimit is a provider rate-limit rejection.
	ErrKindRateLimit
)

// rateLimitMarkers are the provider error-text fragments that indicate rate
// limiting. The match is textual because the provider error is not typed;
// keeping it here confines the fragility to a single place.
var rateLimitMarkers = []string{
	"RateLimitReached",
	"429",
}

// RunError wraps a run failure with its classification.
type RunError struct {
	Kind ErrorKind
	Err  error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// ClassifyRunError wraps an agent-run failure with its ErrorKind. A nil error
// stays nil.
func ClassifyRunError(err error) error {
	if err == nil {
		return nil
	}

	kind := ErrKindGeneric
	text := err.Error()
	for _, marker := range rateLimitMarkers {
		if strings.Contains(text, marker) {
			kind = ErrKindRateLimit
			break
		}
	}

	return &RunError{Kind: kind, Err: err}
}

// KindOf returns the classification of err, defaulting to ErrKindGeneric for
// errors that did not pass through ClassifyRunError.
func KindOf(err error) ErrorKind {
	var re *RunError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ErrKindGeneric
}

// UserMessage maps a run failure to the message shown to the user. Both
// frontends use this so the error taxonomy stays consistent.
func UserMessage(err error) string {
	switch KindOf(err) {
	case ErrKindRateLimit:
		return "Rate limit reached. Please retry in 60 seconds."
	default:
		return "Execution error: " + err.Error()
	}
}
