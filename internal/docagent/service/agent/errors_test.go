package agent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRunErrorNil(t *testing.T) {
	assert.NoError(t, ClassifyRunError(nil))
}

func TestClassifyRunErrorRateLimit(t *testing.T) {
	err := ClassifyRunError(errors.New("openai: RateLimitReached for deployment gpt-4o"))
	assert.Equal(t, ErrKindRateLimit, KindOf(err))

	err = ClassifyRunError(errors.New("request failed with status 429 Too Many Requests"))
	assert.Equal(t, ErrKindRateLimit, KindOf(err))
}

func TestClassifyRunErrorGeneric(t *testing.T) {
	err := ClassifyRunError(errors.New("connection refused"))
	assert.Equal(t, ErrKindGeneric, KindOf(err))
}

func TestClassifyRunErrorPreservesWrappedChain(t *testing.T) {
	cause := errors.New("boom")
	err := ClassifyRunError(fmt.Errorf("agent run: %w", cause))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestUserMessage(t *testing.T) {
	rateLimited := ClassifyRunError(errors.New("RateLimitReached"))
	assert.Equal(t, "Rate limit reached. Please retry in 60 seconds.", UserMessage(rateLimited))

	generic := ClassifyRunError(errors.New("something broke"))
	assert.Equal(t, "Execution error: something broke", UserMessage(generic))

	// Errors that never passed through classification fall back to generic.
	assert.Equal(t, "Execution error: raw", UserMessage(errors.New("raw")))
}
