package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"invotab/internal/model"
)

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := model.NewRateLimitError("gemini", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
	assert.Equal(t, "gemini", err.Provider)
}

func TestNewRateLimitError_ExplicitRetryAfter(t *testing.T) {
	err := model.NewRateLimitError("claude", errors.New("429"), 30)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
}

func TestRateLimitError_Unwrap(t *testing.T) {
	cause := errors.New("too many requests")
	err := model.NewRateLimitError("openai", cause, 10)
	assert.ErrorIs(t, err, cause)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, model.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, model.ParseRetryAfterHeader("Wed, 21 Oct 2025 07:28:00 GMT"))
	assert.Equal(t, 45, model.ParseRetryAfterHeader("45"))
}
