package http_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	llmhttp "github.com/arcano/oracle/internal/adapter/llm/http"
)

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		name      string
		err       *llmhttp.Error
		wantType  llmhttp.ErrorType
		status    int
		retryable bool
	}{
		{"authentication", llmhttp.NewAuthenticationError("groq", "bad key"), llmhttp.ErrTypeAuthentication, 401, false},
		{"rate limit", llmhttp.NewRateLimitError("groq", "slow down"), llmhttp.ErrTypeRateLimit, 429, true},
		{"service unavailable", llmhttp.NewServiceUnavailableError("groq", "down"), llmhttp.ErrTypeServiceUnavailable, 503, true},
		{"invalid request", llmhttp.NewInvalidRequestError("groq", "bad body"), llmhttp.ErrTypeInvalidRequest, 400, false},
		{"timeout", llmhttp.NewTimeoutError("groq", "timed out"), llmhttp.ErrTypeTimeout, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantType, tc.err.Type)
			assert.Equal(t, tc.status, tc.err.StatusCode)
			assert.Equal(t, tc.retryable, tc.err.IsRetryable())
			assert.Equal(t, "groq", tc.err.Provider)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := llmhttp.NewRateLimitError("groq", "slow down")

	assert.Equal(t, "groq: rate limit exceeded: slow down (status: 429)", err.Error())
}

func TestError_IsMatchesByType(t *testing.T) {
	wrapped := fmt.Errorf("call failed: %w", llmhttp.NewRateLimitError("groq", "slow down"))

	assert.ErrorIs(t, wrapped, &llmhttp.Error{Type: llmhttp.ErrTypeRateLimit})
	assert.NotErrorIs(t, wrapped, &llmhttp.Error{Type: llmhttp.ErrTypeTimeout})
}

func TestRedactAPIKey(t *testing.T) {
	logger := llmhttp.NewDefaultLogger(llmhttp.LogLevelDebug, llmhttp.LogFormatHuman, true)

	assert.Equal(t, "[REDACTED-3456]", logger.RedactAPIKey("gsk_123456"))
	assert.Equal(t, "[REDACTED]", logger.RedactAPIKey("key"))

	passthrough := llmhttp.NewDefaultLogger(llmhttp.LogLevelDebug, llmhttp.LogFormatHuman, false)
	assert.Equal(t, "gsk_123456", passthrough.RedactAPIKey("gsk_123456"))
}
