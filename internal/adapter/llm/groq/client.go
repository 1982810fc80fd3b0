// Package groq is the HTTP adapter for Groq's OpenAI-compatible chat
// completion service. It maps transport failures into typed errors and
// reports empty completions as empty strings, leaving domain policy to the
// interpretation pipeline.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	llmhttp "github.com/arcano/oracle/internal/adapter/llm/http"
	"github.com/arcano/oracle/internal/usecase/reading"
)

const (
	defaultBaseURL = "https://api.groq.com"
	completionPath = "/openai/v1/chat/completions"
	defaultTimeout = 60 * time.Second

	// DefaultModel is the completion model used when none is configured.
	DefaultModel = "llama-3.3-70b-versatile"

	providerName = "groq"
)

// Client is an HTTP client for the Groq API implementing
// reading.CompletionClient.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  llmhttp.Logger
	retry   llmhttp.RetryConfig
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a structured logger for request/response/error events.
func WithLogger(logger llmhttp.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTimeout overrides the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.client.Timeout = timeout }
}

// WithRetryConfig overrides the retry behavior.
func WithRetryConfig(cfg llmhttp.RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// NewClient creates a Groq client. An empty model selects DefaultModel.
func NewClient(apiKey, model string, opts ...Option) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  llmhttp.NopLogger{},
		retry:   llmhttp.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBaseURL sets a custom base URL (for testing).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Model returns the configured completion model.
func (c *Client) Model() string {
	return c.model
}

// Complete issues a single chat completion request. The returned string is
// empty when the service produced no usable content; interpreting that is
// the caller's concern.
func (c *Client) Complete(ctx context.Context, req reading.CompletionRequest) (string, error) {
	messages := make([]Message, len(req.Messages))
	promptChars := 0
	for i, m := range req.Messages {
		messages[i] = Message{Role: m.Role, Content: m.Content}
		promptChars += len(m.Content)
	}

	reqBody := ChatCompletionRequest{
		Model:            c.model,
		Messages:         messages,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.LogRequest(ctx, llmhttp.RequestLog{
		Provider:    providerName,
		Model:       c.model,
		Timestamp:   time.Now(),
		PromptChars: promptChars,
		MaxTokens:   req.MaxTokens,
		APIKey:      c.apiKey,
	})

	start := time.Now()
	var content string
	var finishReason string
	var tokensIn, tokensOut int

	operation := func(ctx context.Context) error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionPath, bytes.NewReader(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.client.Do(httpReq)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return llmhttp.NewTimeoutError(providerName, "request timed out")
			}
			return llmhttp.NewTimeoutError(providerName, err.Error())
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return c.handleErrorResponse(resp.StatusCode, body)
		}

		var chatResp ChatCompletionResponse
		if err := json.Unmarshal(body, &chatResp); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		// No choices is a usable-but-empty result, not a transport error.
		if len(chatResp.Choices) > 0 {
			content = chatResp.Choices[0].Message.Content
			finishReason = chatResp.Choices[0].FinishReason
		} else {
			content = ""
			finishReason = ""
		}
		tokensIn = chatResp.Usage.PromptTokens
		tokensOut = chatResp.Usage.CompletionTokens

		return nil
	}

	if err := llmhttp.RetryWithBackoff(ctx, operation, c.retry); err != nil {
		status := 0
		retryable := false
		var httpErr *llmhttp.Error
		if errors.As(err, &httpErr) {
			status = httpErr.StatusCode
			retryable = httpErr.Retryable
		}
		c.logger.LogError(ctx, llmhttp.ErrorLog{
			Provider:   providerName,
			Model:      c.model,
			Timestamp:  time.Now(),
			Duration:   time.Since(start),
			Error:      err,
			StatusCode: status,
			Retryable:  retryable,
		})
		return "", err
	}

	c.logger.LogResponse(ctx, llmhttp.ResponseLog{
		Provider:     providerName,
		Model:        c.model,
		Timestamp:    time.Now(),
		Duration:     time.Since(start),
		TokensIn:     tokensIn,
		TokensOut:    tokensOut,
		StatusCode:   http.StatusOK,
		FinishReason: finishReason,
	})

	return content, nil
}

// handleErrorResponse converts HTTP error responses to typed errors.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	message := fmt.Sprintf("HTTP %d", statusCode)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	} else if len(body) > 0 && len(body) < 200 {
		message = string(body)
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return llmhttp.NewAuthenticationError(providerName, message)
	case http.StatusTooManyRequests:
		return llmhttp.NewRateLimitError(providerName, message)
	case http.StatusBadRequest:
		return llmhttp.NewInvalidRequestError(providerName, message)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return llmhttp.NewServiceUnavailableError(providerName, message)
	default:
		return &llmhttp.Error{
			Type:       llmhttp.ErrTypeUnknown,
			Message:    message,
			StatusCode: statusCode,
			Retryable:  false,
			Provider:   providerName,
		}
	}
}
