package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/brandresponse/brandintel/internal/common"
)

const anthropicMessagesURL = "https://api.anthropic.com/v1/messages"

// anthropicClient implements the Client interface against the Anthropic
// messages API.
type anthropicClient struct {
	httpClient  *http.Client
	limiter     *rateLimiter
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	retryOpts   common.RetryOptions
}

// newAnthropicClient creates a new Anthropic API client.
func newAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	return &anthropicClient{
		apiKey:      cfg.APIKey,
		baseURL:     anthropicMessagesURL,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		limiter:     newRateLimiter(cfg.RateLimit),
		retryOpts:   common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second},
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Complete sends a single-prompt request to Anthropic and returns the
// completion text.
func (c *anthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return "", err
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = c.temperature
	}

	requestBody := map[string]any{
		"model":       c.model,
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": req.Prompt,
			},
		},
	}
	if req.System != "" {
		requestBody["system"] = req.System
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var text string
	err = common.WithRetry(ctx, func() error {
		var reqErr error
		text, reqErr = c.doRequest(ctx, jsonBody)
		return reqErr
	}, c.retryOpts)
	if err != nil {
		return "", err
	}
	return text, nil
}

// doRequest performs one API round trip. Rate limits and server errors
// come back retryable; everything else fails permanently.
func (c *anthropicClient) doRequest(ctx context.Context, jsonBody []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &common.RetryableError{Err: fmt.Errorf("request failed: %w", err), Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: anthropic API error (status %d): %s", common.ErrRateLimit, resp.StatusCode, string(body))
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", &common.RetryableError{
			Err:       fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body)),
			Retryable: true,
		}
	case resp.StatusCode != http.StatusOK:
		return "", &common.RetryableError{
			Err:       fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body)),
			Retryable: false,
		}
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &common.RetryableError{Err: fmt.Errorf("failed to parse response: %w", err), Retryable: false}
	}

	if len(response.Content) == 0 {
		return "", &common.RetryableError{Err: fmt.Errorf("no content in response"), Retryable: false}
	}

	return strings.TrimSpace(response.Content[0].Text), nil
}

// anthropicResponse represents the Anthropic API response structure.
type anthropicResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Role         string `json:"role"`
	Model        string `json:"model"`
	StopReason   string `json:"stop_reason"`
	StopSequence string `json:"stop_sequence"`
	Content      []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}
