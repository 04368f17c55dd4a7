package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/FrenchMajesty/polyglot-support/internal/retry"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// listModelsTimeout bounds the one-shot startup probe so a slow listing
// endpoint cannot hold up the interactive loop.
const listModelsTimeout = 10 * time.Second

type ModelName string

const (
	ModelLlama3370BVersatile ModelName = "llama-3.3-70b-versatile"
	ModelLlama370B8192       ModelName = "llama3-70b-8192"
	ModelGemma29BIt          ModelName = "gemma2-9b-it"
	ModelMixtral8x7B32768    ModelName = "mixtral-8x7b-32768"
)

// DefaultFallbackModels returns the ordered substitutes used when the
// preferred model is unavailable or decommissioned.
func DefaultFallbackModels() []ModelName {
	return []ModelName{
		ModelLlama370B8192,
		ModelGemma29BIt,
		ModelMixtral8x7B32768,
	}
}

// Client is a minimal client for the Groq chat and model-listing APIs.
// It owns the active-model selection: the model used for completions starts
// as PreferredModel and may be swapped for the first fallback if the service
// rejects it as decommissioned.
type Client struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	RetryConfig    retry.Config
	PreferredModel ModelName
	FallbackModels []ModelName

	mu          sync.Mutex
	activeModel ModelName
	verboseLog  bool
}

type ClientInterface interface {
	Complete(ctx context.Context, messages []ChatMessage, maxTokens int) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// NewClient creates a new Client with the default model set
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:         apiKey,
		BaseURL:        defaultBaseURL,
		HTTPClient:     &http.Client{Timeout: 30 * time.Second},
		RetryConfig:    retry.DefaultConfig(),
		PreferredModel: ModelLlama3370BVersatile,
		FallbackModels: DefaultFallbackModels(),
		activeModel:    ModelLlama3370BVersatile,
		verboseLog:     true,
	}
}

// SetVerboseLog sets the verbose log flag
func (c *Client) SetVerboseLog(verboseLog bool) *Client {
	c.verboseLog = verboseLog
	return c
}

// ActiveModel returns the model identifier currently used for completions
func (c *Client) ActiveModel() ModelName {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeModel
}

func (c *Client) setActiveModel(model ModelName) {
	c.mu.Lock()
	c.activeModel = model
	c.mu.Unlock()
}

// useFallback swaps the active model for the first fallback. This is the only
// mutation path besides the startup probe; it fires when the service rejects
// the active model as decommissioned.
func (c *Client) useFallback() {
	fallback := c.FallbackModels[0]
	c.mu.Lock()
	changed := c.activeModel != fallback
	c.activeModel = fallback
	c.mu.Unlock()
	if changed {
		c.logf("model decommissioned, switching to fallback model %s", fallback)
	}
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.verboseLog {
		log.Printf(format, args...)
	}
}

// ListModels fetches the identifiers of the models the service currently offers
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    parseErrorMessage(bodyBytes),
			RawBody:    json.RawMessage(bodyBytes),
		}
	}

	var listResp ModelListResponse
	if err := json.Unmarshal(bodyBytes, &listResp); err != nil {
		return nil, fmt.Errorf("failed to parse model listing: %w", err)
	}

	ids := make([]string, 0, len(listResp.Data))
	for _, m := range listResp.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// SelectActiveModel probes the model listing once at startup and picks the
// model to use for the session: the preferred model if the listing carries
// it, otherwise the first fallback present in the listing, otherwise the
// first fallback unconditionally.
func (c *Client) SelectActiveModel(ctx context.Context) ModelName {
	ctx, cancel := context.WithTimeout(ctx, listModelsTimeout)
	defer cancel()

	available, err := c.ListModels(ctx)
	if err == nil {
		offered := make(map[ModelName]struct{}, len(available))
		for _, id := range available {
			offered[ModelName(id)] = struct{}{}
		}

		if _, ok := offered[c.PreferredModel]; ok {
			c.setActiveModel(c.PreferredModel)
			return c.PreferredModel
		}

		c.logf("model %s not found in listing, trying fallbacks", c.PreferredModel)
		for _, fb := range c.FallbackModels {
			if _, ok := offered[fb]; ok {
				c.setActiveModel(fb)
				c.logf("using fallback model %s", fb)
				return fb
			}
		}
	} else {
		c.logf("model listing probe failed: %v", err)
	}

	fallback := c.FallbackModels[0]
	c.setActiveModel(fallback)
	c.logf("using default fallback model %s", fallback)
	return fallback
}

// shouldRetry determines if a failed completion attempt should be retried:
// transport failures are, and so is a 400 rejecting the model as
// decommissioned (the fallback substitution has already happened by then).
// Every other API error is terminal.
func (c *Client) shouldRetry(err error, statusCode int, responseBody []byte) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusBadRequest && isModelInvalid(responseBody)
	}
	return err != nil
}

// isModelInvalid reports whether an error body signals that the requested
// model no longer exists on the service
func isModelInvalid(responseBody []byte) bool {
	msg := parseErrorMessage(responseBody)
	return strings.Contains(msg, "decommissioned") || strings.Contains(msg, "not found")
}

func parseErrorMessage(responseBody []byte) string {
	var errResp ChatCompletionResponseError
	if json.Unmarshal(responseBody, &errResp) != nil {
		return ""
	}
	return errResp.Error.Message
}

// Complete sends a chat completion request using the active model and returns
// the trimmed response text. The active model is re-read on every attempt so
// a decommission substitution takes effect on the immediate retry.
func (c *Client) Complete(ctx context.Context, messages []ChatMessage, maxTokens int) (string, error) {
	url := c.BaseURL + "/chat/completions"

	opts := retry.Options{
		Config:  c.RetryConfig,
		Checker: c.shouldRetry,
		APIName: "Groq",
	}
	if c.verboseLog {
		opts.Logger = log.Printf
	}

	retryableFn := func(attempt int) (interface{}, int, []byte, error) {
		req := ChatCompletionRequest{
			Model:       string(c.ActiveModel()),
			Messages:    messages,
			MaxTokens:   maxTokens,
			Temperature: 0.3,
			TopP:        0.9,
		}

		body, err := json.Marshal(req)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
		if err != nil {
			return nil, 0, nil, fmt.Errorf("failed to create HTTP request: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTPClient.Do(httpReq)
		if err != nil {
			return nil, 0, nil, err
		}
		defer resp.Body.Close()

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode == http.StatusBadRequest && isModelInvalid(bodyBytes) {
				c.useFallback()
			}
			return nil, resp.StatusCode, bodyBytes, &APIError{
				StatusCode: resp.StatusCode,
				Message:    parseErrorMessage(bodyBytes),
				RawBody:    json.RawMessage(bodyBytes),
			}
		}

		var chatResp ChatCompletionResponse
		if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
			return nil, resp.StatusCode, bodyBytes, &APIError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("failed to parse response: %v", err),
				RawBody:    json.RawMessage(bodyBytes),
			}
		}
		if len(chatResp.Choices) == 0 {
			return nil, resp.StatusCode, bodyBytes, &APIError{
				StatusCode: resp.StatusCode,
				Message:    "response carried no choices",
				RawBody:    json.RawMessage(bodyBytes),
			}
		}

		return strings.TrimSpace(chatResp.Choices[0].Message.Content), resp.StatusCode, bodyBytes, nil
	}

	result, err := retry.Execute(ctx, opts, retryableFn)
	if err != nil {
		var exhausted *retry.ExhaustedError
		if errors.As(err, &exhausted) {
			var apiErr *APIError
			if exhausted.LastErr != nil && !errors.As(exhausted.LastErr, &apiErr) {
				// The budget was spent on transport failures
				return "", &NetworkError{Cause: exhausted.LastErr}
			}
			return "", err
		}
		return "", err
	}

	return result.(string), nil
}
