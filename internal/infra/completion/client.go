// Package completion implements the text completion service used by the club
// recommendation quiz against an OpenAI-compatible chat completions endpoint.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"clubhub/config"
	domainerrors "clubhub/internal/domain/errors"
	"clubhub/internal/domain/service"
)

const defaultTimeout = 30 * time.Second

// chatMessage is a single message in a chat completion request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions endpoint.
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the response body we consume.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// httpClient implements service.CompletionService over HTTP.
type httpClient struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	logger   *slog.Logger
}

// disabledClient is returned when the recommendation feature is switched off.
type disabledClient struct{}

func (disabledClient) Complete(context.Context, string, int) (string, error) {
	return "", domainerrors.ErrExternalService.WrapMessage("completion service is disabled")
}

// NewCompletionService creates the configured completion client. When the
// recommendation section is absent or disabled, a stub returning an external
// service error is used so callers can degrade gracefully.
func NewCompletionService(cfg *config.Config, logger *slog.Logger) (service.CompletionService, error) {
	rc := cfg.Recommendation
	if rc == nil || !rc.Enabled {
		logger.Info("Recommendation completion disabled, using stub client")

		return disabledClient{}, nil
	}

	if rc.Endpoint == "" {
		return nil, errors.New("completion endpoint is required when recommendation is enabled")
	}

	timeout := rc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger.Info("Using HTTP completion client",
		slog.String("endpoint", rc.Endpoint),
		slog.String("model", rc.Model),
	)

	return &httpClient{
		endpoint: rc.Endpoint,
		apiKey:   rc.APIKey,
		model:    rc.Model,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Complete sends the prompt and returns the first choice's text.
func (c *httpClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error("completion endpoint returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)),
		)

		return "", errors.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode completion response")
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
