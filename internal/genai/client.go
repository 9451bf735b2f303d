package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	gemini "google.golang.org/genai"

	"rural-health-assistant/internal/config"
)

var (
	// ErrUpstreamUnavailable wraps transport failures, API errors and blocked prompts.
	ErrUpstreamUnavailable = errors.New("generation model unavailable")
	// ErrEmptyResponse means the call succeeded but produced no text.
	ErrEmptyResponse = errors.New("generation model returned no text")
)

// Client generates text with a Gemini model.
type Client struct {
	models *gemini.Models // nil when no API key is configured
	model  string
	log    logrus.FieldLogger
}

// NewClient builds the Gemini client. Without an API key it still returns a
// usable Client whose calls fail with ErrUpstreamUnavailable, so the
// diagnosis endpoints keep answering with fallback advice.
func NewClient(ctx context.Context, cfg config.GenAIConfig, log logrus.FieldLogger) (*Client, error) {
	c := &Client{model: cfg.Model, log: log}
	if cfg.APIKey == "" {
		return c, nil
	}

	sdk, err := gemini.NewClient(ctx, &gemini.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    gemini.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		HTTPOptions: gemini.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.models = sdk.Models
	return c, nil
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.models == nil {
		return "", fmt.Errorf("%w: genai.api_key is not configured", ErrUpstreamUnavailable)
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, c.model, gemini.Text(prompt), nil)
	c.log.WithFields(logrus.Fields{
		"model":   c.model,
		"latency": time.Since(start).String(),
	}).Debug("generation model responded")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s", ErrUpstreamUnavailable, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
