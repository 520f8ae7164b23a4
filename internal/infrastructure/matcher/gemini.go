package matcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/presupuestador/backend/internal/domain"
)

// Client talks to the Gemini API, which plays the external matcher role:
// text (or image) in, structured JSON out, fallible and retryable. Everything
// it returns is treated as untrusted text and parsed defensively.
type Client struct {
	client      *genai.Client
	model       *genai.GenerativeModel
	rateLimiter *rate.Limiter
	retry       RetryConfig
	debug       bool
}

// Config holds Gemini client configuration.
type Config struct {
	APIKey      string
	Model       string
	MaxAttempts int
	// RequestsPerSecond caps outgoing calls; free-tier quotas are tight.
	RequestsPerSecond float64
	Burst             int
}

// NewClient creates a matcher client. Model parameters are tuned low for
// deterministic, format-following answers.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("matcher API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(4096)

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 3
	}

	retry := DefaultRetryConfig
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}

	return &Client{
		client:      client,
		model:       model,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
		retry:       retry,
	}, nil
}

// SetDebug enables request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// MatchCatalog sends the prepared shortlist+items prompt and parses the match
// list out of the response.
func (c *Client) MatchCatalog(ctx context.Context, prompt string) ([]domain.MatchedItem, error) {
	text, err := c.generate(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	return ParseMatchedItems(text)
}

// ExtractItems pulls requested items out of raw list text.
func (c *Client) ExtractItems(ctx context.Context, rawText string) ([]domain.RequestedItem, error) {
	text, err := c.generate(ctx, genai.Text(extractFromTextPrompt(rawText)))
	if err != nil {
		return nil, err
	}
	return ParseRequestedItems(text)
}

// ExtractItemsFromImage pulls requested items out of a photographed list,
// handwriting included.
func (c *Client) ExtractItemsFromImage(ctx context.Context, mimeType string, data []byte) ([]domain.RequestedItem, error) {
	subtype := strings.TrimPrefix(mimeType, "image/")
	text, err := c.generate(ctx, genai.ImageData(subtype, data), genai.Text(extractFromImagePrompt))
	if err != nil {
		return nil, err
	}
	return ParseRequestedItems(text)
}

// generate runs one rate-limited, retried GenerateContent call and flattens
// the candidates into plain text.
func (c *Client) generate(ctx context.Context, parts ...genai.Part) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := generateWithRetry(ctx, c.model, parts, c.retry, c.debug)
	if err != nil {
		return "", err
	}

	text := flattenResponse(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrMatcherParse)
	}
	if c.debug {
		log.Printf("[MATCHER] response: %d bytes", len(text))
	}
	return text, nil
}

// flattenResponse concatenates the text parts of every candidate.
func flattenResponse(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
