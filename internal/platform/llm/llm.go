// Package llm is the chat model seam used by the assist endpoints. Any OpenAI
// compatible backend works, including Gemini's OpenAI endpoint
package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"floaty/internal/platform/config"
	perr "floaty/internal/platform/errors"

	openai "github.com/sashabaranov/go-openai"
)

// GeminiBaseURL is Gemini's OpenAI compatible endpoint
const GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Client mirrors the one go-openai call the service needs, so tests and other
// providers can stand in
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds FLOATY_LLM_ settings
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float32
}

// LoadConfig reads API_KEY, BASE_URL, MODEL, TIMEOUT and TEMPERATURE
func LoadConfig(root config.Conf) Config {
	c := root.Prefix("FLOATY_LLM_")
	return Config{
		APIKey:      c.MayString("API_KEY", ""),
		BaseURL:     c.MayString("BASE_URL", GeminiBaseURL),
		Model:       c.MayString("MODEL", "gemini-1.5-flash"),
		Timeout:     c.MayDuration("TIMEOUT", 15*time.Second),
		Temperature: float32(c.MayFloat64("TEMPERATURE", 0.2)),
	}
}

// Enabled reports whether a key is configured
func (c Config) Enabled() bool { return strings.TrimSpace(c.APIKey) != "" }

// Chat sends single turn prompts
type Chat struct {
	client  Client
	model   string
	timeout time.Duration
	temp    float32
}

// New builds a Chat over go-openai. It returns nil when no key is configured,
// which callers treat as offline
func New(cfg Config) *Chat {
	if !cfg.Enabled() {
		return nil
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	return NewWithClient(openai.NewClientWithConfig(oc), cfg)
}

// NewWithClient wraps an existing Client
func NewWithClient(c Client, cfg Config) *Chat {
	return &Chat{client: c, model: cfg.Model, timeout: cfg.Timeout, temp: cfg.Temperature}
}

// Model returns the configured model name
func (c *Chat) Model() string { return c.model }

// Complete sends prompt as one user message and returns the trimmed reply
func (c *Chat) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", perr.Unavailablef("llm: not configured")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temp,
		N:           1,
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "llm: chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", perr.Upstreamf("llm: empty choices")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", perr.Upstreamf("llm: empty reply")
	}
	return out, nil
}
