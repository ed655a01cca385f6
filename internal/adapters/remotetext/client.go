// Package remotetext is the HTTP client for the assist endpoints. Every call
// degrades to the local heuristics, so callers never see an error
package remotetext

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"floaty/internal/core/digest"
	"floaty/internal/core/taskextract"
	"floaty/internal/platform/config"
	perr "floaty/internal/platform/errors"
	"floaty/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "floaty-api"
	defaultRetryBase = 250 * time.Millisecond
	maxReplyBytes    = 1 << 20
)

// Service is what the API modules depend on
type Service interface {
	GenerateTitle(ctx context.Context, text, pageContext string) string
	GenerateSummary(ctx context.Context, text string) string
	ExtractActionItems(ctx context.Context, text, pageContext string) []string
}

// Options configures the Client
type Options struct {
	// BaseURL is the assist API root, e.g. https://host/api/v1/assist. Empty means offline
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// MaxRetries applies to transport errors and 502 503 504 only
	MaxRetries int
	RetryBase  time.Duration
	// Extractor is the local fallback for ExtractActionItems, the popup preset when nil
	Extractor *taskextract.Extractor
}

// OptionsFromConfig reads FLOATY_REMOTE_BASE_URL, TIMEOUT and RETRIES
func OptionsFromConfig(root config.Conf) Options {
	c := root.Prefix("FLOATY_REMOTE_")
	return Options{
		BaseURL:    c.MayString("BASE_URL", ""),
		Timeout:    c.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries: c.MayInt("RETRIES", 1),
	}
}

// Client calls the remote endpoints and falls back locally
type Client struct {
	http  *http.Client
	opts  Options
	ex    *taskextract.Extractor
	log   logger.Logger
	sleep func(time.Duration)
}

var _ Service = (*Client)(nil)

// New creates a Client with defaults filled in
func New(o Options) *Client {
	o.BaseURL = strings.TrimSuffix(strings.TrimSpace(o.BaseURL), "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	ex := o.Extractor
	if ex == nil {
		ex = taskextract.New(taskextract.Popup())
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		ex:    ex,
		log:   *logger.Named("remotetext"),
		sleep: time.Sleep,
	}
}

// Offline reports whether every call takes the local path
func (c *Client) Offline() bool { return c.opts.BaseURL == "" }

type request struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

type reply struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tasks   []string `json:"tasks"`
}

// GenerateTitle returns the remote title clamped for display, or the local title
func (c *Client) GenerateTitle(ctx context.Context, text, pageContext string) string {
	var out reply
	if err := c.post(ctx, "/generate-title", request{Text: text, Context: pageContext}, &out); err != nil {
		c.fallback("generate-title", err)
		return digest.Title(text, pageContext)
	}
	return digest.ClampTitle(out.Title)
}

// GenerateSummary returns the remote summary, or the local one
func (c *Client) GenerateSummary(ctx context.Context, text string) string {
	var out reply
	if err := c.post(ctx, "/generate-summary", request{Text: text}, &out); err != nil {
		c.fallback("generate-summary", err)
		return digest.Summary(text)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return digest.NoSummary
	}
	return out.Summary
}

// ExtractActionItems returns the remote tasks, or the popup preset result
func (c *Client) ExtractActionItems(ctx context.Context, text, pageContext string) []string {
	var out reply
	if err := c.post(ctx, "/extract-tasks", request{Text: text, Context: pageContext}, &out); err != nil {
		c.fallback("extract-tasks", err)
		return c.ex.Extract(text)
	}
	if out.Tasks == nil {
		return []string{}
	}
	return out.Tasks
}

func (c *Client) fallback(op string, err error) {
	if c.Offline() {
		c.log.Debug().Str("op", op).Msg("remote text offline using local heuristics")
		return
	}
	c.log.Warn().Err(err).Str("op", op).Msg("remote text unavailable using local heuristics")
}

// post sends in as JSON and decodes either an enveloped {data:{...}} reply or a bare one into out
func (c *Client) post(ctx context.Context, path string, in any, out *reply) error {
	if c.Offline() {
		return perr.Unavailablef("remotetext: offline")
	}
	body, err := json.Marshal(in)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "remotetext: encode request")
	}

	attempts := 0
	for {
		raw, status, err := c.do(ctx, path, body)
		switch {
		case err != nil:
			if ctx.Err() != nil || attempts >= c.opts.MaxRetries {
				return perr.Wrap(err, perr.ErrorCodeUnavailable, "remotetext: request failed")
			}
		case status >= 200 && status < 300:
			return decode(raw, out)
		case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
			if attempts >= c.opts.MaxRetries {
				return perr.Upstreamf("remotetext: %s answered %d", path, status)
			}
		default:
			return perr.Upstreamf("remotetext: %s answered %d", path, status)
		}
		back := c.opts.RetryBase << uint(attempts)
		c.log.Debug().Str("path", path).Int("attempt", attempts).Dur("retry_in", back).Msg("remote text retrying")
		c.sleep(back)
		attempts++
	}
}

func (c *Client) do(ctx context.Context, path string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}

func decode(raw []byte, out *reply) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "remotetext: decode reply")
	}
	src := raw
	if data, ok := top["data"]; ok && len(bytes.TrimSpace(data)) > 0 && bytes.TrimSpace(data)[0] == '{' {
		src = data
	}
	if err := json.Unmarshal(src, out); err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "remotetext: decode reply")
	}
	return nil
}
