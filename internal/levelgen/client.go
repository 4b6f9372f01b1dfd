// Package levelgen talks to the remote service that designs the next flight
// level from a player's answer.
package levelgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chaos-architect/astral_engine/internal/flight"
	"github.com/chaos-architect/astral_engine/internal/logging"
)

// DefaultTimeout for generator requests.
const DefaultTimeout = 30 * time.Second

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

var (
	// ErrNotConfigured is returned when no endpoint is set.
	ErrNotConfigured = errors.New("levelgen: no endpoint configured")

	// ErrStatus wraps non-200 responses.
	ErrStatus = errors.New("levelgen: unexpected status")
)

// Request is the body posted to the generator.
type Request struct {
	Philosophy string `json:"philosophy"`
	Symbol     string `json:"symbol"`
}

// Client posts requests to a generator endpoint.
type Client struct {
	client  *http.Client
	url     string
	apiKey  string
	timeout time.Duration
	log     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL sets the generator endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithAPIKey sets the bearer token sent with each request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithLogger sets where request failures are reported.
func WithLogger(log *logging.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a generator client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		timeout: DefaultTimeout,
		log:     logging.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool { return c.url != "" }

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

// Generate designs the next level. Transport and decoding failures degrade
// to flight.Fallback with a nil error. Only a missing endpoint or a
// cancelled context is reported as an error.
func (c *Client) Generate(ctx context.Context, philosophy, symbol string) (flight.LevelParams, error) {
	if !c.Configured() {
		return flight.LevelParams{}, ErrNotConfigured
	}
	p, err := c.Fetch(ctx, philosophy, symbol)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return flight.LevelParams{}, ctxErr
		}
		c.log.Warn("level generation failed, using fallback: %v", err)
		return flight.Fallback(), nil
	}
	c.log.Info("generated level %q (%s, %d islands)", p.ThemeName, p.GeometryStyle, p.IslandCount)
	return p, nil
}

// Fetch posts one request and parses the reply without any fallback.
func (c *Client) Fetch(ctx context.Context, philosophy, symbol string) (flight.LevelParams, error) {
	if !c.Configured() {
		return flight.LevelParams{}, ErrNotConfigured
	}
	raw, err := c.post(ctx, Request{Philosophy: philosophy, Symbol: symbol})
	if err != nil {
		return flight.LevelParams{}, err
	}
	p, err := Parse(raw)
	if err != nil {
		return flight.LevelParams{}, fmt.Errorf("parse level: %w", err)
	}
	return p, nil
}

func (c *Client) post(ctx context.Context, body Request) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.log.Debug("POST %s symbol=%q", c.url, body.Symbol)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post level request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return data, nil
}
