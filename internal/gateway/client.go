package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/pkg/circuitbreaker"
)

const maxResponseBytes = 1 << 20

// Client is the JSON-over-HTTP transport shared by provider adapters. It maps
// transport outcomes onto ErrConfig, ErrTransient and ErrRejected.
type Client struct {
	provider string
	baseURL  string
	http     *http.Client
	breaker  *circuitbreaker.CircuitBreaker
}

type ClientConfig struct {
	Provider         string
	BaseURL          string
	Timeout          time.Duration
	BreakerFailures  int
	BreakerResetTime time.Duration
	HTTPClient       *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	failures := cfg.BreakerFailures
	if failures <= 0 {
		failures = 5
	}
	return &Client{
		provider: cfg.Provider,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     httpClient,
		breaker: circuitbreaker.New(failures, cfg.BreakerResetTime, func(err error) bool {
			return errors.Is(err, ErrTransient)
		}),
	}
}

// Do sends in as JSON (when non-nil) and decodes the response into out. The raw
// response body is returned for audit.
func (c *Client) Do(ctx context.Context, op, method, path string, header http.Header, in, out any) (json.RawMessage, error) {
	start := time.Now()
	var raw []byte

	err := c.breaker.Execute(func() error {
		var err error
		raw, err = c.do(ctx, method, path, header, in, out)
		return err
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		err = fmt.Errorf("%w: %s: %w", ErrTransient, c.provider, err)
	}

	observeRequest(c.provider, op, err, time.Since(start))
	return raw, err
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, in, out any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrConfig, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransient, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrTransient, err)
	}

	if err := statusError(resp.StatusCode); err != nil {
		return raw, fmt.Errorf("%w: %s %s returned %d", err, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return raw, fmt.Errorf("%w: decode response: %w", ErrTransient, err)
		}
	}
	return raw, nil
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrConfig
	case code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= 500:
		return ErrTransient
	default:
		return ErrRejected
	}
}
