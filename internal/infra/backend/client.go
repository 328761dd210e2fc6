package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ticket-monarch/internal/pkg/config"
	"ticket-monarch/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const maxResponseBytes = 1 << 20

// Client talks to the external order backend. Every call makes exactly one
// request; transport and decode failures are folded into the returned result.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return response{}, errs.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, errs.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, errs.Wrapf(err, "read %s %s", method, path)
	}

	c.logger.Debug("backend call completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status_code", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return response{status: resp.StatusCode, body: raw}, nil
}

func (c *Client) decode(r response, dst any) error {
	if err := json.Unmarshal(r.body, dst); err != nil {
		return errs.Wrapf(err, "decode response (status %d)", r.status)
	}
	return nil
}

func (c *Client) logFailure(op string, err error) {
	c.logger.Error("backend API error", slog.String("operation", op), slog.String("error", err.Error()))
}

// WaitUntilHealthy polls the health endpoint with exponential backoff until it answers 2xx or maxWait elapses.
func (c *Client) WaitUntilHealthy(ctx context.Context, maxWait time.Duration) error {
	if maxWait <= 0 {
		return nil
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 250 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = maxWait

	attempt := 0
	operation := func() error {
		attempt++
		res := c.HealthCheck(ctx)
		if res.Success {
			return nil
		}
		c.logger.Warn("backend not healthy yet", slog.Int("attempt", attempt), slog.String("error", res.Error))
		return fmt.Errorf("%w: %s", errs.ErrBackendUnavailable, res.Error)
	}
	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}
