package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const proveTimeout = 5 * time.Minute

var (
	// ErrProofServer is returned when the proof server rejects or fails a request.
	ErrProofServer = errors.New("proof server error")
	// ErrProofServerUnhealthy is returned by Health when the server is not ready.
	ErrProofServerUnhealthy = errors.New("proof server unhealthy")
)

// ProverClient talks to a Midnight proof server.
type ProverClient struct {
	baseURL *url.URL
	client  *retryablehttp.Client
	logger  *zap.Logger
}

type ProverOpt func(*ProverClient)

func WithProverLogger(logger *zap.Logger) ProverOpt {
	return func(c *ProverClient) {
		c.logger = logger
		c.client.Logger = retryableHTTPLogger{inner: logger}
	}
}

// WithProverRetries sets how often a failed request is retried and the base wait.
func WithProverRetries(retryMax int, wait time.Duration) ProverOpt {
	return func(c *ProverClient) {
		c.client.RetryMax = retryMax
		c.client.RetryWaitMin = wait
		c.client.RetryWaitMax = 2 * wait
	}
}

// NewProverClient creates a client for the proof server at rawURL.
func NewProverClient(rawURL string, opts ...ProverOpt) (*ProverClient, error) {
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proof server url: %w", err)
	}
	if baseURL.Scheme == "" {
		baseURL.Scheme = "http"
	}

	c := &ProverClient{
		baseURL: baseURL,
		client:  newRetryableClient(defaultRetryMax, defaultRetryWait, zap.NewNop()),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Address returns the proof server url.
func (c *ProverClient) Address() string {
	return c.baseURL.String()
}

// Prove sends a serialized unproven transaction and returns the proven one.
func (c *ProverClient) Prove(ctx context.Context, unproven []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, proveTimeout)
	defer cancel()

	start := time.Now()
	data, err := c.req(ctx, http.MethodPost, "/prove-tx", unproven)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("transaction proven",
		zap.Int("unproven_size", len(unproven)),
		zap.Int("proven_size", len(data)),
		zap.Duration("took", time.Since(start)))
	return data, nil
}

// Health checks that the proof server is up.
func (c *ProverClient) Health(ctx context.Context) error {
	if _, err := c.req(ctx, http.MethodGet, "/health", nil); err != nil {
		return fmt.Errorf("%w: %w", ErrProofServerUnhealthy, err)
	}
	return nil
}

func (c *ProverClient) req(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reqBody any
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/octet-stream")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call proof server %s: %w", path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof server response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		c.logger.Debug("proof server request failed", zap.String("path", path), zap.String("status", res.Status))
		return nil, fmt.Errorf("%w: %s %s: %s", ErrProofServer, path, res.Status, truncateBody(data))
	}
	return data, nil
}

func truncateBody(data []byte) string {
	const max = 200
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
