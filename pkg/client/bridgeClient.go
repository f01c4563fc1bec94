package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/bridge"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"go.uber.org/zap"
)

// RetryConfig configures retry behavior for read-only requests
type RetryConfig struct {
	MaxAttempts     int
	InitialBackoff  time.Duration
	MaxBackoff      time.Duration
	BackoffMultiple float64
}

// DefaultRetryConfig provides default retry settings
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:     5,
	InitialBackoff:  100 * time.Millisecond,
	MaxBackoff:      5 * time.Second,
	BackoffMultiple: 2.0,
}

// StatusError is returned when the bridge server answers with a non-200 status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bridge server returned status %d: %s", e.StatusCode, e.Body)
}

// BridgeClient talks to a running wallet bridge server over its JSON endpoints
type BridgeClient struct {
	baseUrl     string
	httpClient  *http.Client
	retryConfig RetryConfig
	logger      *zap.Logger
}

// NewBridgeClient creates a client for the server at baseUrl
func NewBridgeClient(baseUrl string, logger *zap.Logger) *BridgeClient {
	return &BridgeClient{
		baseUrl:     strings.TrimRight(baseUrl, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Minute},
		retryConfig: DefaultRetryConfig,
		logger:      logger,
	}
}

// SetHttpClient replaces the underlying HTTP client
func (c *BridgeClient) SetHttpClient(client *http.Client) {
	c.httpClient = client
}

// SetRetryConfig replaces the retry settings used for read-only requests
func (c *BridgeClient) SetRetryConfig(cfg RetryConfig) {
	c.retryConfig = cfg
}

func (c *BridgeClient) Connect(ctx context.Context) (*bridge.Result, error) {
	var res bridge.Result
	if err := c.post(ctx, "/connect", struct{}{}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *BridgeClient) Deposit(ctx context.Context, amount string) (*bridge.Result, error) {
	var res bridge.Result
	if err := c.post(ctx, "/deposit", map[string]string{"amount": amount}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *BridgeClient) Withdraw(ctx context.Context, amount string) (*bridge.Result, error) {
	var res bridge.Result
	if err := c.post(ctx, "/withdraw", map[string]string{"amount": amount}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *BridgeClient) Transfer(ctx context.Context, to string, amount string) (*bridge.Result, error) {
	var res bridge.Result
	if err := c.post(ctx, "/transfer", map[string]string{"to": to, "amount": amount}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Balance refreshes and returns the connected account's balance
func (c *BridgeClient) Balance(ctx context.Context) (*bridge.Result, error) {
	var res bridge.Result
	if err := c.get(ctx, "/balance", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *BridgeClient) View(ctx context.Context) (*bridge.View, error) {
	var view bridge.View
	if err := c.get(ctx, "/view", &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Actions returns the server's journaled action records
func (c *BridgeClient) Actions(ctx context.Context) ([]*persistence.ActionRecord, error) {
	var records []*persistence.ActionRecord
	if err := c.get(ctx, "/actions", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// post sends one request without retrying; a lost response must not submit a transaction twice
func (c *BridgeClient) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// get retries connection failures with exponential backoff
func (c *BridgeClient) get(ctx context.Context, path string, out any) error {
	backoff := c.retryConfig.InitialBackoff
	var lastErr error

	for attempt := 0; attempt < c.retryConfig.MaxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+path, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		lastErr = c.do(req, out)
		if lastErr == nil {
			return nil
		}
		if _, ok := lastErr.(*StatusError); ok {
			return lastErr
		}

		c.logger.Sugar().Debugw("Bridge request failed, retrying",
			"path", path,
			"attempt", attempt+1,
			"error", lastErr,
		)
		if attempt < c.retryConfig.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = time.Duration(float64(backoff) * c.retryConfig.BackoffMultiple)
			if backoff > c.retryConfig.MaxBackoff {
				backoff = c.retryConfig.MaxBackoff
			}
		}
	}

	return fmt.Errorf("GET %s failed after %d attempts: %w", path, c.retryConfig.MaxAttempts, lastErr)
}

func (c *BridgeClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
