package web3signer

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Config holds the connection settings for a Web3Signer endpoint
type Config struct {
	BaseUrl string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultConfig returns a config pointing at a local Web3Signer
func DefaultConfig() *Config {
	return &Config{
		BaseUrl: "http://localhost:9000",
		Timeout: defaultTimeout,
	}
}

// Client talks to Web3Signer's eth1 JSON-RPC interface
type Client struct {
	config *Config
	logger *zap.Logger

	mu        sync.RWMutex
	rpcClient *rpc.Client
}

// NewClient creates a client for cfg. A nil cfg uses DefaultConfig.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseUrl == "" {
		return nil, fmt.Errorf("web3signer base url cannot be empty")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	c := &Client{
		config: cfg,
		logger: logger,
	}
	if err := c.dial(&http.Client{Timeout: cfg.Timeout}); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) dial(httpClient *http.Client) error {
	rpcClient, err := rpc.DialHTTPWithClient(c.config.BaseUrl, httpClient)
	if err != nil {
		return fmt.Errorf("failed to create web3signer rpc client for %s: %w", c.config.BaseUrl, err)
	}

	c.mu.Lock()
	old := c.rpcClient
	c.rpcClient = rpcClient
	c.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	c.mu.RLock()
	rpcClient := c.rpcClient
	c.mu.RUnlock()

	c.logger.Sugar().Debugw("Calling web3signer",
		"method", method,
		"url", c.config.BaseUrl,
	)
	if err := rpcClient.CallContext(ctx, result, method, args...); err != nil {
		return fmt.Errorf("web3signer %s failed: %w", method, err)
	}
	return nil
}

// SetHttpClient replaces the underlying HTTP client
func (c *Client) SetHttpClient(client *http.Client) {
	if err := c.dial(client); err != nil {
		c.logger.Sugar().Errorw("Failed to swap web3signer http client", "error", err)
	}
}

// EthAccounts returns the accounts the signer holds keys for
func (c *Client) EthAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := c.call(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// EthSignTransaction asks the signer to sign transaction as from
func (c *Client) EthSignTransaction(ctx context.Context, from string, transaction map[string]interface{}) (string, error) {
	txArgs := make(map[string]interface{}, len(transaction)+1)
	for k, v := range transaction {
		txArgs[k] = v
	}
	txArgs["from"] = from

	var signed string
	if err := c.call(ctx, &signed, "eth_signTransaction", txArgs); err != nil {
		return "", err
	}
	return signed, nil
}

// EthSign signs hex encoded data with the EIP-191 personal message prefix
func (c *Client) EthSign(ctx context.Context, account string, data string) (string, error) {
	var sig string
	if err := c.call(ctx, &sig, "eth_sign", account, data); err != nil {
		return "", err
	}
	return sig, nil
}
