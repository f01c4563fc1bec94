package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/bridge"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/client"
	ethereum "github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/contractCaller/caller"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/logger"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/server"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/wallet"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// app holds everything a command needs; close releases it.
type app struct {
	config     *config.BridgeConfig
	controller *bridge.Controller
	store      persistence.IBridgePersistence
	logger     *zap.Logger
	closers    []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.logger.Sync()
}

func newApp(c *cli.Context) (*app, error) {
	bridgeConfig := parseBridgeConfig(c)

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: bridgeConfig.Debug})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{config: bridgeConfig, logger: l}
	if err := a.init(c.Context); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) init(ctx context.Context) error {
	cfg := a.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := promptPassphrase(cfg); err != nil {
		return err
	}

	a.logger.Sugar().Infow("Using chain",
		"name", cfg.ChainName,
		"chain_id", cfg.ChainID,
		"contract", cfg.ContractAddress,
	)

	store, err := newPersistence(&cfg.Persistence, a.logger)
	if err != nil {
		return fmt.Errorf("failed to open action journal: %w", err)
	}
	a.store = store
	a.closers = append(a.closers, func() {
		if err := store.Close(); err != nil {
			a.logger.Sugar().Warnw("Failed to close action journal", "error", err)
		}
	})

	// The operator talks to its own RPC endpoint, pinned to the required network
	operatorClient, err := ethereum.Dial(ctx, cfg.OperatorRpcUrl, cfg.ChainID, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect operator RPC: %w", err)
	}
	a.closers = append(a.closers, operatorClient.Close)

	operatorSigner, err := transactionSigner.NewTransactionSigner(ctx, &cfg.OperatorSigner, operatorClient, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create operator signer: %w", err)
	}

	operator, err := caller.NewContractCaller(cfg.GetContractAddress(), operatorClient, operatorSigner, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create operator contract caller: %w", err)
	}
	a.logger.Sugar().Infow("Operator ready", "address", operatorSigner.GetFromAddress().Hex())

	userRpcUrl := cfg.UserRpcUrl
	if userRpcUrl == "" {
		userRpcUrl = cfg.OperatorRpcUrl
	}
	userClient, err := ethereum.NewClient(userRpcUrl, a.logger)
	if err != nil {
		return fmt.Errorf("failed to connect wallet RPC: %w", err)
	}
	a.closers = append(a.closers, userClient.Close)

	provider, err := wallet.NewProvider(&cfg.Wallet, userClient, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create wallet provider: %w", err)
	}

	controller, err := bridge.NewController(&bridge.Config{
		ChainId:         cfg.ChainID,
		ContractAddress: cfg.GetContractAddress(),
		TransferSource:  cfg.TransferSource,
		ActionTimeout:   cfg.ActionTimeout,
	}, provider, operator, store, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create bridge controller: %w", err)
	}
	a.controller = controller

	if last, err := controller.LastSession(); err == nil && last != nil {
		a.logger.Sugar().Infow("Previous session found",
			"account", last.Account,
			"chain_id", last.ChainId,
			"connected_at", time.Unix(last.ConnectedAt, 0).UTC(),
		)
	}
	return nil
}

func runServe(c *cli.Context) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	srv := server.NewServer(&server.Config{
		Port:      a.config.Port,
		RateLimit: a.config.RateLimit,
		RateBurst: a.config.RateBurst,
	}, a.controller, a.logger)

	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	a.logger.Sugar().Infow("Wallet bridge running", "port", a.config.Port)
	a.logger.Sugar().Infow("Available endpoints",
		"page", "GET /",
		"actions", "POST /connect /deposit /withdraw /transfer",
		"queries", "GET /balance /view /actions")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.logger.Sugar().Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

func runConnect(c *cli.Context) error {
	if isRemote(c) {
		return withRemoteSession(c, nil)
	}
	return withSession(c, nil)
}

func runBalance(c *cli.Context) error {
	if isRemote(c) {
		return withRemoteSession(c, func(bc *client.BridgeClient) (*bridge.Result, error) {
			return bc.Balance(c.Context)
		})
	}
	return withSession(c, func(a *app) *bridge.Result {
		return a.controller.RefreshBalance(c.Context)
	})
}

func runDeposit(c *cli.Context) error {
	amount := c.String("amount")
	if isRemote(c) {
		return withRemoteSession(c, func(bc *client.BridgeClient) (*bridge.Result, error) {
			return bc.Deposit(c.Context, amount)
		})
	}
	return withSession(c, func(a *app) *bridge.Result {
		return a.controller.Deposit(c.Context, amount)
	})
}

func runWithdraw(c *cli.Context) error {
	amount := c.String("amount")
	if isRemote(c) {
		return withRemoteSession(c, func(bc *client.BridgeClient) (*bridge.Result, error) {
			return bc.Withdraw(c.Context, amount)
		})
	}
	return withSession(c, func(a *app) *bridge.Result {
		return a.controller.Withdraw(c.Context, amount)
	})
}

func runTransfer(c *cli.Context) error {
	to, amount := c.String("to"), c.String("amount")
	if isRemote(c) {
		return withRemoteSession(c, func(bc *client.BridgeClient) (*bridge.Result, error) {
			return bc.Transfer(c.Context, to, amount)
		})
	}
	return withSession(c, func(a *app) *bridge.Result {
		return a.controller.Transfer(c.Context, to, amount)
	})
}

func runHistory(c *cli.Context) error {
	if isRemote(c) {
		bc, l, err := newRemoteClient(c)
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		records, err := bc.Actions(c.Context)
		if err != nil {
			return fmt.Errorf("failed to list actions: %w", err)
		}
		return printJSON(records)
	}

	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	records, err := a.controller.History(c.Context)
	if err != nil {
		return fmt.Errorf("failed to list actions: %w", err)
	}
	return printJSON(records)
}

// withSession connects the wallet, runs action and prints its result. With a
// nil action the connect result is printed.
func withSession(c *cli.Context, action func(a *app) *bridge.Result) error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.close()

	connected := a.controller.Connect(c.Context)
	if !connected.Succeeded() || action == nil {
		return report(connected)
	}
	return report(action(a))
}

// withRemoteSession is withSession against the server at --server-url.
func withRemoteSession(c *cli.Context, action func(bc *client.BridgeClient) (*bridge.Result, error)) error {
	bc, l, err := newRemoteClient(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	connected, err := bc.Connect(c.Context)
	if err != nil {
		return fmt.Errorf("connect request failed: %w", err)
	}
	if !connected.Succeeded() || action == nil {
		return report(connected)
	}

	result, err := action(bc)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return report(result)
}

func isRemote(c *cli.Context) bool {
	return c.String("server-url") != ""
}

func newRemoteClient(c *cli.Context) (*client.BridgeClient, *zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("debug")})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return client.NewBridgeClient(c.String("server-url"), l), l, nil
}

// report prints result and turns a failed action into a non-zero exit.
func report(result *bridge.Result) error {
	if err := printJSON(result); err != nil {
		return err
	}
	if !result.Succeeded() {
		return cli.Exit(fmt.Sprintf("%s failed: %s", result.Action, result.Kind), 1)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
