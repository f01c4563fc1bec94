package main

import (
	"testing"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zaptest"
)

func parseArgs(t *testing.T, args ...string) *config.BridgeConfig {
	t.Helper()
	var parsed *config.BridgeConfig
	app := &cli.App{
		Name:  "wallet-bridge",
		Flags: bridgeFlags(),
		Action: func(c *cli.Context) error {
			parsed = parseBridgeConfig(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"wallet-bridge"}, args...)))
	require.NotNil(t, parsed)
	return parsed
}

func Test_parseBridgeConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := parseArgs(t, "--operator-rpc-url", "http://localhost:8545")

		assert.Equal(t, config.DefaultContractAddress, cfg.ContractAddress)
		assert.Equal(t, config.ChainId_EthereumSepolia, cfg.ChainID)
		assert.Equal(t, config.WalletType_Keystore, cfg.Wallet.Type)
		assert.Equal(t, config.SignerType_PrivateKey, cfg.OperatorSigner.Type)
		assert.Equal(t, config.TransferSource_Operator, cfg.TransferSource)
		assert.Equal(t, config.PersistenceType_Memory, cfg.Persistence.Type)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 5*time.Minute, cfg.ActionTimeout)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(config.EnvBridgeOperatorRPCURL, "http://operator:8545")
		t.Setenv(config.EnvBridgeChainID, "31337")
		t.Setenv(config.EnvBridgeWalletType, "remote")
		t.Setenv(config.EnvBridgeWalletSignerURL, "http://signer:9000")
		t.Setenv(config.EnvBridgeTransferSource, "session")
		t.Setenv(config.EnvBridgePersistenceType, "redis")
		t.Setenv(config.EnvBridgeRedisAddress, "localhost:6379")
		t.Setenv(config.EnvBridgeRedisDB, "3")

		cfg := parseArgs(t)
		assert.Equal(t, "http://operator:8545", cfg.OperatorRpcUrl)
		assert.Equal(t, config.ChainId_EthereumAnvil, cfg.ChainID)
		assert.Equal(t, config.WalletType_Remote, cfg.Wallet.Type)
		assert.Equal(t, "http://signer:9000", cfg.Wallet.SignerUrl)
		assert.Equal(t, config.TransferSource_Session, cfg.TransferSource)
		assert.Equal(t, config.PersistenceType_Redis, cfg.Persistence.Type)
		assert.Equal(t, "localhost:6379", cfg.Persistence.RedisAddress)
		assert.Equal(t, 3, cfg.Persistence.RedisDB)
	})
}

func Test_newPersistence(t *testing.T) {
	l := zaptest.NewLogger(t)

	t.Run("memory", func(t *testing.T) {
		store, err := newPersistence(&config.PersistenceConfig{Type: config.PersistenceType_Memory}, l)
		require.NoError(t, err)
		require.NoError(t, store.HealthCheck())
		require.NoError(t, store.Close())
	})

	t.Run("badger", func(t *testing.T) {
		store, err := newPersistence(&config.PersistenceConfig{
			Type:    config.PersistenceType_Badger,
			DataDir: t.TempDir(),
		}, l)
		require.NoError(t, err)
		require.NoError(t, store.HealthCheck())
		require.NoError(t, store.Close())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := newPersistence(&config.PersistenceConfig{Type: "sqlite"}, l)
		require.Error(t, err)
	})
}
