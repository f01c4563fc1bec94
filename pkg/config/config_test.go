package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *BridgeConfig {
	return &BridgeConfig{
		ContractAddress: DefaultContractAddress,
		ChainID:         ChainId_EthereumSepolia,
		UserRpcUrl:      "http://localhost:8545",
		OperatorRpcUrl:  "http://localhost:8545",
		Wallet: WalletConfig{
			Type:        WalletType_Keystore,
			KeystoreDir: "/tmp/keystore",
		},
		OperatorSigner: OperatorSignerConfig{
			Type:       SignerType_PrivateKey,
			PrivateKey: "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318",
		},
		Port: 8080,
		Persistence: PersistenceConfig{
			Type: PersistenceType_Memory,
		},
	}
}

func Test_BridgeConfigValidate(t *testing.T) {
	t.Run("valid config fills derived fields", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, ChainName_EthereumSepolia, cfg.ChainName)
		assert.Equal(t, TransferSource_Operator, cfg.TransferSource)
		assert.Equal(t, "0xc239e0d299420aE737A2d1C6671cEA468B2Ba325", cfg.GetContractAddress().Hex())
	})

	t.Run("unsupported chain", func(t *testing.T) {
		cfg := validConfig()
		cfg.ChainID = 5
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chainId")
	})

	t.Run("aggregates every problem", func(t *testing.T) {
		cfg := validConfig()
		cfg.ContractAddress = "not-an-address"
		cfg.OperatorRpcUrl = ""
		cfg.Port = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contractAddress")
		assert.Contains(t, err.Error(), "operatorRpcUrl")
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("private key is checked but never echoed", func(t *testing.T) {
		cfg := validConfig()
		cfg.OperatorSigner.PrivateKey = "0xdeadbeef"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "operatorSigner.privateKey")
		assert.NotContains(t, err.Error(), "deadbeef")
	})

	t.Run("remote operator signer needs from address", func(t *testing.T) {
		cfg := validConfig()
		cfg.OperatorSigner = OperatorSignerConfig{Type: SignerType_Remote, SignerUrl: "http://localhost:9000"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "operatorSigner.fromAddress")
	})

	t.Run("aws kms signer needs key id", func(t *testing.T) {
		cfg := validConfig()
		cfg.OperatorSigner = OperatorSignerConfig{Type: SignerType_AwsKms}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "operatorSigner.awsKmsKeyId")
	})

	t.Run("remote wallet needs signer url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Wallet = WalletConfig{Type: WalletType_Remote}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wallet.signerUrl")
	})

	t.Run("unknown transfer source", func(t *testing.T) {
		cfg := validConfig()
		cfg.TransferSource = "somebody"
		require.Error(t, cfg.Validate())

		cfg.TransferSource = TransferSource_Session
		require.NoError(t, cfg.Validate())
	})

	t.Run("rate limit needs burst", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimit = 5
		require.Error(t, cfg.Validate())

		cfg.RateBurst = 10
		require.NoError(t, cfg.Validate())
	})

	t.Run("negative action timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.ActionTimeout = -time.Second
		require.Error(t, cfg.Validate())
	})

	t.Run("badger needs data dir", func(t *testing.T) {
		cfg := validConfig()
		cfg.Persistence = PersistenceConfig{Type: PersistenceType_Badger}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistence.dataDir")
	})

	t.Run("redis db range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Persistence = PersistenceConfig{Type: PersistenceType_Redis, RedisAddress: "localhost:6379", RedisDB: 16}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistence.redisDb")
	})
}

func Test_ChainIdBigInt(t *testing.T) {
	assert.Equal(t, "11155111", ChainId_EthereumSepolia.BigInt().String())
	assert.True(t, IsEthereum(ChainId_EthereumAnvil))
	assert.False(t, IsEthereum(ChainId(8453)))
}
