package main

import (
	"fmt"
	"os"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func parseBridgeConfig(c *cli.Context) *config.BridgeConfig {
	return &config.BridgeConfig{
		ContractAddress: c.String("contract-address"),
		ChainID:         config.ChainId(c.Uint64("chain-id")),
		UserRpcUrl:      c.String("user-rpc-url"),
		OperatorRpcUrl:  c.String("operator-rpc-url"),
		Wallet: config.WalletConfig{
			Type:           config.WalletType(c.String("wallet-type")),
			KeystoreDir:    c.String("keystore-dir"),
			AccountAddress: c.String("account"),
			Passphrase:     c.String("wallet-passphrase"),
			SignerUrl:      c.String("wallet-signer-url"),
		},
		OperatorSigner: config.OperatorSignerConfig{
			Type:        config.SignerType(c.String("operator-signer")),
			PrivateKey:  c.String("operator-private-key"),
			SignerUrl:   c.String("operator-signer-url"),
			FromAddress: c.String("operator-address"),
			AwsKmsKeyId: c.String("aws-kms-key-id"),
			AwsRegion:   c.String("aws-region"),
		},
		TransferSource: config.TransferSource(c.String("transfer-source")),
		Port:           c.Int("port"),
		RateLimit:      c.Float64("rate-limit"),
		RateBurst:      c.Int("rate-burst"),
		ActionTimeout:  c.Duration("action-timeout"),
		Persistence: config.PersistenceConfig{
			Type:           config.PersistenceType(c.String("persistence")),
			DataDir:        c.String("data-dir"),
			RedisAddress:   c.String("redis-address"),
			RedisPassword:  c.String("redis-password"),
			RedisDB:        c.Int("redis-db"),
			RedisKeyPrefix: c.String("redis-key-prefix"),
		},
		Debug: c.Bool("debug"),
	}
}

// promptPassphrase reads the keystore passphrase from the terminal when none was configured.
func promptPassphrase(cfg *config.BridgeConfig) error {
	if cfg.Wallet.Type != config.WalletType_Keystore || cfg.Wallet.Passphrase != "" {
		return nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	fmt.Fprint(os.Stderr, "Keystore passphrase: ")
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	cfg.Wallet.Passphrase = string(passphrase)
	return nil
}
