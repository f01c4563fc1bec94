package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "wallet-bridge",
		Usage: "Deposit, withdraw and transfer against the DummyDepositWithdraw contract",
		Description: `Connects a user wallet to the DummyDepositWithdraw contract.

The user's wallet signs deposits and withdrawals. Transfers are submitted by a
separate operator identity with transferFrom. Run "serve" for the web page or
use the one-shot commands from a terminal.`,
		Version: "1.0.0",
		Flags:   bridgeFlags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the wallet bridge page and JSON endpoints",
				Action: runServe,
			},
			{
				Name:   "connect",
				Usage:  "Connect the wallet and print its balance",
				Action: runConnect,
			},
			{
				Name:   "balance",
				Usage:  "Print the connected account's contract balance",
				Action: runBalance,
			},
			{
				Name:   "deposit",
				Usage:  "Deposit an amount of ether into the contract",
				Flags:  []cli.Flag{amountFlag()},
				Action: runDeposit,
			},
			{
				Name:   "withdraw",
				Usage:  "Withdraw an amount of ether from the contract",
				Flags:  []cli.Flag{amountFlag()},
				Action: runWithdraw,
			},
			{
				Name:  "transfer",
				Usage: "Transfer an amount to a recipient through the operator",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "to",
						Usage:    "Recipient address",
						Required: true,
					},
					amountFlag(),
				},
				Action: runTransfer,
			},
			{
				Name:   "history",
				Usage:  "Print the journaled actions",
				Action: runHistory,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func amountFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "amount",
		Aliases:  []string{"a"},
		Usage:    "Amount in whole tokens, e.g. 1.5",
		Required: true,
	}
}

func bridgeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "contract-address",
			Usage:   "DummyDepositWithdraw contract address",
			Value:   config.DefaultContractAddress,
			EnvVars: []string{config.EnvBridgeContractAddress},
		},
		&cli.Uint64Flag{
			Name:    "chain-id",
			Aliases: []string{"chain"},
			Usage:   fmt.Sprintf("Required network chain ID: %s", config.GetSupportedChainIDsString()),
			Value:   uint64(config.ChainId_EthereumSepolia),
			EnvVars: []string{config.EnvBridgeChainID},
		},
		&cli.StringFlag{
			Name:    "user-rpc-url",
			Usage:   "RPC endpoint the user's wallet is connected to",
			EnvVars: []string{config.EnvBridgeUserRPCURL},
		},
		&cli.StringFlag{
			Name:    "operator-rpc-url",
			Usage:   "RPC endpoint used by the operator",
			EnvVars: []string{config.EnvBridgeOperatorRPCURL},
		},
		&cli.StringFlag{
			Name:    "wallet-type",
			Usage:   "Wallet provider: keystore or remote",
			Value:   string(config.WalletType_Keystore),
			EnvVars: []string{config.EnvBridgeWalletType},
		},
		&cli.StringFlag{
			Name:    "keystore-dir",
			Usage:   "Encrypted keystore directory for the keystore wallet",
			EnvVars: []string{config.EnvBridgeKeystoreDir},
		},
		&cli.StringFlag{
			Name:    "account",
			Usage:   "Wallet account address; defaults to the first account",
			EnvVars: []string{config.EnvBridgeAccountAddress},
		},
		&cli.StringFlag{
			Name:    "wallet-passphrase",
			Usage:   "Keystore passphrase; prompted for when empty",
			EnvVars: []string{config.EnvBridgeWalletPassphrase},
		},
		&cli.StringFlag{
			Name:    "wallet-signer-url",
			Usage:   "Remote signer URL for the remote wallet",
			EnvVars: []string{config.EnvBridgeWalletSignerURL},
		},
		&cli.StringFlag{
			Name:    "operator-signer",
			Usage:   "Operator signer: private-key, remote or aws-kms",
			Value:   string(config.SignerType_PrivateKey),
			EnvVars: []string{config.EnvBridgeOperatorSigner},
		},
		&cli.StringFlag{
			Name:    "operator-private-key",
			Usage:   "Operator private key (hex) for the private-key signer",
			EnvVars: []string{config.EnvBridgeOperatorPrivateKey},
		},
		&cli.StringFlag{
			Name:    "operator-signer-url",
			Usage:   "Remote signer URL for the operator",
			EnvVars: []string{config.EnvBridgeOperatorSignerURL},
		},
		&cli.StringFlag{
			Name:    "operator-address",
			Usage:   "Operator address held by the remote signer",
			EnvVars: []string{config.EnvBridgeOperatorAddress},
		},
		&cli.StringFlag{
			Name:    "aws-kms-key-id",
			Usage:   "AWS KMS key ID for the aws-kms signer",
			EnvVars: []string{config.EnvBridgeAwsKmsKeyID},
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "AWS region override for the aws-kms signer",
			EnvVars: []string{config.EnvBridgeAwsRegion},
		},
		&cli.StringFlag{
			Name:    "transfer-source",
			Usage:   "Whose funds transfers move: operator or session",
			Value:   string(config.TransferSource_Operator),
			EnvVars: []string{config.EnvBridgeTransferSource},
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "HTTP server port",
			Value:   8080,
			EnvVars: []string{config.EnvBridgePort},
		},
		&cli.Float64Flag{
			Name:    "rate-limit",
			Usage:   "Actions per second accepted by the server, 0 disables limiting",
			Value:   5,
			EnvVars: []string{config.EnvBridgeRateLimit},
		},
		&cli.IntFlag{
			Name:    "rate-burst",
			Usage:   "Burst size for the action rate limit",
			Value:   10,
			EnvVars: []string{config.EnvBridgeRateBurst},
		},
		&cli.DurationFlag{
			Name:    "action-timeout",
			Usage:   "Upper bound for a single action including confirmation",
			Value:   5 * time.Minute,
			EnvVars: []string{config.EnvBridgeActionTimeout},
		},
		&cli.StringFlag{
			Name:    "persistence",
			Usage:   "Action journal backend: memory, badger or redis",
			Value:   string(config.PersistenceType_Memory),
			EnvVars: []string{config.EnvBridgePersistenceType},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Usage:   "Badger data directory",
			EnvVars: []string{config.EnvBridgeDataDir},
		},
		&cli.StringFlag{
			Name:    "redis-address",
			Usage:   "Redis address (host:port)",
			EnvVars: []string{config.EnvBridgeRedisAddress},
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Redis password",
			EnvVars: []string{config.EnvBridgeRedisPassword},
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Redis database number",
			EnvVars: []string{config.EnvBridgeRedisDB},
		},
		&cli.StringFlag{
			Name:    "redis-key-prefix",
			Usage:   "Prefix for every redis key",
			EnvVars: []string{config.EnvBridgeRedisKeyPrefix},
		},
		&cli.StringFlag{
			Name:    "server-url",
			Usage:   "Run one-shot commands against a running bridge server instead of a local controller",
			EnvVars: []string{config.EnvBridgeServerURL},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"verbose"},
			Usage:   "Enable debug logging",
			EnvVars: []string{config.EnvBridgeDebug},
		},
	}
}
