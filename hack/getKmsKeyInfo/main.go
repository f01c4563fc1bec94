package main

import (
	"context"
	"os"

	"github.com/Layr-Labs/eigenx-wallet-bridge/internal/aws"
	ethereum "github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/logger"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
)

// Prints the operator address backed by an AWS KMS key so it can be funded
// before running the bridge with --operator-signer=aws-kms.
func main() {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	ctx := context.Background()

	keyId := os.Getenv("KEY_ID")
	if keyId == "" {
		l.Sugar().Fatal("KEY_ID environment variable is not set")
	}
	rpcUrl := os.Getenv("RPC_URL")
	if rpcUrl == "" {
		rpcUrl = "http://localhost:8545"
	}

	session, err := aws.NewKmsSession(ctx, os.Getenv("AWS_REGION"), l)
	if err != nil {
		l.Sugar().Fatalw("failed to load AWS config", "error", err)
	}
	if session.Identity == nil {
		l.Sugar().Fatal("failed to get caller identity")
	}

	ethClient, err := ethereum.NewClient(rpcUrl, l)
	if err != nil {
		l.Sugar().Fatalw("failed to connect RPC", "error", err)
	}
	defer ethClient.Close()

	signer, err := transactionSigner.NewAwsKmsSigner(ctx, session.KmsClient(), keyId, ethClient, l)
	if err != nil {
		l.Sugar().Fatalw("failed to load KMS key", "error", err)
	}

	l.Sugar().Infow("KMS key",
		"keyId", keyId,
		"callerArn", session.Identity.Arn,
		"address", signer.GetFromAddress().Hex(),
	)
}
