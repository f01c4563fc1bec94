package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/web3signer"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/logger"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signs a message with every account a remote signer exposes and checks the
// recovered address, to confirm a signer is usable as a bridge wallet or operator.
func main() {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	ctx := context.Background()

	signerUrl := os.Getenv("SIGNER_URL")
	if signerUrl == "" {
		signerUrl = "http://localhost:9000"
	}

	client, err := web3signer.NewClient(&web3signer.Config{BaseUrl: signerUrl}, l)
	if err != nil {
		l.Sugar().Fatalw("failed to create Web3Signer client", "error", err)
	}

	addresses, err := client.EthAccounts(ctx)
	if err != nil {
		l.Sugar().Fatalw("failed to list accounts", "error", err)
	}
	if len(addresses) == 0 {
		l.Sugar().Fatal("signer exposes no accounts")
	}

	message := []byte("Hello, Web3Signer!")
	failed := false
	for _, address := range addresses {
		sigHex, err := client.EthSign(ctx, address, hexutil.Encode(message))
		if err != nil {
			l.Sugar().Errorw("failed to sign message", "address", address, "error", err)
			failed = true
			continue
		}

		recovered, err := recoverSigner(message, sigHex)
		if err != nil {
			l.Sugar().Errorw("failed to recover signer", "address", address, "error", err)
			failed = true
			continue
		}

		match := strings.EqualFold(recovered.Hex(), address)
		fmt.Printf("%s signed, recovered %s, match=%t\n", address, recovered.Hex(), match)
		failed = failed || !match
	}

	if failed {
		os.Exit(1)
	}
}

func recoverSigner(message []byte, sigHex string) (common.Address, error) {
	sig, err := hexutil.Decode(sigHex)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature has %d bytes, expected %d", len(sig), crypto.SignatureLength)
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
