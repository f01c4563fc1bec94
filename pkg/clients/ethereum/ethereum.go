package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	chainIndexerEthereum "github.com/Layr-Labs/chain-indexer/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// ErrChainIdMismatch is returned when an RPC endpoint serves a different network than configured.
var ErrChainIdMismatch = errors.New("chain id mismatch")

// ChainIDReader is anything that can report the chain it is connected to.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dial connects to rpcUrl through the chain-indexer client and verifies it serves expectedChainId.
func Dial(ctx context.Context, rpcUrl string, expectedChainId config.ChainId, l *zap.Logger) (*ethclient.Client, error) {
	ethClient, err := NewClient(rpcUrl, l)
	if err != nil {
		return nil, err
	}

	if err := VerifyChainId(ctx, ethClient, expectedChainId); err != nil {
		ethClient.Close()
		return nil, err
	}

	l.Sugar().Infow("Connected to RPC endpoint",
		"url", rpcUrl,
		"chainId", expectedChainId,
	)
	return ethClient, nil
}

// NewClient connects to rpcUrl without checking which network it serves. The
// wallet side uses it so a wallet on the wrong network can still be detected.
func NewClient(rpcUrl string, l *zap.Logger) (*ethclient.Client, error) {
	if rpcUrl == "" {
		return nil, fmt.Errorf("rpc url cannot be empty")
	}

	client := chainIndexerEthereum.NewEthereumClient(&chainIndexerEthereum.EthereumClientConfig{
		BaseUrl:   rpcUrl,
		BlockType: chainIndexerEthereum.BlockType_Latest,
	}, l)

	ethClient, err := client.GetEthereumContractCaller()
	if err != nil {
		return nil, fmt.Errorf("failed to get Ethereum contract caller: %w", err)
	}
	return ethClient, nil
}

// VerifyChainId returns ErrChainIdMismatch when reader is not on expectedChainId.
func VerifyChainId(ctx context.Context, reader ChainIDReader, expectedChainId config.ChainId) error {
	chainId, err := reader.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainId.Cmp(expectedChainId.BigInt()) != 0 {
		return fmt.Errorf("%w: expected %d, got %s", ErrChainIdMismatch, expectedChainId, chainId.String())
	}
	return nil
}
