package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/internal/aws"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/web3signer"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ITransactionSigner provides methods for signing Ethereum transactions
type ITransactionSigner interface {
	// GetTransactOpts returns transaction options for creating unsigned transactions
	GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error)

	// SignAndSendTransaction signs a transaction, sends it to the network and waits for a successful receipt
	SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// GetFromAddress returns the address that will be used for signing
	GetFromAddress() common.Address

	// EstimateGasPriceAndLimit estimates gas price and limit for a transaction
	EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error)
}

// EthBackend is the subset of an RPC client the signers need. *ethclient.Client
// and the simulated backend client both satisfy it.
type EthBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	ethereum.ChainIDReader
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
}

// NewTransactionSigner builds the operator signer described by cfg.
func NewTransactionSigner(ctx context.Context, cfg *config.OperatorSignerConfig, backend EthBackend, logger *zap.Logger) (ITransactionSigner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("signer config cannot be nil")
	}

	switch cfg.Type {
	case config.SignerType_PrivateKey:
		if cfg.PrivateKey == "" {
			return nil, fmt.Errorf("private key cannot be empty")
		}
		return NewPrivateKeySigner(cfg.PrivateKey, backend, logger)

	case config.SignerType_Remote:
		client, err := web3signer.NewClient(&web3signer.Config{BaseUrl: cfg.SignerUrl}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create web3signer client: %w", err)
		}
		return NewWeb3TransactionSigner(client, common.HexToAddress(cfg.FromAddress), backend, logger)

	case config.SignerType_AwsKms:
		session, err := aws.NewKmsSession(ctx, cfg.AwsRegion, logger)
		if err != nil {
			return nil, err
		}
		return NewAwsKmsSigner(ctx, session.KmsClient(), cfg.AwsKmsKeyId, backend, logger)
	}
	return nil, fmt.Errorf("unsupported signer type: %s", cfg.Type)
}
