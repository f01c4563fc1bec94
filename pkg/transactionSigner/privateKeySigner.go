package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PrivateKeySigner implements ITransactionSigner with an in-memory secp256k1 key
type PrivateKeySigner struct {
	backend     EthBackend
	logger      *zap.Logger
	chainID     *big.Int
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address
}

// NewPrivateKeySigner creates a signer from a hex encoded private key (with or without 0x prefix)
func NewPrivateKeySigner(privateKeyHex string, backend EthBackend, logger *zap.Logger) (*PrivateKeySigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return NewPrivateKeySignerFromKey(privateKey, backend, logger)
}

// NewPrivateKeySignerFromKey creates a signer from an already decoded private key
func NewPrivateKeySignerFromKey(privateKey *ecdsa.PrivateKey, backend EthBackend, logger *zap.Logger) (*PrivateKeySigner, error) {
	chainID, err := backend.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &PrivateKeySigner{
		backend:     backend,
		logger:      logger,
		chainID:     chainID,
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// GetTransactOpts returns keyed transact options that build but do not broadcast transactions
func (pks *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(pks.privateKey, pks.chainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create keyed transactor")
	}
	opts.Context = ctx
	opts.NoSend = true
	return opts, nil
}

// SignAndSendTransaction re-prices tx, signs it with the private key and waits for the receipt
func (pks *PrivateKeySigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	unsigned, err := prepareDynamicFeeTx(ctx, pks.backend, pks.chainID, pks.fromAddress, tx, pks.logger)
	if err != nil {
		return nil, err
	}

	signedTx, err := types.SignNewTx(pks.privateKey, types.LatestSignerForChainID(pks.chainID), unsigned)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to sign transaction from %s", pks.fromAddress.Hex())
	}

	return sendAndWait(ctx, pks.backend, signedTx, pks.logger)
}

// GetFromAddress returns the address that will be used for signing
func (pks *PrivateKeySigner) GetFromAddress() common.Address {
	return pks.fromAddress
}

// EstimateGasPriceAndLimit estimates gas price and limit for a transaction
func (pks *PrivateKeySigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error) {
	return estimateGasPriceAndLimit(ctx, pks.backend, pks.chainID, pks.fromAddress, tx, pks.logger)
}
