package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/web3signer"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Web3TransactionSigner implements ITransactionSigner using a Web3Signer service
type Web3TransactionSigner struct {
	backend          EthBackend
	logger           *zap.Logger
	chainID          *big.Int
	web3SignerClient web3signer.IWeb3Signer
	fromAddress      common.Address
}

// NewWeb3TransactionSigner creates a new Web3TransactionSigner
func NewWeb3TransactionSigner(web3SignerClient web3signer.IWeb3Signer, fromAddress common.Address, backend EthBackend, logger *zap.Logger) (*Web3TransactionSigner, error) {
	chainID, err := backend.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &Web3TransactionSigner{
		backend:          backend,
		logger:           logger,
		chainID:          chainID,
		web3SignerClient: web3SignerClient,
		fromAddress:      fromAddress,
	}, nil
}

// GetTransactOpts returns transaction options for creating unsigned transactions
func (w3s *Web3TransactionSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return unsignedTransactOpts(ctx, w3s.fromAddress), nil
}

// SignAndSendTransaction signs a transaction with Web3Signer, sends it and waits for the receipt
func (w3s *Web3TransactionSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	unsigned, err := prepareDynamicFeeTx(ctx, w3s.backend, w3s.chainID, w3s.fromAddress, tx, w3s.logger)
	if err != nil {
		return nil, err
	}

	txData := map[string]interface{}{
		"to":                   unsigned.To.Hex(),
		"value":                hexutil.EncodeBig(unsigned.Value),
		"gas":                  hexutil.EncodeUint64(unsigned.Gas),
		"maxPriorityFeePerGas": hexutil.EncodeBig(unsigned.GasTipCap),
		"maxFeePerGas":         hexutil.EncodeBig(unsigned.GasFeeCap),
		"nonce":                hexutil.EncodeUint64(unsigned.Nonce),
		"data":                 hexutil.Encode(unsigned.Data),
		"type":                 "0x2", // EIP-1559 transaction type
		"chainId":              hexutil.EncodeBig(w3s.chainID),
	}

	w3s.logger.Sugar().Infow("SignAndSendTransaction: requesting signature",
		"from", w3s.fromAddress.Hex(),
		"to", unsigned.To.Hex(),
		"nonce", unsigned.Nonce,
	)

	signedTxHex, err := w3s.web3SignerClient.EthSignTransaction(ctx, w3s.fromAddress.Hex(), txData)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction with Web3Signer: %w", err)
	}

	signedTxBytes, err := hexutil.Decode(signedTxHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signed transaction: %w", err)
	}

	var signedTx types.Transaction
	if err := signedTx.UnmarshalBinary(signedTxBytes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signed transaction: %w", err)
	}

	sender, err := types.Sender(types.LatestSignerForChainID(w3s.chainID), &signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover signed transaction sender: %w", err)
	}
	if sender != w3s.fromAddress {
		return nil, fmt.Errorf("web3signer signed as %s, expected %s", sender.Hex(), w3s.fromAddress.Hex())
	}

	return sendAndWait(ctx, w3s.backend, &signedTx, w3s.logger)
}

// GetFromAddress returns the address that will be used for signing
func (w3s *Web3TransactionSigner) GetFromAddress() common.Address {
	return w3s.fromAddress
}

// EstimateGasPriceAndLimit estimates gas price and limit for a transaction
func (w3s *Web3TransactionSigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error) {
	return estimateGasPriceAndLimit(ctx, w3s.backend, w3s.chainID, w3s.fromAddress, tx, w3s.logger)
}
