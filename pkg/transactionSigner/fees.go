package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

type feeParams struct {
	fallbackGasTipCap *big.Int
	baseFeeMultiplier int64
}

func feeParamsForChain(chainID *big.Int) feeParams {
	if config.IsEthereum(config.ChainId(chainID.Uint64())) {
		// 1.5 gwei, 2x base fee
		return feeParams{fallbackGasTipCap: big.NewInt(1500000000), baseFeeMultiplier: 2}
	}
	// 0.001 gwei, 3x base fee
	return feeParams{fallbackGasTipCap: big.NewInt(1000000), baseFeeMultiplier: 3}
}

// addGasBuffer adds 20% on top of an estimated gas limit.
func addGasBuffer(gasLimit uint64) uint64 {
	return gasLimit + gasLimit/5
}

// prepareDynamicFeeTx re-derives fees, gas and nonce for tx from the network and
// returns an unsigned EIP-1559 transaction sent from the given address.
func prepareDynamicFeeTx(
	ctx context.Context,
	backend EthBackend,
	chainID *big.Int,
	from common.Address,
	tx *types.Transaction,
	logger *zap.Logger,
) (*types.DynamicFeeTx, error) {
	if tx.To() == nil {
		return nil, fmt.Errorf("contract creation transactions are not supported")
	}
	params := feeParamsForChain(chainID)

	gasTipCap, err := backend.SuggestGasTipCap(ctx)
	if err != nil {
		// Backends without eth_maxPriorityFeePerGas fall back to a fixed tip.
		logger.Sugar().Warnw("prepareDynamicFeeTx: cannot get gasTipCap, using fallback",
			"error", err,
		)
		gasTipCap = params.fallbackGasTipCap
	}

	header, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block header: %w", err)
	}
	baseFee := header.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}

	maxFeePerGas := new(big.Int).Add(
		new(big.Int).Mul(baseFee, big.NewInt(params.baseFeeMultiplier)),
		gasTipCap,
	)

	gasLimit, err := backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        tx.To(),
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	// tx.Nonce() may legitimately be zero, so the nonce always comes from the network
	nonce, err := backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	logger.Sugar().Debugw("prepareDynamicFeeTx: prepared transaction",
		"to", tx.To().Hex(),
		"maxPriorityFeePerGas", gasTipCap.String(),
		"maxFeePerGas", maxFeePerGas.String(),
		"baseFee", baseFee.String(),
		"gasLimit", addGasBuffer(gasLimit),
		"nonce", nonce,
	)

	return &types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: gasTipCap,
		GasFeeCap: maxFeePerGas,
		Gas:       addGasBuffer(gasLimit),
		To:        tx.To(),
		Value:     tx.Value(),
		Data:      tx.Data(),
	}, nil
}

// estimateGasPriceAndLimit returns the max fee per gas and the buffered gas limit for tx.
func estimateGasPriceAndLimit(ctx context.Context, backend EthBackend, chainID *big.Int, from common.Address, tx *types.Transaction, logger *zap.Logger) (*big.Int, uint64, error) {
	prepared, err := prepareDynamicFeeTx(ctx, backend, chainID, from, tx, logger)
	if err != nil {
		return nil, 0, err
	}
	return prepared.GasFeeCap, prepared.Gas, nil
}

// sendAndWait broadcasts a signed transaction and waits until it is mined.
// A receipt with a status other than 1 is returned as an error.
func sendAndWait(ctx context.Context, backend EthBackend, signedTx *types.Transaction, logger *zap.Logger) (*types.Receipt, error) {
	if err := backend.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Sugar().Infow("Transaction sent",
		"txHash", signedTx.Hash().Hex(),
	)

	_, isPending, err := backend.TransactionByHash(ctx, signedTx.Hash())
	if err != nil {
		logger.Sugar().Warnw("Could not verify transaction in mempool",
			"error", err,
			"txHash", signedTx.Hash().Hex(),
		)
	} else {
		logger.Sugar().Debugw("Transaction verified in mempool",
			"isPending", isPending,
			"txHash", signedTx.Hash().Hex(),
		)
	}

	receipt, err := bind.WaitMined(ctx, backend, signedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction receipt: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		logger.Sugar().Errorw("Transaction failed",
			"txHash", receipt.TxHash.Hex(),
			"status", receipt.Status,
			"gasUsed", receipt.GasUsed,
		)
		return receipt, fmt.Errorf("%w: transaction %s failed with status %d", ErrTransactionReverted, receipt.TxHash.Hex(), receipt.Status)
	}

	logger.Sugar().Infow("Transaction succeeded",
		"txHash", receipt.TxHash.Hex(),
		"gasUsed", receipt.GasUsed,
		"blockNumber", receipt.BlockNumber.Uint64(),
	)
	return receipt, nil
}

// unsignedTransactOpts returns NoSend options whose Signer passes the
// transaction through untouched; signing happens in SignAndSendTransaction.
func unsignedTransactOpts(ctx context.Context, from common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		NoSend:  true,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}
}
