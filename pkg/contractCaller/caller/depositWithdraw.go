package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Deposit sends amount to the contract's payable deposit()
func (cc *ContractCaller) Deposit(ctx context.Context, amount *big.Int) (*types.Receipt, error) {
	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}
	txOpts.Value = new(big.Int).Set(amount)

	tx, err := cc.contract.Deposit(txOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit transaction: %w", err)
	}

	return cc.signAndSendTransaction(ctx, tx, "Deposit")
}

// Withdraw calls withdraw(amount)
func (cc *ContractCaller) Withdraw(ctx context.Context, amount *big.Int) (*types.Receipt, error) {
	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := cc.contract.Withdraw(txOpts, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to create withdraw transaction: %w", err)
	}

	return cc.signAndSendTransaction(ctx, tx, "Withdraw")
}

// TransferFrom calls transferFrom(from, to, amount) signed by this caller's signer
func (cc *ContractCaller) TransferFrom(ctx context.Context, from common.Address, to common.Address, amount *big.Int) (*types.Receipt, error) {
	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := cc.contract.TransferFrom(txOpts, from, to, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to create transferFrom transaction: %w", err)
	}

	cc.logger.Sugar().Infow("Submitting transferFrom",
		"src", from.Hex(),
		"dst", to.Hex(),
		"wad", amount.String(),
	)
	return cc.signAndSendTransaction(ctx, tx, "TransferFrom")
}
