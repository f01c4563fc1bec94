package bridge

import (
	"context"
	"fmt"
	"strings"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/units"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Deposit sends amount (decimal ether) to the contract from the connected account.
func (c *Controller) Deposit(ctx context.Context, amount string) *Result {
	ctx, cancel := c.actionContext(ctx)
	defer cancel()

	record := persistence.NewActionRecord(string(ActionDeposit))
	record.Amount = amount

	sess, err := c.requireSession()
	if err != nil {
		return c.fail(record, err)
	}
	record.Account = sess.Account().Hex()
	record.From = record.Account

	if err := c.checkNetwork(ctx); err != nil {
		return c.fail(record, err)
	}

	value, err := units.ParsePositiveEther(amount)
	if err != nil {
		return c.fail(record, err)
	}
	record.BaseUnits = value.String()

	receipt, err := sess.Contract().Deposit(ctx, value)
	recordReceipt(record, receipt)
	if err != nil {
		return c.fail(record, fmt.Errorf("%w: %v", ErrTransactionFailed, err))
	}
	return c.succeed(record)
}

// Withdraw withdraws amount (decimal ether) from the contract to the connected account.
func (c *Controller) Withdraw(ctx context.Context, amount string) *Result {
	ctx, cancel := c.actionContext(ctx)
	defer cancel()

	record := persistence.NewActionRecord(string(ActionWithdraw))
	record.Amount = amount

	sess, err := c.requireSession()
	if err != nil {
		return c.fail(record, err)
	}
	record.Account = sess.Account().Hex()
	record.From = record.Account

	if err := c.checkNetwork(ctx); err != nil {
		return c.fail(record, err)
	}

	value, err := units.ParsePositiveEther(amount)
	if err != nil {
		return c.fail(record, err)
	}
	record.BaseUnits = value.String()

	receipt, err := sess.Contract().Withdraw(ctx, value)
	recordReceipt(record, receipt)
	if err != nil {
		return c.fail(record, fmt.Errorf("%w: %v", ErrTransactionFailed, err))
	}
	return c.succeed(record)
}

// Transfer moves amount to `to` with transferFrom signed by the operator.
// The source is the operator's address unless the bridge is configured to
// move funds out of the connected account.
func (c *Controller) Transfer(ctx context.Context, to string, amount string) *Result {
	ctx, cancel := c.actionContext(ctx)
	defer cancel()

	record := persistence.NewActionRecord(string(ActionTransfer))
	record.Amount = amount
	record.To = to

	sess, err := c.requireSession()
	if err != nil {
		return c.fail(record, err)
	}
	record.Account = sess.Account().Hex()

	if err := c.checkNetwork(ctx); err != nil {
		return c.fail(record, err)
	}

	to = strings.TrimSpace(to)
	if !common.IsHexAddress(to) {
		return c.fail(record, fmt.Errorf("%w: %q", ErrInvalidAddress, to))
	}
	recipient := common.HexToAddress(to)
	record.To = recipient.Hex()

	value, err := units.ParsePositiveEther(amount)
	if err != nil {
		return c.fail(record, err)
	}
	record.BaseUnits = value.String()

	from, err := c.transferSource(sess.Account())
	if err != nil {
		return c.fail(record, err)
	}
	record.From = from.Hex()

	receipt, err := c.operator.TransferFrom(ctx, from, recipient, value)
	recordReceipt(record, receipt)
	if err != nil {
		return c.fail(record, fmt.Errorf("%w: %v", ErrTransactionFailed, err))
	}
	return c.succeed(record)
}

func (c *Controller) transferSource(account common.Address) (common.Address, error) {
	if c.config.TransferSource == config.TransferSource_Session {
		return account, nil
	}
	operator, err := c.operator.GetSignerAddress()
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}
	return operator, nil
}

func recordReceipt(record *persistence.ActionRecord, receipt *types.Receipt) {
	if receipt != nil {
		record.TxHash = receipt.TxHash.Hex()
	}
}
