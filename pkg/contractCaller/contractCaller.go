package contractCaller

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/contractCaller/caller"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
)

// IContractCaller wraps the DummyDepositWithdraw contract. Write methods block
// until the transaction is mined and fail on a reverted receipt.
type IContractCaller interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)

	// Deposit calls deposit() with amount attached as the transaction value
	Deposit(ctx context.Context, amount *big.Int) (*ethereumTypes.Receipt, error)

	Withdraw(ctx context.Context, amount *big.Int) (*ethereumTypes.Receipt, error)

	TransferFrom(ctx context.Context, from common.Address, to common.Address, amount *big.Int) (*ethereumTypes.Receipt, error)

	// GetSignerAddress returns the address transactions are sent from
	GetSignerAddress() (common.Address, error)

	ContractAddress() common.Address
}

var _ IContractCaller = (*caller.ContractCaller)(nil)
