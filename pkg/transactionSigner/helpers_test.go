package transactionSigner

import (
	"math/big"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/testutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var newSimulatedChain = testutil.NewSimulatedChain

func oneEther() *big.Int {
	return testutil.Ether(1)
}

// valueTransfer is an unsigned placeholder the signers re-price before signing
func valueTransfer(to common.Address, value *big.Int) *types.Transaction {
	return types.NewTx(&types.DynamicFeeTx{To: &to, Value: value})
}
