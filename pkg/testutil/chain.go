package testutil

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
)

// SimulatedChainId is the chain id the simulated backend reports
const SimulatedChainId = 1337

// NewSimulatedChain starts an in-process chain funding each address with 100 ETH.
// A block is mined every 50ms until the test ends so WaitMined returns promptly.
func NewSimulatedChain(t *testing.T, funded ...common.Address) simulated.Client {
	t.Helper()

	alloc := types.GenesisAlloc{}
	for _, addr := range funded {
		alloc[addr] = types.Account{Balance: Ether(100)}
	}
	sim := simulated.NewBackend(alloc)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				sim.Commit()
			}
		}
	}()

	t.Cleanup(func() {
		close(done)
		wg.Wait()
		_ = sim.Close()
	})
	return sim.Client()
}

// Ether returns n whole ether in wei
func Ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.Ether))
}
