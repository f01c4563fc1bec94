package contractCaller

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
)

// MockCall records one write call made against MockContractCallerStub
type MockCall struct {
	Method string
	From   common.Address
	To     common.Address
	Amount *big.Int
}

// MockContractCallerStub provides a minimal in-memory implementation of IContractCaller for testing.
// Balances are read from Balances; Err, when set, fails every call.
type MockContractCallerStub struct {
	mu sync.Mutex

	Signer   common.Address
	Contract common.Address
	Balances map[common.Address]*big.Int
	Err      error
	Calls    []MockCall
}

var _ IContractCaller = (*MockContractCallerStub)(nil)

func (m *MockContractCallerStub) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Method: "balanceOf", To: account})
	if m.Err != nil {
		return nil, m.Err
	}
	if b, ok := m.Balances[account]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}

func (m *MockContractCallerStub) Deposit(ctx context.Context, amount *big.Int) (*ethTypes.Receipt, error) {
	return m.write(MockCall{Method: "deposit", From: m.Signer, Amount: amount})
}

func (m *MockContractCallerStub) Withdraw(ctx context.Context, amount *big.Int) (*ethTypes.Receipt, error) {
	return m.write(MockCall{Method: "withdraw", From: m.Signer, Amount: amount})
}

func (m *MockContractCallerStub) TransferFrom(ctx context.Context, from common.Address, to common.Address, amount *big.Int) (*ethTypes.Receipt, error) {
	return m.write(MockCall{Method: "transferFrom", From: from, To: to, Amount: amount})
}

func (m *MockContractCallerStub) GetSignerAddress() (common.Address, error) {
	return m.Signer, nil
}

func (m *MockContractCallerStub) ContractAddress() common.Address {
	return m.Contract
}

// WriteCalls returns the recorded calls other than balance lookups
func (m *MockContractCallerStub) WriteCalls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []MockCall
	for _, c := range m.Calls {
		if c.Method != "balanceOf" {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockContractCallerStub) write(call MockCall) (*ethTypes.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
	if m.Err != nil {
		return nil, m.Err
	}
	hash := common.BigToHash(big.NewInt(int64(len(m.Calls))))
	return &ethTypes.Receipt{
		Status:      ethTypes.ReceiptStatusSuccessful,
		TxHash:      hash,
		BlockNumber: big.NewInt(int64(len(m.Calls))),
	}, nil
}
