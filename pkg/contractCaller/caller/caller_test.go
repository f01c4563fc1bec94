package caller

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/bindings/DummyDepositWithdraw"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	testContract = common.HexToAddress("0xc239e0d299420aE737A2d1C6671cEA468B2Ba325")
	testSigner   = common.HexToAddress("0x1000000000000000000000000000000000000001")
)

// balanceBackend answers balanceOf calls; every other backend method is unused
// because recordingSigner pre-fills nonce, gas and fees.
type balanceBackend struct {
	bind.ContractBackend
	balance *big.Int
	lastTo  common.Address
}

func (b *balanceBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.lastTo = *call.To
	return common.LeftPadBytes(b.balance.Bytes(), 32), nil
}

// recordingSigner captures transactions instead of broadcasting them
type recordingSigner struct {
	sent []*types.Transaction
	err  error
}

func (s *recordingSigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{
		From:      testSigner,
		Context:   ctx,
		NoSend:    true,
		Nonce:     big.NewInt(0),
		GasLimit:  100000,
		GasFeeCap: big.NewInt(2),
		GasTipCap: big.NewInt(1),
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}, nil
}

func (s *recordingSigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	s.sent = append(s.sent, tx)
	if s.err != nil {
		return nil, s.err
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}, nil
}

func (s *recordingSigner) GetFromAddress() common.Address {
	return testSigner
}

func (s *recordingSigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*big.Int, uint64, error) {
	return nil, 0, nil
}

func decodeCall(t *testing.T, tx *types.Transaction) (string, []interface{}) {
	t.Helper()
	parsed, err := DummyDepositWithdraw.DummyDepositWithdrawMetaData.GetAbi()
	require.NoError(t, err)

	method, err := parsed.MethodById(tx.Data()[:4])
	require.NoError(t, err)

	args, err := method.Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	return method.Name, args
}

func newTestCaller(t *testing.T, signer transactionSigner.ITransactionSigner) (*ContractCaller, *balanceBackend) {
	backend := &balanceBackend{balance: big.NewInt(0)}
	cc, err := NewContractCaller(testContract, backend, signer, zaptest.NewLogger(t))
	require.NoError(t, err)
	return cc, backend
}

func Test_BalanceOf(t *testing.T) {
	cc, backend := newTestCaller(t, nil)
	backend.balance, _ = new(big.Int).SetString("1500000000000000000", 10)

	account := common.HexToAddress("0x2000000000000000000000000000000000000002")
	balance, err := cc.BalanceOf(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", balance.String())
	assert.Equal(t, testContract, backend.lastTo)
}

func Test_ReadOnlyCallerRejectsWrites(t *testing.T) {
	cc, _ := newTestCaller(t, nil)

	_, err := cc.Deposit(context.Background(), big.NewInt(1))
	assert.True(t, errors.Is(err, ErrNoSigner))

	_, err = cc.GetSignerAddress()
	assert.True(t, errors.Is(err, ErrNoSigner))
}

func Test_Deposit(t *testing.T) {
	signer := &recordingSigner{}
	cc, _ := newTestCaller(t, signer)

	amount, _ := new(big.Int).SetString("1500000000000000000", 10)
	receipt, err := cc.Deposit(context.Background(), amount)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	require.Len(t, signer.sent, 1)
	tx := signer.sent[0]
	assert.Equal(t, testContract, *tx.To())
	assert.Equal(t, amount.String(), tx.Value().String())

	name, args := decodeCall(t, tx)
	assert.Equal(t, "deposit", name)
	assert.Empty(t, args)
}

func Test_Withdraw(t *testing.T) {
	signer := &recordingSigner{}
	cc, _ := newTestCaller(t, signer)

	amount, _ := new(big.Int).SetString("200000000000000000", 10)
	_, err := cc.Withdraw(context.Background(), amount)
	require.NoError(t, err)

	require.Len(t, signer.sent, 1)
	tx := signer.sent[0]
	assert.Equal(t, "0", tx.Value().String())

	name, args := decodeCall(t, tx)
	assert.Equal(t, "withdraw", name)
	require.Len(t, args, 1)
	assert.Equal(t, amount.String(), args[0].(*big.Int).String())
}

func Test_TransferFrom(t *testing.T) {
	signer := &recordingSigner{}
	cc, _ := newTestCaller(t, signer)

	to := common.HexToAddress("0x3000000000000000000000000000000000000003")
	amount, _ := new(big.Int).SetString("3000000000000000000", 10)
	_, err := cc.TransferFrom(context.Background(), testSigner, to, amount)
	require.NoError(t, err)

	require.Len(t, signer.sent, 1)
	name, args := decodeCall(t, signer.sent[0])
	assert.Equal(t, "transferFrom", name)
	require.Len(t, args, 3)
	assert.Equal(t, testSigner, args[0].(common.Address))
	assert.Equal(t, to, args[1].(common.Address))
	assert.Equal(t, amount.String(), args[2].(*big.Int).String())
}

func Test_SignerFailureIsWrapped(t *testing.T) {
	sendErr := errors.New("execution reverted")
	cc, _ := newTestCaller(t, &recordingSigner{err: sendErr})

	_, err := cc.Withdraw(context.Background(), big.NewInt(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, sendErr))
	assert.Contains(t, err.Error(), "Withdraw transaction failed")
}
