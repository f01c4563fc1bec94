package transactionSigner

import (
	"context"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/testutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func Test_PrivateKeySigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	client := newSimulatedChain(t, from)
	l := zaptest.NewLogger(t)

	t.Run("rejects malformed keys", func(t *testing.T) {
		_, err := NewPrivateKeySigner("not-a-key", client, l)
		require.Error(t, err)
	})

	t.Run("accepts 0x prefixed keys", func(t *testing.T) {
		signer, err := NewPrivateKeySigner("0x"+common.Bytes2Hex(crypto.FromECDSA(key)), client, l)
		require.NoError(t, err)
		assert.Equal(t, from, signer.GetFromAddress())
	})

	signer, err := NewPrivateKeySignerFromKey(key, client, l)
	require.NoError(t, err)

	t.Run("transact opts do not broadcast", func(t *testing.T) {
		opts, err := signer.GetTransactOpts(context.Background())
		require.NoError(t, err)
		assert.True(t, opts.NoSend)
		assert.Equal(t, from, opts.From)
		assert.Equal(t, int64(testutil.SimulatedChainId), signer.chainID.Int64())
	})

	t.Run("estimates a buffered gas limit", func(t *testing.T) {
		recipient := common.HexToAddress("0x00000000000000000000000000000000000000aa")
		maxFee, gasLimit, err := signer.EstimateGasPriceAndLimit(context.Background(), valueTransfer(recipient, oneEther()))
		require.NoError(t, err)
		assert.Equal(t, addGasBuffer(21000), gasLimit)
		assert.Positive(t, maxFee.Sign())
	})

	t.Run("signs, sends and waits for the receipt", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		recipient := common.HexToAddress("0x00000000000000000000000000000000000000bb")
		receipt, err := signer.SignAndSendTransaction(ctx, valueTransfer(recipient, oneEther()))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), receipt.Status)

		balance, err := client.BalanceAt(ctx, recipient, nil)
		require.NoError(t, err)
		assert.Equal(t, oneEther().String(), balance.String())
	})
}

func Test_addGasBuffer(t *testing.T) {
	assert.Equal(t, uint64(25200), addGasBuffer(21000))
	assert.Equal(t, uint64(0), addGasBuffer(0))
}
