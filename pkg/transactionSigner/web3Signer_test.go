package transactionSigner

import (
	"context"
	cryptoEcdsa "crypto/ecdsa"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/clients/web3signer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// localWeb3Signer answers eth_signTransaction with a local key
type localWeb3Signer struct {
	key      *cryptoEcdsa.PrivateKey
	requests []map[string]interface{}
}

var _ web3signer.IWeb3Signer = (*localWeb3Signer)(nil)

func (s *localWeb3Signer) SetHttpClient(client *http.Client) {}

func (s *localWeb3Signer) EthAccounts(ctx context.Context) ([]string, error) {
	return []string{crypto.PubkeyToAddress(s.key.PublicKey).Hex()}, nil
}

func (s *localWeb3Signer) EthSign(ctx context.Context, account string, data string) (string, error) {
	return "", nil
}

func (s *localWeb3Signer) EthSignTransaction(ctx context.Context, from string, transaction map[string]interface{}) (string, error) {
	s.requests = append(s.requests, transaction)

	decodeBig := func(k string) *big.Int { return hexutil.MustDecodeBig(transaction[k].(string)) }
	decodeUint := func(k string) uint64 { return hexutil.MustDecodeUint64(transaction[k].(string)) }
	to := common.HexToAddress(transaction["to"].(string))

	tx := &types.DynamicFeeTx{
		ChainID:   decodeBig("chainId"),
		Nonce:     decodeUint("nonce"),
		GasTipCap: decodeBig("maxPriorityFeePerGas"),
		GasFeeCap: decodeBig("maxFeePerGas"),
		Gas:       decodeUint("gas"),
		To:        &to,
		Value:     decodeBig("value"),
		Data:      hexutil.MustDecode(transaction["data"].(string)),
	}
	signed, err := types.SignNewTx(s.key, types.LatestSignerForChainID(tx.ChainID), tx)
	if err != nil {
		return "", err
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(raw), nil
}

func Test_Web3TransactionSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	client := newSimulatedChain(t, from)
	l := zaptest.NewLogger(t)

	t.Run("transact opts leave the transaction unsigned", func(t *testing.T) {
		signer, err := NewWeb3TransactionSigner(&localWeb3Signer{key: key}, from, client, l)
		require.NoError(t, err)

		opts, err := signer.GetTransactOpts(context.Background())
		require.NoError(t, err)
		assert.True(t, opts.NoSend)

		tx := valueTransfer(from, oneEther())
		same, err := opts.Signer(from, tx)
		require.NoError(t, err)
		assert.Equal(t, tx.Hash(), same.Hash())
	})

	t.Run("signs, sends and waits for the receipt", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		remote := &localWeb3Signer{key: key}
		signer, err := NewWeb3TransactionSigner(remote, from, client, l)
		require.NoError(t, err)

		recipient := common.HexToAddress("0x00000000000000000000000000000000000000dd")
		receipt, err := signer.SignAndSendTransaction(ctx, valueTransfer(recipient, oneEther()))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), receipt.Status)

		require.Len(t, remote.requests, 1)
		assert.Equal(t, "0x2", remote.requests[0]["type"])
		assert.Equal(t, recipient.Hex(), remote.requests[0]["to"])
	})

	t.Run("rejects signatures from another account", func(t *testing.T) {
		otherKey, err := crypto.GenerateKey()
		require.NoError(t, err)

		signer, err := NewWeb3TransactionSigner(&localWeb3Signer{key: otherKey}, from, client, l)
		require.NoError(t, err)

		recipient := common.HexToAddress("0x00000000000000000000000000000000000000ee")
		_, err = signer.SignAndSendTransaction(context.Background(), valueTransfer(recipient, oneEther()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected "+from.Hex())
	})
}
