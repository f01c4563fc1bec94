package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type staticChainId struct {
	id  *big.Int
	err error
}

func (s staticChainId) ChainID(ctx context.Context) (*big.Int, error) {
	return s.id, s.err
}

func Test_VerifyChainId(t *testing.T) {
	ctx := context.Background()

	t.Run("matching chain", func(t *testing.T) {
		err := VerifyChainId(ctx, staticChainId{id: big.NewInt(11155111)}, config.ChainId_EthereumSepolia)
		require.NoError(t, err)
	})

	t.Run("different chain", func(t *testing.T) {
		err := VerifyChainId(ctx, staticChainId{id: big.NewInt(1)}, config.ChainId_EthereumSepolia)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrChainIdMismatch))
	})

	t.Run("rpc failure", func(t *testing.T) {
		err := VerifyChainId(ctx, staticChainId{err: errors.New("connection refused")}, config.ChainId_EthereumSepolia)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrChainIdMismatch))
	})
}

func Test_DialRequiresUrl(t *testing.T) {
	_, err := Dial(context.Background(), "", config.ChainId_EthereumSepolia, zaptest.NewLogger(t))
	require.Error(t, err)
}

func Test_NewClientRequiresUrl(t *testing.T) {
	_, err := NewClient("", zaptest.NewLogger(t))
	require.Error(t, err)
}
