package memory

import (
	"testing"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMemoryPersistence(t *testing.T) {
	testutil.RunPersistenceSuite(t, func(t *testing.T) persistence.IBridgePersistence {
		return NewMemoryPersistence(zaptest.NewLogger(t))
	})
}

func TestMemoryPersistence_ReturnsCopies(t *testing.T) {
	mp := NewMemoryPersistence(zaptest.NewLogger(t))
	defer func() { _ = mp.Close() }()

	record := persistence.NewActionRecord("deposit")
	record.Status = "success"
	require.NoError(t, mp.SaveActionRecord(record))

	record.Status = "mutated"
	loaded, err := mp.LoadActionRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "success", loaded.Status)

	loaded.Status = "mutated again"
	reloaded, err := mp.LoadActionRecord(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "success", reloaded.Status)
}

func TestMemoryPersistence_EmptyList(t *testing.T) {
	mp := NewMemoryPersistence(zaptest.NewLogger(t))
	defer func() { _ = mp.Close() }()

	records, err := mp.ListActionRecords()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	state, err := mp.LoadSessionState()
	require.NoError(t, err)
	assert.Nil(t, state)
}
