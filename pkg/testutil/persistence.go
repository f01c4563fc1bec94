package testutil

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPersistenceSuite exercises the IBridgePersistence contract against a fresh
// store returned by newStore for every subtest.
func RunPersistenceSuite(t *testing.T, newStore func(t *testing.T) persistence.IBridgePersistence) {
	t.Run("save and load action record", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		record := persistence.NewActionRecord("deposit")
		record.Account = "0x1111111111111111111111111111111111111111"
		record.Amount = "1.5"
		record.BaseUnits = "1500000000000000000"
		record.Status = "success"
		record.TxHash = "0xabc"

		require.NoError(t, store.SaveActionRecord(record))

		loaded, err := store.LoadActionRecord(record.ID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, record.Action, loaded.Action)
		assert.Equal(t, record.BaseUnits, loaded.BaseUnits)
		assert.Equal(t, record.TxHash, loaded.TxHash)
		assert.True(t, record.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("missing record is nil", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		loaded, err := store.LoadActionRecord("does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("nil record is rejected", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		require.Error(t, store.SaveActionRecord(nil))
		require.Error(t, store.SaveSessionState(nil))
	})

	t.Run("saving twice overwrites", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		record := persistence.NewActionRecord("withdraw")
		record.Status = "failure"
		require.NoError(t, store.SaveActionRecord(record))

		record.Status = "success"
		require.NoError(t, store.SaveActionRecord(record))

		loaded, err := store.LoadActionRecord(record.ID)
		require.NoError(t, err)
		assert.Equal(t, "success", loaded.Status)
	})

	t.Run("list is ordered by creation time", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		base := time.Now().UTC()
		var records []*persistence.ActionRecord
		var ids []string
		for i, action := range []string{"connect", "deposit", "transfer"} {
			record := persistence.NewActionRecord(action)
			record.Status = "success"
			record.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
			records = append(records, record)
			ids = append(ids, record.ID)
		}

		require.NoError(t, store.SaveActionRecord(records[2]))
		require.NoError(t, store.SaveActionRecord(records[0]))
		require.NoError(t, store.SaveActionRecord(records[1]))

		listed, err := store.ListActionRecords()
		require.NoError(t, err)

		var listedIds []string
		for _, r := range listed {
			listedIds = append(listedIds, r.ID)
		}
		assert.Equal(t, ids, filter(listedIds, ids))
	})

	t.Run("session state", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		state := &persistence.SessionState{
			Account:     "0x1111111111111111111111111111111111111111",
			ChainId:     11155111,
			ConnectedAt: time.Now().Unix(),
		}
		require.NoError(t, store.SaveSessionState(state))

		loaded, err := store.LoadSessionState()
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, *state, *loaded)
	})

	t.Run("concurrent writes", func(t *testing.T) {
		store := newStore(t)
		defer func() { _ = store.Close() }()

		var wg sync.WaitGroup
		ids := make([]string, 20)
		for i := range ids {
			record := persistence.NewActionRecord("balance")
			record.Status = "success"
			ids[i] = record.ID
			wg.Add(1)
			go func(r *persistence.ActionRecord) {
				defer wg.Done()
				assert.NoError(t, store.SaveActionRecord(r))
			}(record)
		}
		wg.Wait()

		for _, id := range ids {
			loaded, err := store.LoadActionRecord(id)
			require.NoError(t, err)
			assert.NotNil(t, loaded)
		}
	})

	t.Run("closed store rejects operations", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.HealthCheck())
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())

		err := store.SaveActionRecord(persistence.NewActionRecord("connect"))
		assert.True(t, errors.Is(err, persistence.ErrPersistenceClosed))

		_, err = store.ListActionRecords()
		assert.True(t, errors.Is(err, persistence.ErrPersistenceClosed))

		assert.True(t, errors.Is(store.HealthCheck(), persistence.ErrPersistenceClosed))
	})
}

// filter keeps the entries of listed that appear in want, preserving order.
// Shared backends (redis) may hold records from other tests.
func filter(listed []string, want []string) []string {
	keep := make(map[string]bool, len(want))
	for _, w := range want {
		keep[w] = true
	}
	var out []string
	for _, l := range listed {
		if keep[l] {
			out = append(out, l)
		}
	}
	return out
}
