package redis

import (
	"context"
	"os"
	"testing"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/testutil"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// getTestRedisAddress returns the Redis address for testing.
// Uses REDIS_TEST_ADDRESS env var if set, otherwise defaults to localhost:6379.
func getTestRedisAddress() string {
	if addr := os.Getenv("REDIS_TEST_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// requireRedis skips the test when Redis is unreachable. Every store gets its
// own key prefix in DB 15 and its keys are removed when the test ends.
func requireRedis(t *testing.T) *RedisPersistence {
	t.Helper()

	cfg := &RedisConfig{
		Address:   getTestRedisAddress(),
		DB:        15,
		KeyPrefix: "test-" + uuid.NewString() + ":",
	}

	rp, err := NewRedisPersistence(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Skipf("Redis not available at %s: %v", cfg.Address, err)
		return nil
	}

	t.Cleanup(func() {
		client := redis.NewClient(&redis.Options{Addr: cfg.Address, DB: cfg.DB})
		defer func() { _ = client.Close() }()

		ctx := context.Background()
		iter := client.Scan(ctx, 0, cfg.KeyPrefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			client.Del(ctx, iter.Val())
		}
	})
	return rp
}

func TestRedisPersistence(t *testing.T) {
	testutil.RunPersistenceSuite(t, func(t *testing.T) persistence.IBridgePersistence {
		return requireRedis(t)
	})
}

func TestRedisPersistence_ListDropsDanglingIndexEntries(t *testing.T) {
	rp := requireRedis(t)
	defer func() { _ = rp.Close() }()

	record := persistence.NewActionRecord("deposit")
	record.Status = "success"
	require.NoError(t, rp.SaveActionRecord(record))

	ctx := context.Background()
	require.NoError(t, rp.client.Del(ctx, rp.prefixKey(keyPrefixAction+record.ID)).Err())

	records, err := rp.ListActionRecords()
	require.NoError(t, err)
	assert.Empty(t, records)

	count, err := rp.client.ZCard(ctx, rp.prefixKey(keyActionIndex)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNewRedisPersistence_InvalidConfig(t *testing.T) {
	_, err := NewRedisPersistence(nil, zaptest.NewLogger(t))
	require.Error(t, err)

	_, err = NewRedisPersistence(&RedisConfig{}, zaptest.NewLogger(t))
	require.Error(t, err)
}
