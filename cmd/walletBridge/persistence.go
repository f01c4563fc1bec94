package main

import (
	"fmt"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence/badger"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence/memory"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/persistence/redis"
	"go.uber.org/zap"
)

// newPersistence opens the action journal backend selected by cfg.
func newPersistence(cfg *config.PersistenceConfig, l *zap.Logger) (persistence.IBridgePersistence, error) {
	switch cfg.Type {
	case config.PersistenceType_Memory:
		return memory.NewMemoryPersistence(l), nil
	case config.PersistenceType_Badger:
		return badger.NewBadgerPersistence(cfg.DataDir, l)
	case config.PersistenceType_Redis:
		return redis.NewRedisPersistence(&redis.RedisConfig{
			Address:   cfg.RedisAddress,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
		}, l)
	}
	return nil, fmt.Errorf("unsupported persistence type: %s", cfg.Type)
}
