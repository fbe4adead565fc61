package session

import (
	"context"
	"fmt"
	"time"

	"vaccine-assistant/internal/common/config"
	"vaccine-assistant/internal/common/database"
	"vaccine-assistant/internal/models"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Store keeps conversation slots between turns, keyed by sender id. A
// sender without saved slots loads as empty.
type Store interface {
	Load(ctx context.Context, senderID string) (models.Slots, error)
	Save(ctx context.Context, senderID string, slots models.Slots) error
	Delete(ctx context.Context, senderID string) error
}

// NewStore builds the store selected by cfg. rc is required for redis.
func NewStore(cfg config.SessionConfig, rc *database.RedisClient) (Store, error) {
	ttl := time.Duration(cfg.TTL) * time.Second
	switch cfg.Store {
	case "", StoreMemory:
		return NewMemoryStore(ttl), nil
	case StoreRedis:
		if rc == nil {
			return nil, fmt.Errorf("session store %q needs a redis client", cfg.Store)
		}
		return NewRedisStore(rc.Client, cfg.KeyPrefix, ttl), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
