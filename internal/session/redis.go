package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "vaccine-assistant/internal/common/errors"
	"vaccine-assistant/internal/models"
)

// DefaultKeyPrefix namespaces slot keys.
const DefaultKeyPrefix = "vaccine-assistant:slots:"

// RedisStore keeps slots as a JSON string per sender, refreshed on save.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(senderID string) string {
	return s.prefix + senderID
}

func (s *RedisStore) Load(ctx context.Context, senderID string) (models.Slots, error) {
	data, err := s.client.Get(ctx, s.key(senderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Slots{}, nil
	}
	if err != nil {
		return models.Slots{}, apperrors.NewSessionStoreFailedError("load", err)
	}

	var slots models.Slots
	if err := json.Unmarshal(data, &slots); err != nil {
		return models.Slots{}, apperrors.NewSessionStoreFailedError("decode", err)
	}
	return slots, nil
}

func (s *RedisStore) Save(ctx context.Context, senderID string, slots models.Slots) error {
	if slots.IsEmpty() {
		return s.Delete(ctx, senderID)
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return apperrors.NewSessionStoreFailedError("encode", err)
	}
	if err := s.client.Set(ctx, s.key(senderID), data, s.ttl).Err(); err != nil {
		return apperrors.NewSessionStoreFailedError("save", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, senderID string) error {
	if err := s.client.Del(ctx, s.key(senderID)).Err(); err != nil {
		return apperrors.NewSessionStoreFailedError("delete", err)
	}
	return nil
}
