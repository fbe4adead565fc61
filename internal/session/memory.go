package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"vaccine-assistant/internal/models"
)

// MemoryStore keeps slots in process; a session expires ttl after its last save.
type MemoryStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := ttl
	if cleanup == gocache.NoExpiration {
		cleanup = 0
	}
	return &MemoryStore{cache: gocache.New(ttl, cleanup), ttl: ttl}
}

func (s *MemoryStore) Load(_ context.Context, senderID string) (models.Slots, error) {
	if v, ok := s.cache.Get(senderID); ok {
		return v.(models.Slots), nil
	}
	return models.Slots{}, nil
}

func (s *MemoryStore) Save(_ context.Context, senderID string, slots models.Slots) error {
	if slots.IsEmpty() {
		s.cache.Delete(senderID)
		return nil
	}
	s.cache.Set(senderID, slots, gocache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, senderID string) error {
	s.cache.Delete(senderID)
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
