package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists one cart blob per session id.
type Store interface {
	// Load reports found=false when the session has no cart.
	Load(ctx context.Context, sessionID string) (items []Item, found bool, err error)
	Save(ctx context.Context, sessionID string, items []Item) error
	Delete(ctx context.Context, sessionID string) error
}

const redisKeyPrefix = "cart:session:"

func redisKey(sessionID string) string { return redisKeyPrefix + sessionID }

// RedisStore keeps carts as JSON strings. Every save refreshes the TTL, so a
// cart expires after ttl of inactivity.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]Item, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(sessionID), raw, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, redisKey(sessionID)).Err()
}

type memoryEntry struct {
	items     []Item
	expiresAt time.Time
}

// MemoryStore is a process-local Store with the same idle expiry as redis.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return nil, false, nil
	}
	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, sessionID)
		return nil, false, nil
	}

	items := make([]Item, len(e.items))
	copy(items, e.items)
	return items, true, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Item, len(items))
	copy(stored, items)
	s.entries[sessionID] = memoryEntry{items: stored, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Sweep drops carts that have been idle past the ttl.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if s.ttl > 0 && now.After(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps expired carts every interval until ctx is done.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
