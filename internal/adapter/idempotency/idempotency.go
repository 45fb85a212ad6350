// Package idempotency keeps reservations and finished responses of requests carrying an
// Idempotency-Key header.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/redis/go-redis/v9"
)

var (
	_ port.IdempotencyStore = (*RedisStore)(nil)
	_ port.IdempotencyStore = (*MemoryStore)(nil)
)

type entry struct {
	Fingerprint string               `json:"fingerprint"`
	Completed   bool                 `json:"completed"`
	Response    *port.StoredResponse `json:"response,omitempty"`
}

// resolve turns an existing entry into the Reserve outcome.
func (e entry) resolve(fingerprint string) (*port.StoredResponse, error) {
	if e.Fingerprint != fingerprint {
		return nil, port.ErrIdempotencyMismatch
	}
	if !e.Completed || e.Response == nil {
		return nil, port.ErrIdempotencyInProgress
	}
	return e.Response, nil
}

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "idempotency:",
	}
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

func (r *RedisStore) Reserve(ctx context.Context,
	key, fingerprint string,
	ttl time.Duration,
) (*port.StoredResponse, error) {
	pending, err := json.Marshal(entry{Fingerprint: fingerprint})
	if err != nil {
		return nil, fmt.Errorf("marshal reservation failed: %w", err)
	}

	// a key can expire between SETNX and GET, in which case reserving is tried again
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := r.client.SetNX(ctx, r.key(key), pending, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis setnx failed: %w", err)
		}
		if ok {
			return nil, nil
		}

		data, err := r.client.Get(ctx, r.key(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get failed: %w", err)
		}

		var existing entry
		if err := json.Unmarshal(data, &existing); err != nil {
			return nil, fmt.Errorf("unmarshal reservation failed: %w", err)
		}
		return existing.resolve(fingerprint)
	}
	return nil, port.ErrIdempotencyInProgress
}

func (r *RedisStore) Save(ctx context.Context, key string, resp port.StoredResponse, ttl time.Duration) error {
	data, err := json.Marshal(entry{Fingerprint: resp.Fingerprint, Completed: true, Response: &resp})
	if err != nil {
		return fmt.Errorf("marshal response failed: %w", err)
	}
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

type memoryEntry struct {
	entry
	expiresAt time.Time
}

// MemoryStore keeps idempotency entries in process. It serves single instance runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Reserve(_ context.Context,
	key, fingerprint string,
	ttl time.Duration,
) (*port.StoredResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if existing, ok := m.entries[key]; ok && now.Before(existing.expiresAt) {
		return existing.resolve(fingerprint)
	}

	m.entries[key] = memoryEntry{
		entry:     entry{Fingerprint: fingerprint},
		expiresAt: now.Add(ttl),
	}
	return nil, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, resp port.StoredResponse, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		entry:     entry{Fingerprint: resp.Fingerprint, Completed: true, Response: &resp},
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

func (m *MemoryStore) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
