package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func stores(t *testing.T) map[string]port.IdempotencyStore {
	redisStore, _ := setupTestRedis(t)
	return map[string]port.IdempotencyStore{
		"redis":  redisStore,
		"memory": NewMemoryStore(),
	}
}

func TestStore_ReserveSaveReplay(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			resp, err := store.Reserve(ctx, "k1", "fp1", time.Minute)
			require.NoError(t, err)
			assert.Nil(t, resp)

			_, err = store.Reserve(ctx, "k1", "fp1", time.Minute)
			assert.ErrorIs(t, err, port.ErrIdempotencyInProgress)

			_, err = store.Reserve(ctx, "k1", "fp2", time.Minute)
			assert.ErrorIs(t, err, port.ErrIdempotencyMismatch)

			saved := port.StoredResponse{
				Fingerprint: "fp1",
				Status:      201,
				ContentType: "application/json",
				Body:        []byte(`{"id":1}`),
			}
			require.NoError(t, store.Save(ctx, "k1", saved, time.Minute))

			resp, err = store.Reserve(ctx, "k1", "fp1", time.Minute)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, saved, *resp)

			_, err = store.Reserve(ctx, "k1", "fp2", time.Minute)
			assert.ErrorIs(t, err, port.ErrIdempotencyMismatch)
		})
	}
}

func TestStore_Release(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Reserve(ctx, "k2", "fp1", time.Minute)
			require.NoError(t, err)
			require.NoError(t, store.Release(ctx, "k2"))

			resp, err := store.Reserve(ctx, "k2", "fp2", time.Minute)
			require.NoError(t, err)
			assert.Nil(t, resp)
		})
	}
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k3", "fp1", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("idempotency:k3"))

	mr.FastForward(2 * time.Minute)

	resp, err := store.Reserve(ctx, "k3", "fp2", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Reserve(ctx, "k4", "fp1", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	resp, err := store.Reserve(ctx, "k4", "fp2", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, resp)
}
