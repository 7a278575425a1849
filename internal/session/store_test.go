package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DelcioCoder/barberpro-frontend/internal/api"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewRedisStore(rdb, time.Hour), mr
}

func TestRedisStoreSaveAndRead(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := WithID(context.Background(), "sid-abc")

	require.NoError(t, store.Save(ctx, api.TokenPair{Access: "acc", Refresh: "ref"}))

	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc", access)

	refresh, err := store.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ref", refresh)

	// Uma chave por token, com TTL aplicado.
	assert.True(t, mr.Exists("session:sid-abc:access_token"))
	assert.True(t, mr.Exists("session:sid-abc:refresh_token"))
	assert.Greater(t, mr.TTL("session:sid-abc:access_token"), time.Duration(0))
}

func TestRedisStoreReadMissingReturnsEmpty(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := WithID(context.Background(), "sid-none")

	access, err := store.Access(ctx)
	require.NoError(t, err)
	assert.Empty(t, access)
}

func TestRedisStoreClear(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := WithID(context.Background(), "sid-abc")

	require.NoError(t, store.Save(ctx, api.TokenPair{Access: "acc", Refresh: "ref"}))
	require.NoError(t, store.Clear(ctx))

	assert.False(t, mr.Exists("session:sid-abc:access_token"))
	assert.False(t, mr.Exists("session:sid-abc:refresh_token"))
}

func TestRedisStoreIsolatesSessions(t *testing.T) {
	store, _ := newRedisStore(t)

	ctxA := WithID(context.Background(), "sid-a")
	ctxB := WithID(context.Background(), "sid-b")

	require.NoError(t, store.Save(ctxA, api.TokenPair{Access: "acc-a"}))

	access, err := store.Access(ctxB)
	require.NoError(t, err)
	assert.Empty(t, access)
}

func TestSaveWithoutSessionIDFails(t *testing.T) {
	store, _ := newRedisStore(t)

	err := store.Save(context.Background(), api.TokenPair{Access: "acc"})
	assert.Error(t, err)
}
