package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *RedisStore {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestRedisStore_SaveLoad(t *testing.T) {
	st := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "uvicorn:cart:abc", []byte(`{"items":[]}`)))

	got, err := st.Load(ctx, "uvicorn:cart:abc")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"items":[]}`), got)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	st := setupTestRedis(t)

	_, err := st.Load(context.Background(), "uvicorn:cart:nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	st := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "k", []byte("v")))
	require.NoError(t, st.Delete(ctx, "k"))

	_, err := st.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is fine
	assert.NoError(t, st.Delete(ctx, "k"))
}

func TestMemoryStore_Isolation(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	val := []byte("original")
	require.NoError(t, st.Save(ctx, "k", val))
	val[0] = 'X'

	got, err := st.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := st.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestMemoryStore_LoadMissing(t *testing.T) {
	_, err := NewMemoryStore().Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
