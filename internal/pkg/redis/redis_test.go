package redis

import (
	"Brightline/internal/api/config"
	"Brightline/internal/pkg/consts"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KVStore {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb, err := InitRedis(config.RedisConfig{Addr: addr, PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() {
		rdb.Del(context.Background(), consts.LegacyPostsKey, consts.MigrationCompletedKey, consts.MigrationCompletedKey+":meta")
		_ = rdb.Close()
	})
	return NewKVStore(rdb)
}

func TestKVStore_MissingKey(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	v, err := kv.GetValue(ctx, "brightline:test:missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, kv.SetWithExpiration(ctx, "brightline:test:ttl", "1", time.Minute))
	v, err = kv.GetValue(ctx, "brightline:test:ttl")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	require.NoError(t, kv.rdb.Del(ctx, "brightline:test:ttl").Err())
}

func TestLegacyStore_Flag(t *testing.T) {
	store := NewLegacyStore(newTestKV(t))
	ctx := context.Background()

	done, err := store.MigrationCompleted(ctx)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, store.SavePosts(ctx, `[{"title":"x"}]`))
	blob, err := store.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"x"}]`, blob)

	require.NoError(t, store.MarkMigrationCompleted(ctx))
	done, err = store.MigrationCompleted(ctx)
	require.NoError(t, err)
	assert.True(t, done)
}
