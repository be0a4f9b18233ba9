package redis

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const testKeyPrefix = "paisa:"

// redisFixture is a KV store and tips cache sharing one miniredis server.
type redisFixture struct {
	mr    *miniredis.Miniredis
	store *KVStore
	tips  *TipsCache
}

func newRedisFixture(t *testing.T, tipsTTL time.Duration) *redisFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisFixture{
		mr:    mr,
		store: NewKVStore(client, testKeyPrefix),
		tips:  NewTipsCache(client, testKeyPrefix, tipsTTL, zerolog.Nop()),
	}
}
