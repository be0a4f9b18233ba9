package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/paisa/internal/domain"
)

func TestKVStorePutAndGet(t *testing.T) {
	f := newRedisFixture(t, time.Hour)
	store, mr := f.store, f.mr
	ctx := context.Background()

	if err := store.Put(ctx, "foo", []byte("bar")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	val, err := store.Get(ctx, "foo")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(val) != "bar" {
		t.Fatalf("expected bar, got %s", val)
	}

	if !mr.Exists(testKeyPrefix + "foo") {
		t.Fatalf("expected key to be stored with prefix")
	}
	if ttl := mr.TTL(testKeyPrefix + "foo"); ttl != 0 {
		t.Fatalf("expected no expiry, got %v", ttl)
	}
}

func TestKVStoreMissingKey(t *testing.T) {
	f := newRedisFixture(t, time.Hour)

	_, err := f.store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKVStoreDelete(t *testing.T) {
	store := newRedisFixture(t, time.Hour).store
	ctx := context.Background()

	if err := store.Put(ctx, "foo", []byte("bar")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "foo"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("expected deleted key to be missing, got %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestTipsCacheRoundTripAndExpiry(t *testing.T) {
	f := newRedisFixture(t, time.Hour)
	cache, mr := f.tips, f.mr
	ctx := context.Background()

	if _, ok := cache.Get(ctx, domain.LanguageEnglish); ok {
		t.Fatalf("expected miss on empty cache")
	}

	tips := domain.DefaultTips()
	cache.Set(ctx, domain.LanguageEnglish, tips)

	got, ok := cache.Get(ctx, domain.LanguageEnglish)
	if !ok {
		t.Fatalf("expected hit")
	}
	if len(got) != len(tips) || got[1] != tips[1] {
		t.Fatalf("unexpected tips: %+v", got)
	}
	if _, ok := cache.Get(ctx, domain.LanguageUrdu); ok {
		t.Fatalf("expected languages to be cached separately")
	}

	mr.FastForward(2 * time.Hour)
	if _, ok := cache.Get(ctx, domain.LanguageEnglish); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestTipsCacheIgnoresCorruptEntries(t *testing.T) {
	f := newRedisFixture(t, time.Hour)
	cache, mr := f.tips, f.mr
	if err := mr.Set(testKeyPrefix+"tips:en", "not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, ok := cache.Get(context.Background(), domain.LanguageEnglish); ok {
		t.Fatalf("expected corrupt entry to be a miss")
	}

	cache.Set(context.Background(), domain.LanguageEnglish, nil)
	if v, _ := mr.Get(testKeyPrefix + "tips:en"); v != "not json" {
		t.Fatalf("expected empty set to be ignored, got %q", v)
	}
}
