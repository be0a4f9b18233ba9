package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/infrastructure/cache"
)

// Store is a process-local key-value store. Contents are lost on exit.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns domain.ErrKeyNotFound for absent keys.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

// TipsCache keeps generated tips per language in a bounded LRU.
type TipsCache struct {
	lru *cache.LRU[domain.Language, []domain.Tip]
}

// NewTipsCache creates a TipsCache holding up to size languages for ttl.
func NewTipsCache(size int, ttl time.Duration) *TipsCache {
	return &TipsCache{lru: cache.NewLRU[domain.Language, []domain.Tip](size, ttl)}
}

func (c *TipsCache) Get(_ context.Context, lang domain.Language) ([]domain.Tip, bool) {
	tips, ok := c.lru.Get(lang)
	if !ok || len(tips) == 0 {
		return nil, false
	}
	return append([]domain.Tip(nil), tips...), true
}

func (c *TipsCache) Set(_ context.Context, lang domain.Language, tips []domain.Tip) {
	if len(tips) == 0 {
		return
	}
	c.lru.Set(lang, append([]domain.Tip(nil), tips...))
}
