package mocks

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/iho/paisa/internal/domain"
)

// MockSnapshotStore is an in-memory SnapshotRepository that records saves.
type MockSnapshotStore struct {
	mu       sync.RWMutex
	snapshot []domain.Transaction
	saves    int

	LoadFunc func(ctx context.Context) ([]domain.Transaction, error)
	SaveFunc func(ctx context.Context, snapshot []domain.Transaction) error
}

func NewMockSnapshotStore(initial ...domain.Transaction) *MockSnapshotStore {
	return &MockSnapshotStore{snapshot: slices.Clone(initial)}
}

func (m *MockSnapshotStore) Load(ctx context.Context) ([]domain.Transaction, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.snapshot), nil
}

func (m *MockSnapshotStore) Save(ctx context.Context, snapshot []domain.Transaction) error {
	m.mu.Lock()
	m.saves++
	m.mu.Unlock()

	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, snapshot)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = slices.Clone(snapshot)
	return nil
}

// Saved returns the last successfully saved snapshot.
func (m *MockSnapshotStore) Saved() []domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.snapshot)
}

// Saves returns how many times Save was called.
func (m *MockSnapshotStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// MockIDGenerator returns tx-1, tx-2, ...
type MockIDGenerator struct {
	mu sync.Mutex
	n  int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("tx-%d", m.n)
}

// MockClock returns a fixed instant that advances by Step on each call.
type MockClock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now, Step: time.Second}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := m.now
	m.now = m.now.Add(m.Step)
	return t
}
