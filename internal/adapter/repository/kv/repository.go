package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/infrastructure/metrics"
	"github.com/iho/paisa/internal/usecase"
)

// Storage keys.
const (
	DataKey  = "rozana_paisa_data_v3"
	AuthKey  = "rozana_paisa_auth_v3"
	ThemeKey = "rozana_paisa_theme_v3"
)

// SnapshotRepo implements usecase.SnapshotRepository on a key-value store.
type SnapshotRepo struct {
	store   usecase.KeyValueStore
	metrics *metrics.Metrics
}

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(store usecase.KeyValueStore, m *metrics.Metrics) *SnapshotRepo {
	return &SnapshotRepo{store: store, metrics: m}
}

// Load reads the snapshot. An absent key is an empty collection.
func (r *SnapshotRepo) Load(ctx context.Context) ([]domain.Transaction, error) {
	data, err := r.store.Get(ctx, DataKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return decodeSnapshot(data)
}

// Save replaces the stored snapshot.
func (r *SnapshotRepo) Save(ctx context.Context, snapshot []domain.Transaction) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, DataKey, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if r.metrics != nil {
		r.metrics.PersistenceWrites.WithLabelValues(DataKey).Inc()
	}
	return nil
}

// ProfileRepo implements usecase.ProfileRepository on a key-value store.
type ProfileRepo struct {
	store usecase.KeyValueStore
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(store usecase.KeyValueStore) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// GetProfile returns domain.ErrNotOnboarded when no profile is stored.
// An unreadable profile also reports domain.ErrNotOnboarded, wrapping the
// decode error.
func (r *ProfileRepo) GetProfile(ctx context.Context) (*domain.Profile, error) {
	data, err := r.store.Get(ctx, AuthKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, domain.ErrNotOnboarded
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p, err := decodeProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotOnboarded, err)
	}
	return p, nil
}

func (r *ProfileRepo) SaveProfile(ctx context.Context, p domain.Profile) error {
	data, err := encodeProfile(p)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, AuthKey, data)
}

func (r *ProfileRepo) DeleteProfile(ctx context.Context) error {
	return r.store.Delete(ctx, AuthKey)
}

func (r *ProfileRepo) GetTheme(ctx context.Context) (domain.Theme, error) {
	data, err := r.store.Get(ctx, ThemeKey)
	if err != nil {
		return "", err
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("decode theme: %w", err)
	}
	return domain.ParseTheme(s)
}

func (r *ProfileRepo) SaveTheme(ctx context.Context, theme domain.Theme) error {
	data, err := json.Marshal(string(theme))
	if err != nil {
		return err
	}
	return r.store.Put(ctx, ThemeKey, data)
}
