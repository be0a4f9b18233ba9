package usecase

import (
	"context"
	"time"

	"github.com/iho/paisa/internal/domain"
)

// KeyValueStore is the durable byte store behind every repository.
// Get returns domain.ErrKeyNotFound for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// SnapshotRepository persists the full ordered transaction collection.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
	Save(ctx context.Context, snapshot []domain.Transaction) error
}

// ProfileRepository persists onboarding and display preferences.
type ProfileRepository interface {
	// GetProfile returns domain.ErrNotOnboarded when no profile is stored.
	GetProfile(ctx context.Context) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) error
	DeleteProfile(ctx context.Context) error
	// GetTheme returns domain.ErrKeyNotFound when no theme is stored.
	GetTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

// SnapshotReader exposes a read-only copy of the record store.
type SnapshotReader interface {
	Snapshot() []domain.Transaction
}

// Advisor calls the generative-AI service.
type Advisor interface {
	// Insights returns free-form text for the prompt.
	Insights(ctx context.Context, prompt string) (string, error)
	// Tips returns tips decoded from a schema-constrained response.
	Tips(ctx context.Context, prompt string) ([]domain.Tip, error)
}

// TipsCache keeps generated tips per language.
type TipsCache interface {
	Get(ctx context.Context, lang domain.Language) ([]domain.Tip, bool)
	Set(ctx context.Context, lang domain.Language, tips []domain.Tip)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local time zone.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
