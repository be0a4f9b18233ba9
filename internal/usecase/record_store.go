package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/paisa/internal/domain"
	"github.com/iho/paisa/internal/infrastructure/metrics"
)

// RecordStore owns the ordered transaction collection, newest first.
// Every mutation rewrites the full snapshot to the repository. Write
// failures are logged and counted; memory stays authoritative.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.Transaction

	repo    SnapshotRepository
	idGen   IDGenerator
	clock   Clock
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewRecordStore creates an empty RecordStore. Call Load to restore state.
func NewRecordStore(
	repo SnapshotRepository,
	idGen IDGenerator,
	clock Clock,
	log zerolog.Logger,
	metrics *metrics.Metrics,
) *RecordStore {
	if clock == nil {
		clock = SystemClock{}
	}
	return &RecordStore{
		repo:    repo,
		idGen:   idGen,
		clock:   clock,
		log:     log,
		metrics: metrics,
	}
}

// Load replaces the in-memory collection with the persisted snapshot.
// Any failure leaves the store empty.
func (s *RecordStore) Load(ctx context.Context) {
	start := time.Now()
	records, err := s.repo.Load(ctx)
	s.observe("load", start)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.records = nil
		s.failed("load", err)
		s.setGauge()
		return
	}

	s.records = records
	s.setGauge()
	s.log.Info().Int("count", len(records)).Msg("record store loaded")
}

// Add validates the draft, assigns identity and prepends the new record.
func (s *RecordStore) Add(ctx context.Context, draft domain.TransactionDraft) (domain.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := domain.NewTransaction(s.idGen.Generate(), s.clock.Now(), draft)

	next := make([]domain.Transaction, 0, len(s.records)+1)
	next = append(next, tx)
	next = append(next, s.records...)
	s.records = next

	s.persist(ctx)

	if s.metrics != nil {
		s.metrics.TransactionsAdded.Inc()
		s.metrics.TransactionAmount.WithLabelValues(string(tx.Type)).Observe(tx.Amount.InexactFloat64())
	}

	s.log.Debug().Str("id", tx.ID).Str("type", string(tx.Type)).Msg("transaction added")
	return tx, nil
}

// Update replaces the record with the same ID, keeping its CreatedAt.
// found is false when no record matches; nothing is persisted then.
func (s *RecordStore) Update(ctx context.Context, tx domain.Transaction) (updated domain.Transaction, found bool, err error) {
	if err := tx.Draft().Validate(); err != nil {
		return domain.Transaction{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(tx.ID)
	if i < 0 {
		return domain.Transaction{}, false, nil
	}

	updated = domain.NewTransaction(tx.ID, s.records[i].CreatedAt, tx.Draft())

	next := slices.Clone(s.records)
	next[i] = updated
	s.records = next

	s.persist(ctx)

	if s.metrics != nil {
		s.metrics.TransactionsUpdated.Inc()
	}

	return updated, true, nil
}

// Remove deletes the record with the given ID. It reports whether a
// record was removed.
func (s *RecordStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.records = slices.Delete(slices.Clone(s.records), i, i+1)
	s.persist(ctx)

	if s.metrics != nil {
		s.metrics.TransactionsRemoved.Inc()
	}

	return true
}

// Get returns a single record by ID.
func (s *RecordStore) Get(id string) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return s.records[i], nil
}

// Snapshot returns a copy of the collection in stored order.
func (s *RecordStore) Snapshot() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *RecordStore) indexOf(id string) int {
	return slices.IndexFunc(s.records, func(t domain.Transaction) bool {
		return t.ID == id
	})
}

// persist must be called with mu held.
func (s *RecordStore) persist(ctx context.Context) {
	// A cancelled request must not leave storage behind memory.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PersistTimeout)
	defer cancel()

	start := time.Now()
	err := s.repo.Save(ctx, slices.Clone(s.records))
	s.observe("save", start)
	s.setGauge()

	if err != nil {
		s.failed("save", err)
	}
}

func (s *RecordStore) failed(op string, err error) {
	s.log.Error().Err(err).Str("op", op).Msg("persistence failed")
	if s.metrics != nil {
		s.metrics.PersistenceFailures.WithLabelValues(op).Inc()
	}
}

func (s *RecordStore) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.PersistenceDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

func (s *RecordStore) setGauge() {
	if s.metrics != nil {
		s.metrics.StoredTransactions.Set(float64(len(s.records)))
	}
}
