// Package memory is an in-process implementation of the persistence layer.
// It backs local development and tests that do not need PostgreSQL.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"pharmaduty/internal/domain/entity"
	"pharmaduty/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store holds every table in memory. Writes made inside Execute are visible to
// other readers before commit and are undone on rollback.
type Store struct {
	mu          sync.RWMutex
	pharmacies  map[uuid.UUID]*entity.Pharmacy
	dutyPeriods map[uuid.UUID]*entity.DutyPeriod
	ratings     map[uuid.UUID]*entity.Rating
	feedbacks   map[uuid.UUID]*entity.Feedback

	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		pharmacies:  make(map[uuid.UUID]*entity.Pharmacy),
		dutyPeriods: make(map[uuid.UUID]*entity.DutyPeriod),
		ratings:     make(map[uuid.UUID]*entity.Rating),
		feedbacks:   make(map[uuid.UUID]*entity.Feedback),
		locks:       make(map[uuid.UUID]*sync.Mutex),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) pharmacyLock(id uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}

	return lock
}

// txState records what a running transaction must release or revert.
type txState struct {
	undo   []func()
	held   map[uuid.UUID]*sync.Mutex
	closed bool
}

func newTxState() *txState {
	return &txState{held: make(map[uuid.UUID]*sync.Mutex)}
}

// record registers an undo step. Called with the store write lock held.
func (tx *txState) record(fn func()) {
	if tx != nil {
		tx.undo = append(tx.undo, fn)
	}
}

// transactionManager implements repository.TransactionManager on a Store.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type repositoryFactory struct {
	store *Store
	tx    *txState
}

func (f *repositoryFactory) NewPharmacyRepository() repository.PharmacyRepository {
	return &pharmacyRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewDutyPeriodRepository() repository.DutyPeriodRepository {
	return &dutyPeriodRepository{store: f.store, tx: f.tx}
}

func (f *repositoryFactory) NewRatingRepository() repository.RatingRepository {
	return &ratingRepository{store: f.store, tx: f.tx}
}

// Execute runs fn with repositories bound to one transaction.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	tx := newTxState()

	defer func() {
		if r := recover(); r != nil {
			tm.rollback(tx)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, tx: tx}); err != nil {
		tm.rollback(tx)

		return err
	}

	tm.release(tx)

	return nil
}

func (tm *transactionManager) rollback(tx *txState) {
	tm.store.mu.Lock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tm.store.mu.Unlock()

	tm.release(tx)
}

func (tm *transactionManager) release(tx *txState) {
	if tx.closed {
		return
	}
	tx.closed = true

	for _, lock := range tx.held {
		lock.Unlock()
	}
	tx.held = nil
	tx.undo = nil
}

// sortByID orders rows the way the PostgreSQL repositories do for unordered scans.
func sortByID[T any](rows []T, id func(T) uuid.UUID) {
	slices.SortFunc(rows, func(a, b T) int {
		idA, idB := id(a), id(b)

		return bytes.Compare(idA[:], idB[:])
	})
}

func page[T any](rows []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}

	end := len(rows)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return rows[offset:end]
}

func clonePharmacy(p *entity.Pharmacy) *entity.Pharmacy {
	cloned := *p
	cloned.OpeningHours = slices.Clone(p.OpeningHours)
	cloned.DutyPeriods = nil
	cloned.Ratings = nil

	return &cloned
}

func cloneDutyPeriod(d *entity.DutyPeriod) *entity.DutyPeriod {
	cloned := *d

	return &cloned
}

func cloneRating(r *entity.Rating) *entity.Rating {
	cloned := *r

	return &cloned
}

func cloneFeedback(f *entity.Feedback) *entity.Feedback {
	cloned := *f

	return &cloned
}
