// Package store holds the in-memory transaction store. It is the primary
// read path consumed by handlers and mutated by the reconciliation engine;
// the postgres repository is its durable mirror, rebuilt into the store at
// startup.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/models"
)

// Observer is notified synchronously after every successful mutation.
// Observers must not call back into the store.
type Observer func(tx models.Transaction)

// TransactionStore stores all known transactions keyed by provider uuid.
// All mutation goes through Append and UpdateStatus; both are atomic with
// respect to concurrent reads and writes. Writers for the same uuid are
// expected to be serialized by the caller (one poll goroutine per uuid).
type TransactionStore struct {
	mu        sync.RWMutex
	byUUID    map[string]models.Transaction
	order     []string
	observers []Observer
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		byUUID: make(map[string]models.Transaction),
	}
}

// Subscribe registers an observer for subsequent mutations.
func (s *TransactionStore) Subscribe(obs Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, obs)
}

// Append inserts a new transaction. Inserting a uuid that is already
// present, or a transaction missing its identity fields, is a no-op.
// Returns true if the transaction was stored.
func (s *TransactionStore) Append(tx models.Transaction) bool {
	if tx.UUID == "" || tx.BookID == 0 {
		logger.Log.Warnw("rejected transaction append: missing identity fields",
			"uuid", tx.UUID, "book_id", tx.BookID)
		return false
	}

	s.mu.Lock()
	if _, ok := s.byUUID[tx.UUID]; ok {
		s.mu.Unlock()
		logger.Log.Infow("duplicate transaction append ignored", "uuid", tx.UUID)
		return false
	}
	s.byUUID[tx.UUID] = tx
	s.order = append(s.order, tx.UUID)
	s.notify(tx)
	s.mu.Unlock()
	return true
}

// UpdateStatus replaces the status and updatedAt of the matching record,
// leaving every other field and record untouched. Unknown uuids, empty
// arguments, and transactions already in a terminal status are no-ops.
// Returns true if the record was mutated.
func (s *TransactionStore) UpdateStatus(txUUID string, newStatus models.Status, updatedAt time.Time) bool {
	if txUUID == "" || newStatus == "" {
		return false
	}

	s.mu.Lock()
	tx, ok := s.byUUID[txUUID]
	if !ok {
		s.mu.Unlock()
		logger.Log.Warnw("status update for unknown transaction ignored", "uuid", txUUID)
		return false
	}
	if tx.Status.IsTerminal() {
		// Terminal states never revert, even if a stale response from a
		// torn-down poll arrives late.
		s.mu.Unlock()
		logger.Log.Infow("status update for terminal transaction ignored",
			"uuid", txUUID, "current", tx.Status, "rejected", newStatus)
		return false
	}
	tx.Status = newStatus
	tx.UpdatedAt = &updatedAt
	s.byUUID[txUUID] = tx
	s.notify(tx)
	s.mu.Unlock()
	return true
}

// Find returns the transaction with the given uuid, if stored.
func (s *TransactionStore) Find(txUUID string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.byUUID[txUUID]
	return tx, ok
}

// FindByBookAndUser returns the first transaction for (bookID, userID), in
// insertion order. Used for display only; access decisions use HasPaid.
func (s *TransactionStore) FindByBookAndUser(bookID int64, userID uuid.UUID) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		tx := s.byUUID[id]
		if tx.BookID == bookID && tx.UserID == userID {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// HasPaid reports whether any stored transaction for (bookID, userID) is
// successful. A (book, user) pair may have several records from retries;
// one successful record grants access.
func (s *TransactionStore) HasPaid(bookID int64, userID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.byUUID {
		if tx.BookID == bookID && tx.UserID == userID && tx.Status == models.StatusSuccessful {
			return true
		}
	}
	return false
}

// ListByUser returns the user's transactions in insertion order.
func (s *TransactionStore) ListByUser(userID uuid.UUID) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Transaction
	for _, id := range s.order {
		tx := s.byUUID[id]
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUUID)
}

// Clear removes all transactions. Owned by the session collaborator for
// logout teardown; the reconciliation engine never calls it.
func (s *TransactionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUUID = make(map[string]models.Transaction)
	s.order = nil
}

// notify runs with s.mu held so that observers see mutations in the
// order they were applied. Observers must not call back into the store.
func (s *TransactionStore) notify(tx models.Transaction) {
	for _, obs := range s.observers {
		obs(tx)
	}
}
