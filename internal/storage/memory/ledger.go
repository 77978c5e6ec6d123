package memory

import (
	"context"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

// Ensure LedgerStore implements storage.LedgerStore
var _ storage.LedgerStore = (*LedgerStore)(nil)

// LedgerStore keeps entries in a slice for the lifetime of the process.
// Appends are serialized by mu; readers copy under the read lock, so an
// entry is visible either completely or not at all.
type LedgerStore struct {
	mu      sync.RWMutex
	entries []models.Entry
	nextID  int64

	now func() time.Time
}

// NewLedgerStore creates an empty in-memory ledger.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{nextID: 1, now: time.Now}
}

// Append stores a copy of entry, assigning its ID and CreatedAt.
func (s *LedgerStore) Append(_ context.Context, entry *models.Entry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	s.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}
	s.entries = append(s.entries, *entry)
	return entry.ID, nil
}

// EntriesForGroup snapshots the group's entries in insertion order.
func (s *LedgerStore) EntriesForGroup(_ context.Context, groupID int64) (iter.Seq[models.Entry], error) {
	s.mu.RLock()
	var snapshot []models.Entry
	for _, e := range s.entries {
		if e.GroupID == groupID {
			snapshot = append(snapshot, e)
		}
	}
	s.mu.RUnlock()

	return slices.Values(snapshot), nil
}

// Len returns the number of stored entries.
func (s *LedgerStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Close is a no-op; the ledger lives as long as the process.
func (s *LedgerStore) Close() error {
	return nil
}
