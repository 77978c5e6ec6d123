// Package storage provides abstractions for group and ledger storage.
package storage

import (
	"context"
	"errors"
	"iter"

	"github.com/mmynk/groupledger/internal/models"
)

// ErrGroupNotFound is returned when a group id matches no stored group.
var ErrGroupNotFound = errors.New("group not found")

// GroupStore defines read access to the seeded groups.
// Groups never change after the store is built, so implementations must be
// safe for concurrent reads without locking by the caller.
type GroupStore interface {
	// GetGroup retrieves a group by its ID.
	// Returns ErrGroupNotFound if no group has that ID.
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)

	// GetMembers returns the ordered member list of a group.
	// Returns ErrGroupNotFound if no group has that ID.
	GetMembers(ctx context.Context, groupID int64) ([]models.Member, error)

	// ListGroups returns all groups ordered by ID.
	ListGroups(ctx context.Context) ([]models.Group, error)
}

// LedgerStore defines the append-only ledger of expenses and payments.
// This abstraction allows swapping storage backends (memory, SQLite)
// without changing the service layer.
type LedgerStore interface {
	// Append persists an entry and returns its assigned ID.
	// The entry.ID field (and CreatedAt, when zero) will be populated by the
	// store. Append performs no validation.
	Append(ctx context.Context, entry *models.Entry) (int64, error)

	// EntriesForGroup returns the entries of a group in insertion order.
	// The sequence is a snapshot taken at call time and may be iterated
	// any number of times.
	EntriesForGroup(ctx context.Context, groupID int64) (iter.Seq[models.Entry], error)

	// Len returns the total number of entries across all groups.
	Len(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
