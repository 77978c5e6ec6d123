// Package sqlite provides a SQLite-backed implementation of the
// storage.LedgerStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

// Ensure LedgerStore implements storage.LedgerStore
var _ storage.LedgerStore = (*LedgerStore)(nil)

// LedgerStore implements storage.LedgerStore using SQLite.
// Amounts are stored as decimal strings so they round-trip exactly.
type LedgerStore struct {
	db *sql.DB

	// mu serializes appends so ids follow call order.
	mu sync.Mutex
}

// New creates a new LedgerStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*LedgerStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	return &LedgerStore{db: db}, nil
}

// Close closes the database connection.
func (s *LedgerStore) Close() error {
	return s.db.Close()
}

// Append inserts an entry and populates its ID and CreatedAt.
func (s *LedgerStore) Append(ctx context.Context, entry *models.Entry) (int64, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var toMember sql.NullInt64
	if entry.ToMember != 0 {
		toMember = sql.NullInt64{Int64: entry.ToMember, Valid: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_entries (group_id, kind, paid_by, to_member, amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.GroupID, string(entry.Kind), entry.PaidBy, toMember,
		entry.Amount.String(), entry.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read entry id: %w", err)
	}
	entry.ID = id
	return id, nil
}

// EntriesForGroup loads the group's entries ordered by id.
func (s *LedgerStore) EntriesForGroup(ctx context.Context, groupID int64) (iter.Seq[models.Entry], error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, kind, paid_by, to_member, amount, created_at
		 FROM ledger_entries WHERE group_id = ? ORDER BY id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var (
			e         models.Entry
			kind      string
			toMember  sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.GroupID, &kind, &e.PaidBy, &toMember, &e.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Kind = models.EntryKind(kind)
		e.ToMember = toMember.Int64
		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return slices.Values(entries), nil
}

// Len counts all stored entries.
func (s *LedgerStore) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ledger_entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}
