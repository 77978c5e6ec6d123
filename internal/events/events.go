// Package events publishes notifications about recorded ledger entries.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupledger/internal/models"
)

// EntryRecorded is emitted after an entry has been appended to the ledger.
type EntryRecorded struct {
	EntryID    int64           `json:"entry_id"`
	GroupID    int64           `json:"group_id"`
	Kind       string          `json:"kind"`
	PaidBy     int64           `json:"paid_by"`
	ToMember   int64           `json:"to_member,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// NewEntryRecorded builds the event for a stored entry.
func NewEntryRecorded(e *models.Entry) EntryRecorded {
	return EntryRecorded{
		EntryID:    e.ID,
		GroupID:    e.GroupID,
		Kind:       string(e.Kind),
		PaidBy:     e.PaidBy,
		ToMember:   e.ToMember,
		Amount:     e.Amount,
		RecordedAt: e.CreatedAt,
	}
}

// ToJSON converts the event to JSON bytes
func (e EntryRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers ledger events. Publishing happens after the entry is
// stored; a failed publish never rolls back the ledger.
type Publisher interface {
	PublishEntryRecorded(ctx context.Context, event EntryRecorded) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishEntryRecorded(context.Context, EntryRecorded) error { return nil }

func (NopPublisher) Close() error { return nil }
