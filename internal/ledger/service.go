// Package ledger is the entry point to the core: it validates input, resolves
// groups, appends to the ledger and runs the settlement engine. Every
// operation returns either a result or a typed error (ErrNotFound,
// ErrMemberNotInGroup, *ValidationError); state is only changed after all
// checks pass.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

// Recorder receives ledger activity for instrumentation.
type Recorder interface {
	EntryRecorded(kind string, amount decimal.Decimal)
	EntryRejected(kind, reason string)
	SettlementComputed(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) EntryRecorded(string, decimal.Decimal) {}
func (nopRecorder) EntryRejected(string, string)          {}
func (nopRecorder) SettlementComputed(string)             {}

// Balances is the result of GetGroupBalances. When NoMembers is set the
// group exists but has no members, and Members is empty.
type Balances struct {
	GroupID   int64
	Members   []models.MemberBalance
	NoMembers bool
}

// Service implements the core operations on top of a group store and a
// ledger store.
type Service struct {
	groups    storage.GroupStore
	entries   storage.LedgerStore
	publisher events.Publisher
	recorder  Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher sets the publisher notified after each append.
func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithRecorder sets the instrumentation sink.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService creates a Service. Without options, events are dropped and
// nothing is instrumented.
func NewService(groups storage.GroupStore, entries storage.LedgerStore, opts ...Option) *Service {
	s := &Service{
		groups:    groups,
		entries:   entries,
		publisher: events.NopPublisher{},
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// group resolves a group id, translating storage misses to ErrNotFound.
func (s *Service) group(ctx context.Context, groupID int64) (*models.Group, error) {
	g, err := s.groups.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrGroupNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", groupID, err)
	}
	return g, nil
}

// ListGroups returns all groups ordered by id.
func (s *Service) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groups.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// GetGroupMembers returns the group's members in order.
func (s *Service) GetGroupMembers(ctx context.Context, groupID int64) ([]models.Member, error) {
	g, err := s.group(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return g.Members, nil
}

// GetGroupBalances settles the group's full ledger.
func (s *Service) GetGroupBalances(ctx context.Context, groupID int64) (*Balances, error) {
	g, err := s.group(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if len(g.Members) == 0 {
		s.recorder.SettlementComputed("no_members")
		return &Balances{GroupID: g.ID, NoMembers: true}, nil
	}

	seq, err := s.entries.EntriesForGroup(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for group %d: %w", g.ID, err)
	}

	settlement, err := calculator.Settle(*g, seq)
	if errors.Is(err, calculator.ErrNoMembers) {
		s.recorder.SettlementComputed("no_members")
		return &Balances{GroupID: g.ID, NoMembers: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to settle group %d: %w", g.ID, err)
	}

	if settlement.Skipped > 0 {
		slog.WarnContext(ctx, "Settlement skipped entries with unknown payers",
			"group_id", g.ID,
			"skipped", settlement.Skipped,
		)
	}
	if total := settlement.Total(); !total.IsZero() {
		slog.ErrorContext(ctx, "Settlement does not sum to zero",
			"group_id", g.ID,
			"total", total.String(),
		)
	}

	s.recorder.SettlementComputed("settled")
	return &Balances{GroupID: g.ID, Members: settlement.Balances}, nil
}

// ListEntries returns the group's ledger history in insertion order.
func (s *Service) ListEntries(ctx context.Context, groupID int64) ([]models.Entry, error) {
	g, err := s.group(ctx, groupID)
	if err != nil {
		return nil, err
	}

	seq, err := s.entries.EntriesForGroup(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for group %d: %w", g.ID, err)
	}
	return slices.Collect(seq), nil
}

// RecordExpense validates and appends an expense paid by one member on
// behalf of the whole group.
func (s *Service) RecordExpense(ctx context.Context, in ExpenseInput) (*models.Entry, error) {
	kind := string(models.KindExpense)

	amount, err := in.check()
	if err != nil {
		s.recorder.EntryRejected(kind, "invalid_input")
		return nil, err
	}

	g, err := s.group(ctx, *in.GroupID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.recorder.EntryRejected(kind, "group_not_found")
		}
		return nil, err
	}

	if !g.HasMember(*in.PaidBy) {
		s.recorder.EntryRejected(kind, "member_not_in_group")
		return nil, fmt.Errorf("%w: member %d, group %d", ErrMemberNotInGroup, *in.PaidBy, g.ID)
	}

	return s.append(ctx, &models.Entry{
		GroupID: g.ID,
		Kind:    models.KindExpense,
		PaidBy:  *in.PaidBy,
		Amount:  amount,
	})
}

// RecordPayment validates and appends a payment. Both members must belong
// to the group. Payments settle like expenses: the amount is split across
// the whole group, and ToMember is kept for reporting only.
func (s *Service) RecordPayment(ctx context.Context, in PaymentInput) (*models.Entry, error) {
	kind := string(models.KindPayment)

	amount, err := in.check()
	if err != nil {
		s.recorder.EntryRejected(kind, "invalid_input")
		return nil, err
	}

	g, err := s.group(ctx, *in.GroupID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.recorder.EntryRejected(kind, "group_not_found")
		}
		return nil, err
	}

	for _, f := range []struct {
		name string
		id   int64
	}{
		{"from_member", *in.FromMember},
		{"to_member", *in.ToMember},
	} {
		if !g.HasMember(f.id) {
			s.recorder.EntryRejected(kind, "member_not_in_group")
			return nil, invalidField(f.name, fmt.Sprintf("member %d is not in group %d", f.id, g.ID))
		}
	}

	return s.append(ctx, &models.Entry{
		GroupID:  g.ID,
		Kind:     models.KindPayment,
		PaidBy:   *in.FromMember,
		ToMember: *in.ToMember,
		Amount:   amount,
	})
}

// append stores a validated entry, then notifies the recorder and publisher.
func (s *Service) append(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if _, err := s.entries.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append %s: %w", entry.Kind, err)
	}

	slog.InfoContext(ctx, "Entry recorded",
		"entry_id", entry.ID,
		"group_id", entry.GroupID,
		"kind", entry.Kind,
		"paid_by", entry.PaidBy,
		"amount", entry.Amount.String(),
	)
	s.recorder.EntryRecorded(string(entry.Kind), entry.Amount)

	if err := s.publisher.PublishEntryRecorded(ctx, events.NewEntryRecorded(entry)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish entry event",
			"entry_id", entry.ID,
			"error", err,
		)
	}

	return entry, nil
}
