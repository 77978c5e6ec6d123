package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/ledger"
)

// LedgerService records expenses and payments and lists a group's history.
type LedgerService struct {
	ledger *ledger.Service
}

// NewLedgerService creates a new LedgerService backed by the ledger core.
func NewLedgerService(svc *ledger.Service) *LedgerService {
	return &LedgerService{ledger: svc}
}

// RecordExpense records an expense split evenly across the group.
func (s *LedgerService) RecordExpense(ctx context.Context, req *connect.Request[RecordExpenseRequest]) (*connect.Response[RecordExpenseResponse], error) {
	entry, err := s.ledger.RecordExpense(ctx, ledger.ExpenseInput{
		GroupID: req.Msg.GroupID,
		PaidBy:  req.Msg.PaidBy,
		Amount:  req.Msg.Amount,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&RecordExpenseResponse{
		Message: "Expense recorded successfully.",
		Entry:   toEntry(entry),
	}), nil
}

// RecordPayment records a payment from one member to another.
func (s *LedgerService) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	entry, err := s.ledger.RecordPayment(ctx, ledger.PaymentInput{
		GroupID:    req.Msg.GroupID,
		FromMember: req.Msg.FromMember,
		ToMember:   req.Msg.ToMember,
		Amount:     req.Msg.Amount,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&RecordPaymentResponse{
		Message: "Payment recorded successfully.",
		Entry:   toEntry(entry),
	}), nil
}

// ListEntries returns a group's ledger in insertion order.
func (s *LedgerService) ListEntries(ctx context.Context, req *connect.Request[ListEntriesRequest]) (*connect.Response[ListEntriesResponse], error) {
	entries, err := s.ledger.ListEntries(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]Entry, len(entries))
	for i := range entries {
		out[i] = toEntry(&entries[i])
	}
	return connect.NewResponse(&ListEntriesResponse{Entries: out}), nil
}
