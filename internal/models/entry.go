package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind tags a ledger entry for reporting. Both kinds are settled with
// the same arithmetic.
type EntryKind string

const (
	// KindExpense means the payer covered an amount on behalf of the group.
	KindExpense EntryKind = "expense"

	// KindPayment means the payer transferred an amount toward their debt.
	KindPayment EntryKind = "payment"
)

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	return k == KindExpense || k == KindPayment
}

// Entry is an immutable ledger record.
type Entry struct {
	// ID is assigned by the ledger store on append and increases monotonically.
	ID int64

	// GroupID is the group this entry belongs to.
	GroupID int64

	// Kind is either KindExpense or KindPayment.
	Kind EntryKind

	// PaidBy is the member who paid.
	PaidBy int64

	// ToMember is the intended receiver of a payment. Zero for expenses.
	// It is kept for reporting only and does not affect balances.
	ToMember int64

	// Amount is the positive amount paid, with at most two fractional digits.
	Amount decimal.Decimal

	// CreatedAt is set by the ledger store when left zero.
	CreatedAt time.Time
}
