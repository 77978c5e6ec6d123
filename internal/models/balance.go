package models

import "github.com/shopspring/decimal"

// MemberBalance is one member's net position in a group.
type MemberBalance struct {
	MemberID   int64
	MemberName string

	// Balance is TotalShare - TotalPaid.
	// Negative = owed money, positive = owes money.
	Balance decimal.Decimal

	// TotalPaid is the sum of entry amounts this member paid.
	TotalPaid decimal.Decimal

	// TotalShare is the sum of split shares allocated to this member.
	TotalShare decimal.Decimal
}
