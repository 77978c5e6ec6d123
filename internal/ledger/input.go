package ledger

import (
	"github.com/shopspring/decimal"
)

// ExpenseInput is a request to record an expense. Nil fields are absent.
type ExpenseInput struct {
	GroupID *int64
	PaidBy  *int64
	Amount  *decimal.Decimal
}

// PaymentInput is a request to record a payment. Nil fields are absent.
type PaymentInput struct {
	GroupID    *int64
	FromMember *int64
	ToMember   *int64
	Amount     *decimal.Decimal
}

// amountPlaces is the precision amounts are stored with.
const amountPlaces = 2

// MaxAmount is the largest amount a single entry may carry.
var MaxAmount = decimal.New(1, 12)

// Bounds on the decimal representation, checked before any arithmetic so a
// short input like "1e50000000" is rejected without being expanded.
const (
	maxAmountExponent = 12
	minAmountExponent = -20
	maxAmountDigits   = 34
)

// presentID reports whether an id field was supplied. Ids are positive, so a
// zero id counts as absent.
func presentID(id *int64) bool {
	return id != nil && *id != 0
}

// validateAmount rounds a present amount to cents and checks it is positive
// and at most MaxAmount.
func validateAmount(amount *decimal.Decimal) (decimal.Decimal, error) {
	exp := amount.Exponent()
	if exp > maxAmountExponent || exp < minAmountExponent || amount.NumDigits() > maxAmountDigits {
		return decimal.Zero, invalidField("amount", "is out of range")
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, invalidField("amount", "must not exceed "+MaxAmount.String())
	}
	rounded := amount.Round(amountPlaces)
	if !rounded.IsPositive() {
		return decimal.Zero, invalidField("amount", "must be a positive number of at least 0.01")
	}
	return rounded, nil
}

// check returns the normalized amount or the first validation failure.
// Missing fields are reported together, ahead of value checks.
func (in ExpenseInput) check() (decimal.Decimal, error) {
	var missing []string
	if !presentID(in.GroupID) {
		missing = append(missing, "group_id")
	}
	if !presentID(in.PaidBy) {
		missing = append(missing, "paid_by")
	}
	if in.Amount == nil {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return decimal.Zero, missingFields(missing...)
	}
	return validateAmount(in.Amount)
}

func (in PaymentInput) check() (decimal.Decimal, error) {
	var missing []string
	if !presentID(in.FromMember) {
		missing = append(missing, "from_member")
	}
	if !presentID(in.ToMember) {
		missing = append(missing, "to_member")
	}
	if in.Amount == nil {
		missing = append(missing, "amount")
	}
	if !presentID(in.GroupID) {
		missing = append(missing, "group_id")
	}
	if len(missing) > 0 {
		return decimal.Zero, missingFields(missing...)
	}
	if *in.FromMember == *in.ToMember {
		return decimal.Zero, invalidField("to_member", "must differ from from_member")
	}
	return validateAmount(in.Amount)
}
