package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// centExp is the exponent of the smallest currency unit (0.01).
const centExp = -2

// SplitEvenly divides amount into n shares that sum exactly to amount.
//
// The amount is rounded to cents first. Every share gets amount/n truncated
// to cents, and the leftover cents (at most n-1) go one each to the first
// shares, so share[i] >= share[j] for i < j and no share differs from
// another by more than one cent.
//
// Example: SplitEvenly(100, 3) -> [33.34, 33.33, 33.33]
func SplitEvenly(amount decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n <= 0 {
		return nil, fmt.Errorf("must have at least one share, got %d", n)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}

	amount = amount.Round(-centExp)
	count := decimal.NewFromInt(int64(n))

	// rem < n cents, so leftover fits in an int.
	base, rem := amount.QuoRem(count, -centExp)
	leftover := rem.Shift(-centExp).IntPart()

	cent := decimal.New(1, centExp)
	shares := make([]decimal.Decimal, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < leftover {
			shares[i] = base.Add(cent)
		}
	}
	return shares, nil
}
