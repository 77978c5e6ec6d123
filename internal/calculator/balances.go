package calculator

import (
	"errors"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupledger/internal/models"
)

// ErrNoMembers is returned by Settle for a group without members. Settlement
// is undefined for such a group; it is not reported as an all-zero result.
var ErrNoMembers = errors.New("group has no members")

// Settlement is the result of settling a group's ledger.
type Settlement struct {
	// Balances holds one entry per member, in the group's member order.
	Balances []models.MemberBalance

	// Applied is the number of entries folded into the balances.
	Applied int

	// Skipped counts entries that could not be applied because they belong
	// to another group or their payer is not a member.
	Skipped int
}

// Total returns the sum of all balances. It is zero for every settlement
// produced by Settle.
func (s *Settlement) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.Balances {
		total = total.Add(b.Balance)
	}
	return total
}

// Settle computes every member's net balance from the group's ledger entries.
//
// Algorithm:
//   - Each entry's amount is split evenly across all members (SplitEvenly)
//   - The payer's balance decreases by the full amount
//   - Every member's balance, the payer's included, increases by their share
//   - Expenses and payments are treated identically
//
// The result does not depend on entry order: each entry's contribution is
// a function of the entry and the member list only.
func Settle(group models.Group, entries iter.Seq[models.Entry]) (*Settlement, error) {
	if len(group.Members) == 0 {
		return nil, ErrNoMembers
	}

	n := len(group.Members)
	balances := make([]models.MemberBalance, n)
	index := make(map[int64]int, n)
	for i, m := range group.Members {
		balances[i] = models.MemberBalance{
			MemberID:   m.ID,
			MemberName: m.Name,
			Balance:    decimal.Zero,
			TotalPaid:  decimal.Zero,
			TotalShare: decimal.Zero,
		}
		index[m.ID] = i
	}

	result := &Settlement{}
	if entries == nil {
		result.Balances = balances
		return result, nil
	}

	for e := range entries {
		payer, ok := index[e.PaidBy]
		if e.GroupID != group.ID || !ok {
			result.Skipped++
			continue
		}

		shares, err := SplitEvenly(e.Amount, n)
		if err != nil {
			return nil, fmt.Errorf("failed to split entry %d: %w", e.ID, err)
		}

		// Shares were computed from the rounded amount; debit the same value.
		paid := e.Amount.Round(-centExp)
		balances[payer].TotalPaid = balances[payer].TotalPaid.Add(paid)
		balances[payer].Balance = balances[payer].Balance.Sub(paid)
		for i, share := range shares {
			balances[i].TotalShare = balances[i].TotalShare.Add(share)
			balances[i].Balance = balances[i].Balance.Add(share)
		}
		result.Applied++
	}

	result.Balances = balances
	return result, nil
}
