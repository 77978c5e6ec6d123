package calculator

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
)

var groupOne = models.Group{
	ID:   1,
	Name: "Group 1",
	Members: []models.Member{
		{ID: 1, Name: "Aliya"},
		{ID: 2, Name: "Buhan"},
		{ID: 3, Name: "Cheeti"},
	},
}

func expense(groupID, paidBy int64, amount string) models.Entry {
	return models.Entry{
		GroupID: groupID,
		Kind:    models.KindExpense,
		PaidBy:  paidBy,
		Amount:  decimal.RequireFromString(amount),
	}
}

func balanceOf(t *testing.T, s *Settlement, memberID int64) decimal.Decimal {
	t.Helper()
	for _, b := range s.Balances {
		if b.MemberID == memberID {
			return b.Balance
		}
	}
	t.Fatalf("member %d missing from settlement", memberID)
	return decimal.Zero
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.Entry
		want    map[int64]string
		skipped int
	}{
		{
			name:    "no entries",
			entries: nil,
			want:    map[int64]string{1: "0", 2: "0", 3: "0"},
		},
		{
			name:    "single expense",
			entries: []models.Entry{expense(1, 1, "90")},
			want:    map[int64]string{1: "-60", 2: "30", 3: "30"},
		},
		{
			name: "second expense accumulates",
			entries: []models.Entry{
				expense(1, 1, "90"),
				expense(1, 2, "30"),
			},
			want: map[int64]string{1: "-50", 2: "10", 3: "40"},
		},
		{
			name: "payment uses the same arithmetic as an expense",
			entries: []models.Entry{
				expense(1, 1, "90"),
				{GroupID: 1, Kind: models.KindPayment, PaidBy: 2, ToMember: 1, Amount: decimal.RequireFromString("30")},
			},
			want: map[int64]string{1: "-50", 2: "10", 3: "40"},
		},
		{
			name:    "uneven split keeps the sum at zero",
			entries: []models.Entry{expense(1, 3, "100")},
			want:    map[int64]string{1: "33.34", 2: "33.33", 3: "-66.67"},
		},
		{
			name: "entries of other groups are skipped",
			entries: []models.Entry{
				expense(1, 1, "90"),
				expense(2, 4, "50"),
			},
			want:    map[int64]string{1: "-60", 2: "30", 3: "30"},
			skipped: 1,
		},
		{
			name: "payer outside the group is skipped",
			entries: []models.Entry{
				expense(1, 9, "50"),
			},
			want:    map[int64]string{1: "0", 2: "0", 3: "0"},
			skipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Settle(groupOne, slices.Values(tt.entries))
			require.NoError(t, err)
			require.Len(t, s.Balances, len(groupOne.Members))

			for id, want := range tt.want {
				assertDecimal(t, want, balanceOf(t, s, id))
			}
			assert.Equal(t, tt.skipped, s.Skipped)
			assert.Equal(t, len(tt.entries)-tt.skipped, s.Applied)
			assert.True(t, s.Total().IsZero(), "balances sum to %s", s.Total())
		})
	}
}

func TestSettle_MemberOrder(t *testing.T) {
	s, err := Settle(groupOne, slices.Values([]models.Entry{expense(1, 3, "9")}))
	require.NoError(t, err)

	var names []string
	for _, b := range s.Balances {
		names = append(names, b.MemberName)
	}
	assert.Equal(t, []string{"Aliya", "Buhan", "Cheeti"}, names)
}

func TestSettle_Totals(t *testing.T) {
	s, err := Settle(groupOne, slices.Values([]models.Entry{
		expense(1, 1, "90"),
		expense(1, 2, "30"),
	}))
	require.NoError(t, err)

	aliya := s.Balances[0]
	assertDecimal(t, "90", aliya.TotalPaid)
	assertDecimal(t, "40", aliya.TotalShare)
	assertDecimal(t, "-50", aliya.Balance)
}

func TestSettle_NoMembers(t *testing.T) {
	empty := models.Group{ID: 4, Name: "Empty"}

	s, err := Settle(empty, slices.Values([]models.Entry{expense(4, 1, "10")}))
	assert.ErrorIs(t, err, ErrNoMembers)
	assert.Nil(t, s)
}

func TestSettle_OrderIndependent(t *testing.T) {
	entries := []models.Entry{
		expense(1, 1, "90"),
		expense(1, 2, "30"),
		expense(1, 3, "100"),
		expense(1, 1, "0.05"),
		expense(1, 2, "17.17"),
		{GroupID: 1, Kind: models.KindPayment, PaidBy: 3, ToMember: 1, Amount: decimal.RequireFromString("12.5")},
	}

	want, err := Settle(groupOne, slices.Values(entries))
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		shuffled := slices.Clone(entries)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got, err := Settle(groupOne, slices.Values(shuffled))
		require.NoError(t, err)
		for j := range want.Balances {
			assert.Truef(t, want.Balances[j].Balance.Equal(got.Balances[j].Balance),
				"permutation %d: member %d got %s, want %s",
				i, want.Balances[j].MemberID, got.Balances[j].Balance, want.Balances[j].Balance)
		}
		assert.True(t, got.Total().IsZero())
	}
}

func TestSettle_RestartableSequence(t *testing.T) {
	entries := []models.Entry{expense(1, 1, "90")}
	seq := slices.Values(entries)

	first, err := Settle(groupOne, seq)
	require.NoError(t, err)
	second, err := Settle(groupOne, seq)
	require.NoError(t, err)

	assert.True(t, first.Balances[0].Balance.Equal(second.Balances[0].Balance))
}
