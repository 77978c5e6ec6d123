package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		n       int
		want    []string
		wantErr bool
	}{
		{
			name:   "divides evenly",
			amount: "90",
			n:      3,
			want:   []string{"30", "30", "30"},
		},
		{
			name:   "leftover cents go to the first shares",
			amount: "100",
			n:      3,
			want:   []string{"33.34", "33.33", "33.33"},
		},
		{
			name:   "two leftover cents",
			amount: "0.05",
			n:      3,
			want:   []string{"0.02", "0.02", "0.01"},
		},
		{
			name:   "fewer cents than shares",
			amount: "0.01",
			n:      3,
			want:   []string{"0.01", "0", "0"},
		},
		{
			name:   "single member gets everything",
			amount: "12.34",
			n:      1,
			want:   []string{"12.34"},
		},
		{
			name:   "amount is rounded to cents first",
			amount: "10.005",
			n:      2,
			want:   []string{"5.01", "5"},
		},
		{
			name:   "amount beyond int64 cents",
			amount: "100000000000000000000",
			n:      3,
			want:   []string{"33333333333333333333.34", "33333333333333333333.33", "33333333333333333333.33"},
		},
		{
			name:    "zero shares should error",
			amount:  "10",
			n:       0,
			wantErr: true,
		},
		{
			name:    "zero amount should error",
			amount:  "0",
			n:       2,
			wantErr: true,
		},
		{
			name:    "negative amount should error",
			amount:  "-5",
			n:       2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := SplitEvenly(decimal.RequireFromString(tt.amount), tt.n)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, shares, len(tt.want))

			sum := decimal.Zero
			for i, share := range shares {
				assertDecimal(t, tt.want[i], share)
				sum = sum.Add(share)
			}
			assertDecimal(t, decimal.RequireFromString(tt.amount).Round(2).String(), sum)
		})
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "got %s, want %s", got, want)
}
