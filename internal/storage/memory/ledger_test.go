package memory

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
)

func TestLedgerStore(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()
	defer store.Close()

	first := &models.Entry{GroupID: 1, Kind: models.KindExpense, PaidBy: 1, Amount: decimal.NewFromInt(90)}
	id1, err := store.Append(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)
	assert.Equal(t, id1, first.ID)
	assert.False(t, first.CreatedAt.IsZero(), "expected CreatedAt to be set")

	_, err = store.Append(ctx, &models.Entry{GroupID: 2, Kind: models.KindExpense, PaidBy: 4, Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)

	id3, err := store.Append(ctx, &models.Entry{GroupID: 1, Kind: models.KindPayment, PaidBy: 2, ToMember: 1, Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)
	assert.Greater(t, id3, id1)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	seq, err := store.EntriesForGroup(ctx, 1)
	require.NoError(t, err)
	entries := slices.Collect(seq)
	require.Len(t, entries, 2)
	assert.Equal(t, id1, entries[0].ID)
	assert.Equal(t, id3, entries[1].ID)
	assert.Equal(t, models.KindPayment, entries[1].Kind)

	// The snapshot is restartable and unaffected by later appends.
	_, err = store.Append(ctx, &models.Entry{GroupID: 1, Kind: models.KindExpense, PaidBy: 3, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Len(t, slices.Collect(seq), 2)

	seq, err = store.EntriesForGroup(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestLedgerStore_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewLedgerStore()

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := store.Append(ctx, &models.Entry{
					GroupID: int64(w%2 + 1),
					Kind:    models.KindExpense,
					PaidBy:  1,
					Amount:  decimal.NewFromInt(1),
				})
				assert.NoError(t, err)
				if _, err := store.EntriesForGroup(ctx, 1); err != nil {
					t.Error(err)
				}
			}
		}(w)
	}
	wg.Wait()

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, writers*perWriter, n)

	var ids []int64
	for _, g := range []int64{1, 2} {
		seq, err := store.EntriesForGroup(ctx, g)
		require.NoError(t, err)
		for e := range seq {
			ids = append(ids, e.ID)
		}
	}
	slices.Sort(ids)
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id, "ids must be unique and gapless")
	}
}
