package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

func testGroups() []models.Group {
	return []models.Group{
		{ID: 2, Name: "Group 2", Members: []models.Member{{ID: 4, Name: "Divesh"}}},
		{ID: 1, Name: "Group 1", Members: []models.Member{{ID: 1, Name: "Aliya"}, {ID: 2, Name: "Buhan"}}},
		{ID: 3, Name: "Empty"},
	}
}

func TestGroupStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewGroupStore(testGroups())
	require.NoError(t, err)

	t.Run("GetGroup finds by exact id", func(t *testing.T) {
		g, err := store.GetGroup(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Group 1", g.Name)
		assert.Len(t, g.Members, 2)
	})

	t.Run("GetGroup missing id", func(t *testing.T) {
		_, err := store.GetGroup(ctx, 42)
		assert.ErrorIs(t, err, storage.ErrGroupNotFound)
	})

	t.Run("GetMembers keeps member order", func(t *testing.T) {
		members, err := store.GetMembers(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []models.Member{{ID: 1, Name: "Aliya"}, {ID: 2, Name: "Buhan"}}, members)
	})

	t.Run("GetMembers of an empty group", func(t *testing.T) {
		members, err := store.GetMembers(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("GetMembers missing id", func(t *testing.T) {
		_, err := store.GetMembers(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrGroupNotFound)
	})

	t.Run("ListGroups ordered by id", func(t *testing.T) {
		groups, err := store.ListGroups(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 3)
		assert.Equal(t, int64(1), groups[0].ID)
		assert.Equal(t, int64(2), groups[1].ID)
		assert.Equal(t, int64(3), groups[2].ID)
	})

	t.Run("returned groups are copies", func(t *testing.T) {
		g, err := store.GetGroup(ctx, 1)
		require.NoError(t, err)
		g.Members[0].Name = "Mallory"

		again, err := store.GetGroup(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Aliya", again.Members[0].Name)
	})
}

func TestNewGroupStore_DuplicateID(t *testing.T) {
	_, err := NewGroupStore([]models.Group{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	assert.Error(t, err)
}
