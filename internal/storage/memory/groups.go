// Package memory provides in-memory implementations of the storage interfaces.
package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

// Ensure GroupStore implements storage.GroupStore
var _ storage.GroupStore = (*GroupStore)(nil)

// GroupStore serves a fixed set of groups. It is read-only after
// construction and needs no locking.
type GroupStore struct {
	byID map[int64]models.Group
	ids  []int64
}

// NewGroupStore copies groups into a new store.
// Returns an error if two groups share an ID.
func NewGroupStore(groups []models.Group) (*GroupStore, error) {
	s := &GroupStore{byID: make(map[int64]models.Group, len(groups))}
	for i := range groups {
		g := groups[i].Clone()
		if _, exists := s.byID[g.ID]; exists {
			return nil, fmt.Errorf("duplicate group id %d", g.ID)
		}
		s.byID[g.ID] = g
		s.ids = append(s.ids, g.ID)
	}
	slices.Sort(s.ids)
	return s, nil
}

// GetGroup returns a copy of the group with the given ID.
func (s *GroupStore) GetGroup(_ context.Context, groupID int64) (*models.Group, error) {
	g, ok := s.byID[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", storage.ErrGroupNotFound, groupID)
	}
	clone := g.Clone()
	return &clone, nil
}

// GetMembers returns a copy of the group's member list.
func (s *GroupStore) GetMembers(ctx context.Context, groupID int64) ([]models.Member, error) {
	g, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return g.Members, nil
}

// ListGroups returns copies of all groups ordered by ID.
func (s *GroupStore) ListGroups(_ context.Context) ([]models.Group, error) {
	groups := make([]models.Group, 0, len(s.ids))
	for _, id := range s.ids {
		g := s.byID[id]
		groups = append(groups, g.Clone())
	}
	return groups, nil
}
