// Package seed provides the startup group definitions.
//
// Groups are not created at runtime. They come either from the built-in
// defaults or from a JSON file:
//
//	{
//	  "groups": [
//	    {"id": 1, "name": "Group 1", "members": [{"id": 1, "name": "Aliya"}]}
//	  ]
//	}
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mmynk/groupledger/internal/models"
)

// Default returns the built-in groups.
func Default() []models.Group {
	return []models.Group{
		{
			ID:   1,
			Name: "Group 1",
			Members: []models.Member{
				{ID: 1, Name: "Aliya"},
				{ID: 2, Name: "Buhan"},
				{ID: 3, Name: "Cheeti"},
			},
		},
		{
			ID:   2,
			Name: "Group 2",
			Members: []models.Member{
				{ID: 4, Name: "Divesh"},
				{ID: 5, Name: "Ajay"},
				{ID: 6, Name: "Ram"},
			},
		},
		{
			ID:   3,
			Name: "Group 3",
			Members: []models.Member{
				{ID: 7, Name: "Harh"},
				{ID: 8, Name: "Karan"},
				{ID: 9, Name: "Raj"},
			},
		},
	}
}

type fileMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type fileGroup struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Members []fileMember `json:"members"`
}

type file struct {
	Groups []fileGroup `json:"groups"`
}

// Load reads groups from a JSON seed file and validates them.
func Load(path string) ([]models.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed JSON.
func Parse(data []byte) ([]models.Group, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	groups := make([]models.Group, len(f.Groups))
	for i, fg := range f.Groups {
		members := make([]models.Member, len(fg.Members))
		for j, fm := range fg.Members {
			members[j] = models.Member{ID: fm.ID, Name: fm.Name}
		}
		groups[i] = models.Group{ID: fg.ID, Name: fg.Name, Members: members}
	}

	if err := Validate(groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Validate checks id uniqueness rules. All problems are reported at once.
func Validate(groups []models.Group) error {
	var errs []error
	groupIDs := make(map[int64]bool, len(groups))
	memberGroup := make(map[int64]int64)

	for _, g := range groups {
		if g.ID <= 0 {
			errs = append(errs, fmt.Errorf("group %q: id must be positive, got %d", g.Name, g.ID))
		}
		if groupIDs[g.ID] {
			errs = append(errs, fmt.Errorf("duplicate group id %d", g.ID))
		}
		groupIDs[g.ID] = true

		for _, m := range g.Members {
			if m.ID <= 0 {
				errs = append(errs, fmt.Errorf("group %d: member %q: id must be positive, got %d", g.ID, m.Name, m.ID))
				continue
			}
			if owner, seen := memberGroup[m.ID]; seen {
				if owner == g.ID {
					errs = append(errs, fmt.Errorf("group %d: duplicate member id %d", g.ID, m.ID))
				} else {
					errs = append(errs, fmt.Errorf("member id %d belongs to groups %d and %d", m.ID, owner, g.ID))
				}
				continue
			}
			memberGroup[m.ID] = g.ID
		}
	}

	return errors.Join(errs...)
}
