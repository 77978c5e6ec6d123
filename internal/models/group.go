package models

// Member is a person belonging to a group.
type Member struct {
	// ID is unique within the member's group.
	ID int64

	// Name is the display name of the member.
	Name string
}

// Group represents a fixed list of members who share expenses.
// Groups are created from seed data at startup and are immutable afterwards.
type Group struct {
	// ID is the unique identifier for the group.
	ID int64

	// Name is the display name of the group (e.g., "Group 1").
	Name string

	// Members is the ordered member list. The order determines balance
	// report order and which members receive leftover cents of a split.
	Members []Member
}

// Member returns the member with the given id and whether it was found.
func (g *Group) Member(id int64) (Member, bool) {
	for _, m := range g.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// HasMember reports whether id belongs to the group.
func (g *Group) HasMember(id int64) bool {
	_, ok := g.Member(id)
	return ok
}

// Clone returns a deep copy so callers cannot mutate store-owned data.
func (g *Group) Clone() Group {
	members := make([]Member, len(g.Members))
	copy(members, g.Members)
	return Group{ID: g.ID, Name: g.Name, Members: members}
}
