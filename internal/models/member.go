package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is one person in an expense-sharing group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Name is the member's display name. Display attributes are opaque to
	// the engines; only ID is used for aggregation.
	Name string `json:"name"`
}

// Group is a named set of members who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g. "Roommates", "Lagos Trip").
	Name string `json:"name"`

	// Members is every member of the group, in join order. Balance ranking
	// uses this order to break ties, so it must be stable across reads.
	Members []Member `json:"members"`

	// CreatedAt is when the group was created.
	CreatedAt time.Time `json:"createdAt"`
}

// NewGroup creates a group with a generated ID and creation timestamp.
func NewGroup(name string, members []Member) *Group {
	return &Group{
		ID:        uuid.NewString(),
		Name:      name,
		Members:   members,
		CreatedAt: time.Now().UTC(),
	}
}

// MemberName resolves a member ID to its display name, falling back to the
// ID itself for members no longer in the group.
func (g *Group) MemberName(id string) string {
	for _, m := range g.Members {
		if m.ID == id {
			return m.Name
		}
	}
	return id
}
