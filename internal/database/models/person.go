package models

import (
	"time"
)

// Person binds a sync principal's identity to a richer profile record. The
// primary key is the authenticated identity itself, so a principal maps to
// exactly one Person. Created on first successful login; never hard-deleted
// in normal operation.
type Person struct {
	ID         string     `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	FirstName  string     `json:"first_name" gorm:"size:100"`
	LastName   string     `json:"last_name" gorm:"size:100"`
	Avatar     []byte     `json:"-" gorm:"type:bytea"` // PNG bytes, handled by the client
	RoleCode   int        `json:"-" gorm:"not null;default:2"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`

	// LastLocationID points at the Location record used for presence on the
	// map. String id, not an association: locations live in the common
	// partition and are resolved explicitly.
	LastLocationID *string `json:"last_location_id,omitempty" gorm:"size:64"`
}

// TableName returns the table name for Person
func (Person) TableName() string {
	return "people"
}

// Role returns the typed role for this person.
func (p *Person) Role() Role {
	return Role(p.RoleCode)
}

// SetRole stores the integer code for the given role.
func (p *Person) SetRole(r Role) {
	p.RoleCode = int(r)
}

// IsAdmin reports whether this person may perform admin operations.
// Managers count: the original design treats the two interchangeably for
// team and task administration.
func (p *Person) IsAdmin() bool {
	return p.Role() == RoleAdmin || p.Role() == RoleManager
}

// FullName returns the display name for lists and the map.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// TeamMembership is the one-directional Person -> Team edge. A person's set
// of edges is the authoritative membership record; Team carries no forward
// member list, so the two can never disagree.
type TeamMembership struct {
	PersonID  string    `json:"person_id" gorm:"primaryKey;size:64"`
	TeamID    string    `json:"team_id" gorm:"primaryKey;size:64;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
