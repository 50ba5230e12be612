package models

import "fmt"

// Role is what a Person is allowed to do. It is persisted as an integer code
// (see Person.RoleCode); business logic only ever sees the typed value.
type Role int

const (
	RoleAdmin Role = iota
	RoleManager
	RoleWorker
)

// roleNames maps role codes to their wire/JSON names.
var roleNames = map[Role]string{
	RoleAdmin:   "admin",
	RoleManager: "manager",
	RoleWorker:  "worker",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Valid reports whether the role code is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole converts a wire name back to a Role. Unknown names come back as
// RoleWorker, the default for new records.
func ParseRole(name string) Role {
	for r, n := range roleNames {
		if n == name {
			return r
		}
	}
	return RoleWorker
}

// GrantLevel is the access level carried by a partition grant.
type GrantLevel int

const (
	GrantNone GrantLevel = iota
	GrantRead
	GrantWrite
)

func (l GrantLevel) String() string {
	switch l {
	case GrantNone:
		return "none"
	case GrantRead:
		return "read"
	case GrantWrite:
		return "write"
	}
	return fmt.Sprintf("grantlevel(%d)", int(l))
}

// LookupStatusUnresolved is the initial reverse-geocode status of a Location
// before any lookup has been attempted.
const LookupStatusUnresolved = -1
