package service

import (
	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"
)

// Session carries the resolved principal, its Person record and the open
// common partition handle through an operation. It replaces the process-wide
// default-partition state of the original client: every operation receives
// its session explicitly.
type Session struct {
	Principal store.Principal
	Person    *models.Person
	Common    *store.Handle
}

// IsAdmin reports whether the session's person holds the Admin role.
func (s *Session) IsAdmin() bool {
	return s.Person != nil && s.Person.Role() == models.RoleAdmin
}

// IsManager reports whether the session's person holds the Manager role.
func (s *Session) IsManager() bool {
	return s.Person != nil && s.Person.Role() == models.RoleManager
}

// CanAdminister reports whether the session may create teams, assign tasks
// and manage membership. Admin and Manager are interchangeable for these
// operations.
func (s *Session) CanAdminister() bool {
	return s.IsAdmin() || s.IsManager()
}
