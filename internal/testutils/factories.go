package testutils

import (
	"teamwork-backend/internal/database/models"

	"github.com/google/uuid"
)

// NewTestPerson creates a person record for tests. The identity doubles as
// the primary key.
func NewTestPerson(identity string, role models.Role) *models.Person {
	p := &models.Person{
		ID:        identity,
		FirstName: "Test",
		LastName:  "Person",
	}
	p.SetRole(role)
	return p
}

// NewTestTeam creates a team record for tests with an allocated id. The
// Partition field is left for the caller, since it depends on the store's
// naming.
func NewTestTeam(name string) *models.Team {
	return &models.Team{
		ID:          uuid.NewString(),
		Name:        name,
		Description: "a test team",
		BgColor:     "0000CC",
	}
}

// NewTestTask creates a task for tests. Partition is set on insert by the
// repository.
func NewTestTask(title string) *models.Task {
	return &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "a test task",
	}
}

// StrPtr returns a pointer to the given string.
func StrPtr(s string) *string {
	return &s
}
