package service

import (
	"context"

	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IdentityServiceInterface defines the identity service contract
type IdentityServiceInterface interface {
	Login(ctx context.Context, principal store.Principal) (*Session, error)
	Resolve(ctx context.Context, principal store.Principal) (*Session, error)
}

// TeamServiceInterface defines the team service contract
type TeamServiceInterface interface {
	Exists(ctx context.Context, sess *Session, name string) (bool, error)
	Create(ctx context.Context, sess *Session, req *CreateTeamRequest) (*models.Team, error)
	ResolvePartition(teamID string) string
	Get(ctx context.Context, sess *Session, teamID string) (*models.Team, error)
	List(ctx context.Context, sess *Session) ([]models.Team, error)
	Members(ctx context.Context, sess *Session, teamID string) ([]models.Person, error)
	AddMember(ctx context.Context, sess *Session, teamID, personID string) error
	RemoveMember(ctx context.Context, sess *Session, teamID, personID string) error
	Stats(ctx context.Context, sess *Session, teamID string) (*TeamStats, error)
	Delete(ctx context.Context, sess *Session, teamID string) error
}

// TaskServiceInterface defines the task service contract
type TaskServiceInterface interface {
	Create(ctx context.Context, sess *Session, req *CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, sess *Session, taskID string) (*models.Task, error)
	ListMaster(ctx context.Context, sess *Session) ([]models.Task, error)
	ListForTeam(ctx context.Context, sess *Session, teamID string) ([]models.Task, error)
	AssignTeam(ctx context.Context, sess *Session, taskID string, newTeamID *string) error
	RemoveFromTeam(ctx context.Context, sess *Session, taskID string) error
	Update(ctx context.Context, sess *Session, taskID string, req *UpdateTaskRequest) (*models.Task, error)
	Complete(ctx context.Context, sess *Session, taskID string, teamID *string) error
	Delete(ctx context.Context, sess *Session, taskID string) error
	History(ctx context.Context, sess *Session, taskID string) ([]models.TaskHistory, error)
}

// PresenceServiceInterface defines the presence service contract
type PresenceServiceInterface interface {
	Track(principal store.Principal)
	Untrack(identity string)
	UpdateWith(ctx context.Context, sess *Session, lat, lon float64) error
}

// PreferenceServiceInterface defines the preference service contract
type PreferenceServiceInterface interface {
	SelectedTeam(ctx context.Context, sess *Session) (string, error)
	SetSelectedTeam(ctx context.Context, sess *Session, teamID string) error
}
