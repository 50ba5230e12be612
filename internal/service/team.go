package service

import (
	"context"
	"errors"
	"fmt"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService is the team partition registry: it creates teams with their
// dedicated task partitions, resolves partition handles from team ids, and
// manages membership edges with the matching permission grants.
type TeamService struct {
	store     *store.Store
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(st *store.Store, validator *validator.Validate, log *logger.Logger) *TeamService {
	return &TeamService{store: st, validator: validator, log: log}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=200"`
	BgColor     string `json:"bgcolor" validate:"omitempty,hexadecimal,len=6"`
}

// TeamStats summarizes one team partition's task load.
type TeamStats struct {
	TotalTasks   int64 `json:"total_tasks"`
	PendingTasks int64 `json:"pending_tasks"`
}

// Exists reports whether a team with this display name already exists,
// matching case-insensitively. Restricted to Admin/Manager callers.
func (s *TeamService) Exists(ctx context.Context, sess *Session, name string) (bool, error) {
	if !sess.CanAdminister() {
		return false, &apperrors.NotPermittedError{Operation: "check team names"}
	}
	return repository.NewTeamRepository(sess.Common).NameExists(ctx, name)
}

// Create allocates a team id, derives and opens the team's dedicated task
// partition, and persists the Team record in the common partition. Worker
// callers are rejected. Duplicate display names are rejected, but the check
// and the insert are not serialized: two concurrent creations with the same
// name can both pass the check. That race is a known, accepted gap in the
// design, deliberately not closed with a lock here.
func (s *TeamService) Create(ctx context.Context, sess *Session, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !sess.CanAdminister() {
		return nil, &apperrors.NotPermittedError{Operation: "create team"}
	}

	teams := repository.NewTeamRepository(sess.Common)
	exists, err := teams.NameExists(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: &sess.Person.ID,
	}
	if req.BgColor != "" {
		team.BgColor = req.BgColor
	}
	// Allocate the id up front: the partition handle derives from it.
	if err := team.BeforeCreate(nil); err != nil {
		return nil, err
	}
	team.Partition = s.ResolvePartition(team.ID)

	// Opening creates the partition, scoped to the Task entity type. A team
	// without a reachable partition is useless, so this is an essential step.
	if _, err := s.store.Open(ctx, team.Partition, sess.Principal); err != nil {
		return nil, err
	}

	if err := teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"team":      team.ID,
		"partition": team.Partition,
	}).Info("team created")
	return team, nil
}

// ResolvePartition derives a team's task partition handle from its id alone.
// No lookup of the Team record is needed, so the partition is reachable even
// before the record itself has replicated.
func (s *TeamService) ResolvePartition(teamID string) string {
	return s.store.Naming().TeamTasks(teamID)
}

// Get retrieves a team by id.
func (s *TeamService) Get(ctx context.Context, sess *Session, teamID string) (*models.Team, error) {
	team, err := repository.NewTeamRepository(sess.Common).GetByID(ctx, teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

// List retrieves all teams.
func (s *TeamService) List(ctx context.Context, sess *Session) ([]models.Team, error) {
	return repository.NewTeamRepository(sess.Common).List(ctx)
}

// Members finds all people whose membership set contains the team.
func (s *TeamService) Members(ctx context.Context, sess *Session, teamID string) ([]models.Person, error) {
	if _, err := s.Get(ctx, sess, teamID); err != nil {
		return nil, err
	}
	return repository.NewPersonRepository(sess.Common).ListByTeam(ctx, teamID)
}

// AddMember records the person -> team membership edge and grants the
// member write access to the team's task partition. The grant is issued
// best-effort: when this session's credentials cannot issue grants, the
// change is logged and left for a server administrator's next login.
func (s *TeamService) AddMember(ctx context.Context, sess *Session, teamID, personID string) error {
	if !sess.CanAdminister() {
		return &apperrors.NotPermittedError{Operation: "manage team membership"}
	}
	team, err := s.Get(ctx, sess, teamID)
	if err != nil {
		return err
	}

	people := repository.NewPersonRepository(sess.Common)
	if _, err := people.GetByID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonNotFound
		}
		return err
	}

	member, err := people.IsMember(ctx, personID, teamID)
	if err != nil {
		return err
	}
	if member {
		return apperrors.ErrMemberAlreadyInTeam
	}

	if err := people.AddTeam(ctx, personID, teamID); err != nil {
		return err
	}

	if err := s.store.GrantAccess(ctx, sess.Principal, team.Partition, personID, models.GrantWrite); err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"team":   teamID,
			"person": personID,
		}).Warn("membership recorded but partition grant failed")
	}
	return nil
}

// RemoveMember deletes the membership edge and revokes the member's access
// to the team's task partition.
func (s *TeamService) RemoveMember(ctx context.Context, sess *Session, teamID, personID string) error {
	if !sess.CanAdminister() {
		return &apperrors.NotPermittedError{Operation: "manage team membership"}
	}
	team, err := s.Get(ctx, sess, teamID)
	if err != nil {
		return err
	}

	people := repository.NewPersonRepository(sess.Common)
	member, err := people.IsMember(ctx, personID, teamID)
	if err != nil {
		return err
	}
	if !member {
		return apperrors.ErrMemberNotInTeam
	}

	if err := people.RemoveTeam(ctx, personID, teamID); err != nil {
		return err
	}

	if err := s.store.GrantAccess(ctx, sess.Principal, team.Partition, personID, models.GrantNone); err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"team":   teamID,
			"person": personID,
		}).Warn("membership removed but partition revoke failed")
	}
	return nil
}

// Stats counts the team partition's tasks. Unlike stale-copy cleanup, this
// is a primary read: an unreachable partition is surfaced to the caller.
func (s *TeamService) Stats(ctx context.Context, sess *Session, teamID string) (*TeamStats, error) {
	team, err := s.Get(ctx, sess, teamID)
	if err != nil {
		return nil, err
	}

	handle, err := s.store.Open(ctx, team.Partition, sess.Principal)
	if err != nil {
		return nil, err
	}

	tasks := repository.NewTaskRepository(handle)
	total, err := tasks.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := tasks.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	return &TeamStats{TotalTasks: total, PendingTasks: pending}, nil
}

// Delete removes a team and cascades: the team partition's task copies are
// deleted, their location mirrors cleared, the master copies detached, and
// all membership edges removed. The partition-side cleanup is best-effort -
// an unreachable partition leaves harmless orphans for a later pass - but
// the Team record deletion itself must succeed.
func (s *TeamService) Delete(ctx context.Context, sess *Session, teamID string) error {
	if !sess.CanAdminister() {
		return &apperrors.NotPermittedError{Operation: "delete team"}
	}
	team, err := s.Get(ctx, sess, teamID)
	if err != nil {
		return err
	}

	locations := repository.NewLocationRepository(sess.Common)

	if handle, err := s.store.Open(ctx, team.Partition, sess.Principal); err != nil {
		s.log.WithError(err).WithField("team", teamID).Warn("team partition unreachable, leaving task copies behind")
	} else {
		copies := repository.NewTaskRepository(handle)
		taskCopies, err := copies.List(ctx)
		if err != nil {
			s.log.WithError(err).WithField("team", teamID).Warn("could not list team task copies")
		}
		for _, tc := range taskCopies {
			if err := locations.SetTeamMirror(ctx, tc.ID, nil); err != nil {
				s.log.WithError(err).WithField("task", tc.ID).Warn("could not clear location team mirror")
			}
			if err := copies.Delete(ctx, tc.ID); err != nil {
				s.log.WithError(err).WithField("task", tc.ID).Warn("could not delete team task copy")
			}
		}
	}

	// Detach master copies so the authority no longer points at a dead team.
	if manager, err := s.store.Open(ctx, s.store.Naming().Manager(), sess.Principal); err != nil {
		s.log.WithError(err).WithField("team", teamID).Warn("manager partition unreachable, master copies keep a stale team id")
	} else {
		err := manager.Write(ctx, func(tx *gorm.DB) error {
			return tx.Model(&models.Task{}).
				Where("partition = ? AND team_id = ?", manager.Partition(), teamID).
				Update("team_id", nil).Error
		})
		if err != nil {
			s.log.WithError(err).WithField("team", teamID).Warn("could not detach master task copies")
		}
	}

	people := repository.NewPersonRepository(sess.Common)
	if err := people.RemoveAllMembers(ctx, teamID); err != nil {
		return err
	}

	if err := repository.NewTeamRepository(sess.Common).Delete(ctx, teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.log.WithField("team", teamID).Info("team deleted")
	return nil
}
