package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	defaultTaskTitle       = "Empty Title"
	defaultTaskDescription = "Missing Description"
)

// TaskService is the replication engine. Every task has exactly one master
// copy in the manager partition; assignment to a team creates a derived copy
// with the same id in that team's partition. The master's team_id field is
// the single authority for which team currently owns the task.
//
// The engine works master-first: the authoritative write must succeed, and
// the derived artifacts (old-partition cleanup, new-partition copy, location
// mirror) follow best-effort. A failure partway through leaves a stale copy
// or mirror, never a wrong authority.
type TaskService struct {
	store     *store.Store
	teams     *TeamService
	validator *validator.Validate
	log       *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(st *store.Store, teams *TeamService, validator *validator.Validate, log *logger.Logger) *TaskService {
	return &TaskService{store: st, teams: teams, validator: validator, log: log}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"max=200"`
	Description string     `json:"description" validate:"max=2000"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *string    `json:"assignee_id"`
	TeamID      *string    `json:"team_id"`
	Latitude    *float64   `json:"latitude"`
	Longitude   *float64   `json:"longitude"`
	Address     *string    `json:"address"`
}

// UpdateTaskRequest represents the request to update a task's master copy.
// Nil fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  *string    `json:"assignee_id"`
}

func (s *TaskService) openManager(ctx context.Context, sess *Session) (*store.Handle, error) {
	return s.store.Open(ctx, s.store.Naming().Manager(), sess.Principal)
}

// Create creates the master copy in the manager partition, with its paired
// location record in the common partition, and replicates to the requested
// team if one was named. Restricted to Admin/Manager callers.
func (s *TaskService) Create(ctx context.Context, sess *Session, req *CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !sess.CanAdminister() {
		return nil, &apperrors.NotPermittedError{Operation: "create task"}
	}

	manager, err := s.openManager(ctx, sess)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
	}
	if task.Title == "" {
		task.Title = defaultTaskTitle
	}
	if task.Description == "" {
		task.Description = defaultTaskDescription
	}
	if err := task.BeforeCreate(nil); err != nil {
		return nil, err
	}

	// The location pin lives in the common partition so one map query covers
	// every team; it carries the task id as a plain string reference.
	location := &models.Location{
		TaskID:        &task.ID,
		StreetAddress: req.Address,
	}
	if req.Latitude != nil && req.Longitude != nil {
		location.HaveLatLon = true
		location.Latitude = *req.Latitude
		location.Longitude = *req.Longitude
	}
	if err := repository.NewLocationRepository(sess.Common).Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create task location: %w", err)
	}
	task.LocationID = &location.ID

	if err := repository.NewTaskRepository(manager).Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.log.WithField("task", task.ID).Info("task created")

	if req.TeamID != nil {
		if err := s.AssignTeam(ctx, sess, task.ID, req.TeamID); err != nil {
			return nil, err
		}
		task.TeamID = req.TeamID
	}
	return task, nil
}

// Get retrieves a task's master copy.
func (s *TaskService) Get(ctx context.Context, sess *Session, taskID string) (*models.Task, error) {
	manager, err := s.openManager(ctx, sess)
	if err != nil {
		return nil, err
	}
	task, err := repository.NewTaskRepository(manager).Get(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListMaster retrieves all master copies from the manager partition.
func (s *TaskService) ListMaster(ctx context.Context, sess *Session) ([]models.Task, error) {
	manager, err := s.openManager(ctx, sess)
	if err != nil {
		return nil, err
	}
	return repository.NewTaskRepository(manager).List(ctx)
}

// ListForTeam retrieves a team partition's task copies. Copies can lag the
// master briefly while a reassignment's cleanup is still pending; callers
// treating this as a cache of the manager partition get eventual agreement.
func (s *TaskService) ListForTeam(ctx context.Context, sess *Session, teamID string) ([]models.Task, error) {
	handle, err := s.store.Open(ctx, s.teams.ResolvePartition(teamID), sess.Principal)
	if err != nil {
		return nil, err
	}
	return repository.NewTaskRepository(handle).List(ctx)
}

// AssignTeam moves a task between teams (or to/from the unassigned state,
// via a nil team id). The sequence is strictly ordered:
//
//  1. update the master's team_id - authoritative, failure aborts
//  2. delete the old team partition's copy - best-effort, logged
//  3. create the copy in the new team partition
//  4. mirror the new team onto the task's location record - best-effort
//  5. append a history entry - best-effort
//
// The steps are not atomic. An interruption after step 1 leaves a stale
// copy in the old partition or a missing copy in the new one; because the
// master already carries the new team id, a repeated call converges.
func (s *TaskService) AssignTeam(ctx context.Context, sess *Session, taskID string, newTeamID *string) error {
	if !sess.CanAdminister() {
		return &apperrors.NotPermittedError{Operation: "assign task"}
	}

	manager, err := s.openManager(ctx, sess)
	if err != nil {
		return err
	}
	masterTasks := repository.NewTaskRepository(manager)

	master, err := masterTasks.Get(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	if err != nil {
		return err
	}
	if master.SameTeam(newTeamID) {
		return nil
	}

	if newTeamID != nil {
		if _, err := s.teams.Get(ctx, sess, *newTeamID); err != nil {
			return err
		}
	}

	oldTeamID := master.TeamID
	master.TeamID = newTeamID
	if err := masterTasks.Save(ctx, master); err != nil {
		return fmt.Errorf("failed to update task assignment: %w", err)
	}

	if oldTeamID != nil {
		if old, err := s.store.Open(ctx, s.teams.ResolvePartition(*oldTeamID), sess.Principal); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"task": taskID,
				"team": *oldTeamID,
			}).Warn("old team partition unreachable, stale copy left behind")
		} else if err := repository.NewTaskRepository(old).Delete(ctx, taskID); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"task": taskID,
				"team": *oldTeamID,
			}).Warn("could not remove old team copy")
		}
	}

	var copyErr error
	if newTeamID != nil {
		if dst, err := s.store.Open(ctx, s.teams.ResolvePartition(*newTeamID), sess.Principal); err != nil {
			copyErr = err
		} else {
			copyErr = repository.NewTaskRepository(dst).Upsert(ctx, master)
		}
	}

	if err := repository.NewLocationRepository(sess.Common).SetTeamMirror(ctx, taskID, newTeamID); err != nil {
		s.log.WithError(err).WithField("task", taskID).Warn("could not update location team mirror")
	}

	entry := &models.TaskHistory{TaskID: taskID, AssignedToID: master.AssigneeID}
	if err := repository.NewHistoryRepository(sess.Common).Append(ctx, entry); err != nil {
		s.log.WithError(err).WithField("task", taskID).Warn("could not append task history")
	}

	if copyErr != nil {
		return fmt.Errorf("task reassigned but copy to new team failed: %w", copyErr)
	}
	s.log.WithField("task", taskID).Info("task reassigned")
	return nil
}

// RemoveFromTeam returns a task to the unassigned pool.
func (s *TaskService) RemoveFromTeam(ctx context.Context, sess *Session, taskID string) error {
	return s.AssignTeam(ctx, sess, taskID, nil)
}

// Update edits a task's master copy and re-replicates to the current team.
// A change of assignee is recorded in the task's history.
func (s *TaskService) Update(ctx context.Context, sess *Session, taskID string, req *UpdateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !sess.CanAdminister() {
		return nil, &apperrors.NotPermittedError{Operation: "update task"}
	}

	manager, err := s.openManager(ctx, sess)
	if err != nil {
		return nil, err
	}
	masterTasks := repository.NewTaskRepository(manager)

	master, err := masterTasks.Get(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	previousAssignee := master.AssigneeID
	if req.Title != nil {
		master.Title = *req.Title
	}
	if req.Description != nil {
		master.Description = *req.Description
	}
	if req.DueDate != nil {
		master.DueDate = req.DueDate
	}
	assigneeChanged := false
	if req.AssigneeID != nil {
		if master.AssigneeID == nil || *master.AssigneeID != *req.AssigneeID {
			assigneeChanged = true
		}
		master.AssigneeID = req.AssigneeID
	}

	if err := masterTasks.Save(ctx, master); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if assigneeChanged {
		entry := &models.TaskHistory{
			TaskID:           taskID,
			AssignedToID:     master.AssigneeID,
			ReassignedFromID: previousAssignee,
		}
		if err := repository.NewHistoryRepository(sess.Common).Append(ctx, entry); err != nil {
			s.log.WithError(err).WithField("task", taskID).Warn("could not append task history")
		}
	}

	s.replicateToTeam(ctx, sess, master)
	return master, nil
}

// replicateToTeam pushes the master's current state onto the team copy, if
// the task is assigned. Best-effort: the master already holds the truth.
func (s *TaskService) replicateToTeam(ctx context.Context, sess *Session, master *models.Task) {
	if master.TeamID == nil {
		return
	}
	handle, err := s.store.Open(ctx, s.teams.ResolvePartition(*master.TeamID), sess.Principal)
	if err == nil {
		err = repository.NewTaskRepository(handle).Upsert(ctx, master)
	}
	if err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"task": master.ID,
			"team": *master.TeamID,
		}).Warn("could not replicate task update to team copy")
	}
}

// Complete marks a task done, signed off by the caller. Admin/Manager
// callers complete the master copy and the change replicates to the team.
// Worker callers complete their own team's copy only - the master learns of
// it on a later managerial pass, which is the accepted lag of this model -
// and must be a member of the task's team.
func (s *TaskService) Complete(ctx context.Context, sess *Session, taskID string, teamID *string) error {
	now := time.Now()

	if sess.CanAdminister() {
		manager, err := s.openManager(ctx, sess)
		if err != nil {
			return err
		}
		masterTasks := repository.NewTaskRepository(manager)
		master, err := masterTasks.Get(ctx, taskID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		if err != nil {
			return err
		}
		master.IsCompleted = true
		master.CompletionDate = &now
		master.SignedOffByID = &sess.Person.ID
		if err := masterTasks.Save(ctx, master); err != nil {
			return err
		}
		s.replicateToTeam(ctx, sess, master)
		return nil
	}

	if teamID == nil {
		return &apperrors.NotPermittedError{Operation: "complete task outside a team"}
	}
	member, err := repository.NewPersonRepository(sess.Common).IsMember(ctx, sess.Person.ID, *teamID)
	if err != nil {
		return err
	}
	if !member {
		return &apperrors.NotPermittedError{Operation: "complete another team's task"}
	}

	handle, err := s.store.Open(ctx, s.teams.ResolvePartition(*teamID), sess.Principal)
	if err != nil {
		return err
	}
	teamTasks := repository.NewTaskRepository(handle)
	task, err := teamTasks.Get(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	if err != nil {
		return err
	}
	task.IsCompleted = true
	task.CompletionDate = &now
	task.SignedOffByID = &sess.Person.ID
	return teamTasks.Save(ctx, task)
}

// Delete removes a task everywhere, ordered so that a partial failure never
// strands the master: team copy and location first, master last.
func (s *TaskService) Delete(ctx context.Context, sess *Session, taskID string) error {
	if !sess.CanAdminister() {
		return &apperrors.NotPermittedError{Operation: "delete task"}
	}

	manager, err := s.openManager(ctx, sess)
	if err != nil {
		return err
	}
	masterTasks := repository.NewTaskRepository(manager)
	master, err := masterTasks.Get(ctx, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	if err != nil {
		return err
	}

	if master.TeamID != nil {
		if handle, err := s.store.Open(ctx, s.teams.ResolvePartition(*master.TeamID), sess.Principal); err != nil {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"task": taskID,
				"team": *master.TeamID,
			}).Warn("team partition unreachable, stale copy left behind")
		} else if err := repository.NewTaskRepository(handle).Delete(ctx, taskID); err != nil {
			s.log.WithError(err).WithField("task", taskID).Warn("could not delete team copy")
		}
	}

	if err := repository.NewLocationRepository(sess.Common).DeleteByTaskID(ctx, taskID); err != nil {
		s.log.WithError(err).WithField("task", taskID).Warn("could not delete task location")
	}

	if err := masterTasks.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.log.WithField("task", taskID).Info("task deleted")
	return nil
}

// History lists a task's reassignment history, oldest first.
func (s *TaskService) History(ctx context.Context, sess *Session, taskID string) ([]models.TaskHistory, error) {
	return repository.NewHistoryRepository(sess.Common).ListByTask(ctx, taskID)
}
