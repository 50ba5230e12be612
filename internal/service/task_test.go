package service_test

import (
	"context"
	"testing"

	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/repository"
	"teamwork-backend/internal/service"
	"teamwork-backend/internal/store"
	"teamwork-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// TaskServiceTestSuite exercises the replication engine end to end against a
// real store: master copies in the manager partition, derived per-team
// copies, location mirrors and history.
type TaskServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *store.Store
	teams  *service.TeamService
	tasks  *service.TaskService
	admin  *service.Session
	worker *service.Session
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = testutils.NewTestStore(s.T())
	v := validator.New()
	log := logger.New()
	s.teams = service.NewTeamService(s.store, v, log)
	s.tasks = service.NewTaskService(s.store, s.teams, v, log)
	s.admin = testutils.LoginSession(s.T(), s.store, testutils.AdminPrincipal())
	s.worker = testutils.LoginSession(s.T(), s.store, testutils.UserPrincipal("worker@example.com"))
}

func (s *TaskServiceTestSuite) createTeam(name string) *models.Team {
	team, err := s.teams.Create(s.ctx, s.admin, &service.CreateTeamRequest{Name: name})
	s.Require().NoError(err)
	return team
}

func (s *TaskServiceTestSuite) teamCopies(teamID string) []models.Task {
	handle, err := s.store.Open(s.ctx, s.teams.ResolvePartition(teamID), s.admin.Principal)
	s.Require().NoError(err)
	tasks, err := repository.NewTaskRepository(handle).List(s.ctx)
	s.Require().NoError(err)
	return tasks
}

func (s *TaskServiceTestSuite) taskLocation(taskID string) *models.Location {
	location, err := repository.NewLocationRepository(s.admin.Common).GetByTaskID(s.ctx, taskID)
	s.Require().NoError(err)
	return location
}

func (s *TaskServiceTestSuite) TestCreateMasterWithDefaults() {
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{})
	s.Require().NoError(err)

	s.Equal("Empty Title", task.Title)
	s.Equal("Missing Description", task.Description)
	s.Nil(task.TeamID)
	s.Require().NotNil(task.LocationID)

	// The paired location lives in the common partition, referenced by id.
	location := s.taskLocation(task.ID)
	s.Equal(*task.LocationID, location.ID)
	s.Nil(location.TeamID)

	masters, err := s.tasks.ListMaster(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Len(masters, 1)
}

func (s *TaskServiceTestSuite) TestCreateRejectsWorkers() {
	_, err := s.tasks.Create(s.ctx, s.worker, &service.CreateTaskRequest{Title: "sneaky"})
	var notPermitted *apperrors.NotPermittedError
	s.ErrorAs(err, &notPermitted)
}

func (s *TaskServiceTestSuite) TestCreateWithTeamReplicates() {
	team := s.createTeam("Install Crew")

	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{
		Title:  "install meter",
		TeamID: &team.ID,
	})
	s.Require().NoError(err)

	copies := s.teamCopies(team.ID)
	s.Require().Len(copies, 1)
	s.Equal(task.ID, copies[0].ID)
	s.Equal("install meter", copies[0].Title)
}

func (s *TaskServiceTestSuite) TestAssignCreatesExactlyOneCopy() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "inspect"})
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.AssignTeam(s.ctx, s.admin, task.ID, &team.ID))

	copies := s.teamCopies(team.ID)
	s.Require().Len(copies, 1)

	master, err := s.tasks.Get(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.Require().NotNil(master.TeamID)
	s.Equal(team.ID, *master.TeamID)

	// The location mirror follows the master's team.
	location := s.taskLocation(task.ID)
	s.Require().NotNil(location.TeamID)
	s.Equal(team.ID, *location.TeamID)
}

func (s *TaskServiceTestSuite) TestReassignMovesTheCopy() {
	teamA := s.createTeam("Crew A")
	teamB := s.createTeam("Crew B")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "move me", TeamID: &teamA.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.AssignTeam(s.ctx, s.admin, task.ID, &teamB.ID))

	s.Empty(s.teamCopies(teamA.ID), "old partition copy must be removed")
	copies := s.teamCopies(teamB.ID)
	s.Require().Len(copies, 1)
	s.Equal(task.ID, copies[0].ID)

	master, err := s.tasks.Get(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.Equal(teamB.ID, *master.TeamID)

	location := s.taskLocation(task.ID)
	s.Equal(teamB.ID, *location.TeamID)
}

func (s *TaskServiceTestSuite) TestReassignToSameTeamIsIdempotent() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "steady", TeamID: &team.ID})
	s.Require().NoError(err)

	history, err := s.tasks.History(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	entriesBefore := len(history)

	s.Require().NoError(s.tasks.AssignTeam(s.ctx, s.admin, task.ID, &team.ID))

	s.Len(s.teamCopies(team.ID), 1, "no duplicate copy on repeated assignment")

	history, err = s.tasks.History(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.Len(history, entriesBefore, "no-op assignment appends no history")
}

func (s *TaskServiceTestSuite) TestRemoveFromTeam() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "orphan", TeamID: &team.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.RemoveFromTeam(s.ctx, s.admin, task.ID))

	s.Empty(s.teamCopies(team.ID))

	master, err := s.tasks.Get(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.Nil(master.TeamID)

	location := s.taskLocation(task.ID)
	s.Nil(location.TeamID)
}

func (s *TaskServiceTestSuite) TestAssignUnknownTargets() {
	team := s.createTeam("Crew A")

	err := s.tasks.AssignTeam(s.ctx, s.admin, "no-such-task", &team.ID)
	s.ErrorIs(err, apperrors.ErrTaskNotFound)

	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "stuck"})
	s.Require().NoError(err)

	bogus := "no-such-team"
	err = s.tasks.AssignTeam(s.ctx, s.admin, task.ID, &bogus)
	s.ErrorIs(err, apperrors.ErrTeamNotFound)

	master, err := s.tasks.Get(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.Nil(master.TeamID, "failed assignment must not move the authority")
}

func (s *TaskServiceTestSuite) TestAssignIsRoleGated() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "locked"})
	s.Require().NoError(err)

	err = s.tasks.AssignTeam(s.ctx, s.worker, task.ID, &team.ID)
	var notPermitted *apperrors.NotPermittedError
	s.ErrorAs(err, &notPermitted)
}

func (s *TaskServiceTestSuite) TestUpdateReplicatesAndRecordsHistory() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "stale", TeamID: &team.ID})
	s.Require().NoError(err)

	updated, err := s.tasks.Update(s.ctx, s.admin, task.ID, &service.UpdateTaskRequest{
		Title:      testutils.StrPtr("fresh"),
		AssigneeID: testutils.StrPtr(s.worker.Person.ID),
	})
	s.Require().NoError(err)
	s.Equal("fresh", updated.Title)

	copies := s.teamCopies(team.ID)
	s.Require().Len(copies, 1)
	s.Equal("fresh", copies[0].Title)
	s.Require().NotNil(copies[0].AssigneeID)
	s.Equal(s.worker.Person.ID, *copies[0].AssigneeID)

	history, err := s.tasks.History(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(history)
	latest := history[len(history)-1]
	s.Require().NotNil(latest.AssignedToID)
	s.Equal(s.worker.Person.ID, *latest.AssignedToID)
}

func (s *TaskServiceTestSuite) TestCompleteByManagerReplicates() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "finish me", TeamID: &team.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.Complete(s.ctx, s.admin, task.ID, nil))

	master, err := s.tasks.Get(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.True(master.IsCompleted)
	s.NotNil(master.CompletionDate)
	s.Require().NotNil(master.SignedOffByID)
	s.Equal(s.admin.Person.ID, *master.SignedOffByID)

	copies := s.teamCopies(team.ID)
	s.Require().Len(copies, 1)
	s.True(copies[0].IsCompleted)
}

func (s *TaskServiceTestSuite) TestCompleteByWorkerTouchesTeamCopyOnly() {
	team := s.createTeam("Crew A")
	s.Require().NoError(s.teams.AddMember(s.ctx, s.admin, team.ID, s.worker.Person.ID))

	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "field work", TeamID: &team.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.Complete(s.ctx, s.worker, task.ID, &team.ID))

	copies := s.teamCopies(team.ID)
	s.Require().Len(copies, 1)
	s.True(copies[0].IsCompleted)
	s.Require().NotNil(copies[0].SignedOffByID)
	s.Equal(s.worker.Person.ID, *copies[0].SignedOffByID)

	// The master lags until a managerial pass reconciles it.
	master, err := s.tasks.Get(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.False(master.IsCompleted)
}

func (s *TaskServiceTestSuite) TestCompleteByNonMemberIsRejected() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "private", TeamID: &team.ID})
	s.Require().NoError(err)

	err = s.tasks.Complete(s.ctx, s.worker, task.ID, &team.ID)
	var notPermitted *apperrors.NotPermittedError
	s.ErrorAs(err, &notPermitted)

	err = s.tasks.Complete(s.ctx, s.worker, task.ID, nil)
	s.ErrorAs(err, &notPermitted)
}

func (s *TaskServiceTestSuite) TestDeleteRemovesEverywhere() {
	team := s.createTeam("Crew A")
	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{Title: "doomed", TeamID: &team.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.Delete(s.ctx, s.admin, task.ID))

	_, err = s.tasks.Get(s.ctx, s.admin, task.ID)
	s.ErrorIs(err, apperrors.ErrTaskNotFound)

	s.Empty(s.teamCopies(team.ID))

	_, err = repository.NewLocationRepository(s.admin.Common).GetByTaskID(s.ctx, task.ID)
	s.ErrorIs(err, apperrors.ErrLocationNotFound, "paired location must be deleted")
}

func (s *TaskServiceTestSuite) TestFullLifecycle() {
	teamA := s.createTeam("Crew A")
	teamB := s.createTeam("Crew B")
	s.Require().NoError(s.teams.AddMember(s.ctx, s.admin, teamA.ID, s.worker.Person.ID))

	task, err := s.tasks.Create(s.ctx, s.admin, &service.CreateTaskRequest{
		Title:      "full cycle",
		AssigneeID: testutils.StrPtr(s.worker.Person.ID),
		TeamID:     &teamA.ID,
	})
	s.Require().NoError(err)

	// Reassign, then return to the pool, then delete.
	s.Require().NoError(s.tasks.AssignTeam(s.ctx, s.admin, task.ID, &teamB.ID))
	s.Empty(s.teamCopies(teamA.ID))
	s.Len(s.teamCopies(teamB.ID), 1)

	s.Require().NoError(s.tasks.RemoveFromTeam(s.ctx, s.admin, task.ID))
	s.Empty(s.teamCopies(teamB.ID))

	history, err := s.tasks.History(s.ctx, s.admin, task.ID)
	s.Require().NoError(err)
	s.NotEmpty(history)

	s.Require().NoError(s.tasks.Delete(s.ctx, s.admin, task.ID))
	masters, err := s.tasks.ListMaster(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Empty(masters)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
