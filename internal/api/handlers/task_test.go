package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"teamwork-backend/internal/api/handlers"
	"teamwork-backend/internal/database/models"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/mocks"
	"teamwork-backend/internal/service"
	"teamwork-backend/internal/store"
	"teamwork-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	handler     *handlers.TaskHandler
	httpSuite   *testutils.HTTPTestSuite
	session     *service.Session
}

// SetupTest sets up the test suite
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTaskHandler(suite.mockService, validator.New())
	suite.httpSuite = testutils.SetupHTTPTest()

	manager := testutils.NewTestPerson("manager@example.com", models.RoleManager)
	suite.session = &service.Session{
		Principal: store.Principal{Identity: manager.ID},
		Person:    manager,
	}

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("session", suite.session)
		c.Next()
	})
	tasks := v1.Group("/tasks")
	{
		tasks.GET("", suite.handler.List)
		tasks.POST("", suite.handler.Create)
		tasks.GET("/:id", suite.handler.Get)
		tasks.PATCH("/:id", suite.handler.Update)
		tasks.DELETE("/:id", suite.handler.Delete)
		tasks.PUT("/:id/team", suite.handler.AssignTeam)
		tasks.DELETE("/:id/team", suite.handler.RemoveFromTeam)
		tasks.POST("/:id/complete", suite.handler.Complete)
		tasks.GET("/:id/history", suite.handler.History)
	}
}

// TearDownTest cleans up after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	suite.Run("successful creation", func() {
		task := &models.Task{ID: "task-1", Title: "Inspect pump"}
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.session, gomock.Any()).
			Return(task, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks", service.CreateTaskRequest{Title: "Inspect pump"})

		var response models.Task
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
		suite.Equal("Inspect pump", response.Title)
	})

	suite.Run("worker is forbidden", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.session, gomock.Any()).
			Return(nil, &apperrors.NotPermittedError{Operation: "create task"})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks", service.CreateTaskRequest{})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not permitted")
	})
}

func (suite *TaskHandlerTestSuite) TestListTasks() {
	suite.Run("without team lists masters", func() {
		suite.mockService.EXPECT().
			ListMaster(gomock.Any(), suite.session).
			Return([]models.Task{{ID: "task-1"}, {ID: "task-2"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks", nil)

		var response []models.Task
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Len(response, 2)
	})

	suite.Run("team parameter switches to team copies", func() {
		suite.mockService.EXPECT().
			ListForTeam(gomock.Any(), suite.session, "team-1").
			Return([]models.Task{{ID: "task-1"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks?team=team-1", nil)

		var response []models.Task
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Len(response, 1)
	})
}

func (suite *TaskHandlerTestSuite) TestAssignTeam() {
	suite.Run("assigns to a team", func() {
		teamID := "team-1"
		suite.mockService.EXPECT().
			AssignTeam(gomock.Any(), suite.session, "task-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *service.Session, _ string, newTeamID *string) error {
				suite.Require().NotNil(newTeamID)
				suite.Equal(teamID, *newTeamID)
				return nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/task-1/team", handlers.AssignTeamRequest{TeamID: &teamID})
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("null team unassigns", func() {
		suite.mockService.EXPECT().
			AssignTeam(gomock.Any(), suite.session, "task-1", gomock.Nil()).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/task-1/team", handlers.AssignTeamRequest{TeamID: nil})
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("unknown task", func() {
		teamID := "team-1"
		suite.mockService.EXPECT().
			AssignTeam(gomock.Any(), suite.session, "missing", gomock.Any()).
			Return(apperrors.ErrTaskNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/missing/team", handlers.AssignTeamRequest{TeamID: &teamID})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "task not found")
	})

	suite.Run("busy handle conflicts", func() {
		teamID := "team-1"
		suite.mockService.EXPECT().
			AssignTeam(gomock.Any(), suite.session, "task-1", gomock.Any()).
			Return(apperrors.ErrWriteInProgress)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/task-1/team", handlers.AssignTeamRequest{TeamID: &teamID})
		suite.Equal(http.StatusConflict, recorder.Code)
	})
}

func (suite *TaskHandlerTestSuite) TestComplete() {
	suite.Run("manager completes without team", func() {
		suite.mockService.EXPECT().
			Complete(gomock.Any(), suite.session, "task-1", gomock.Nil()).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks/task-1/complete", handlers.CompleteRequest{})
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("worker completes within a team", func() {
		teamID := "team-1"
		suite.mockService.EXPECT().
			Complete(gomock.Any(), suite.session, "task-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *service.Session, _ string, id *string) error {
				suite.Require().NotNil(id)
				suite.Equal(teamID, *id)
				return nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks/task-1/complete", handlers.CompleteRequest{TeamID: &teamID})
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("non-member is rejected", func() {
		teamID := "team-1"
		suite.mockService.EXPECT().
			Complete(gomock.Any(), suite.session, "task-1", gomock.Any()).
			Return(&apperrors.NotPermittedError{Operation: "complete task"})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks/task-1/complete", handlers.CompleteRequest{TeamID: &teamID})
		suite.Equal(http.StatusForbidden, recorder.Code)
	})
}

func (suite *TaskHandlerTestSuite) TestHistory() {
	suite.mockService.EXPECT().
		History(gomock.Any(), suite.session, "task-1").
		Return([]models.TaskHistory{{TaskID: "task-1"}, {TaskID: "task-1"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tasks/task-1/history", nil)

	var response []models.TaskHistory
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *TaskHandlerTestSuite) TestDelete() {
	suite.mockService.EXPECT().
		Delete(gomock.Any(), suite.session, "task-1").
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/tasks/task-1", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
