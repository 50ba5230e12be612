package handlers_test

import (
	"net/http"
	"strings"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	session     *service.Session
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService, validator.New())
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
	teams := v1.Group("/teams")
	{
		teams.GET("", suite.handler.List)
		teams.POST("", suite.handler.Create)
		teams.GET("/exists", suite.handler.Exists)
		teams.GET("/:id", suite.handler.Get)
		teams.DELETE("/:id", suite.handler.Delete)
		teams.GET("/:id/members", suite.handler.Members)
		teams.POST("/:id/members", suite.handler.AddMember)
		teams.DELETE("/:id/members/:personId", suite.handler.RemoveMember)
		teams.GET("/:id/stats", suite.handler.Stats)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.Run("successful creation", func() {
		team := &models.Team{ID: "team-1", Name: "North Crew"}
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.session, gomock.Any()).
			Return(team, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", service.CreateTeamRequest{Name: "North Crew"})

		var response models.Team
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
		suite.Equal("North Crew", response.Name)
	})

	suite.Run("duplicate name conflicts", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.session, gomock.Any()).
			Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", service.CreateTeamRequest{Name: "North Crew"})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "team already exists")
	})

	suite.Run("worker is forbidden", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.session, gomock.Any()).
			Return(nil, &apperrors.NotPermittedError{Operation: "create team"})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", service.CreateTeamRequest{Name: "North Crew"})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not permitted")
	})

	suite.Run("overlong name maps to 400", func() {
		suite.mockService.EXPECT().
			Create(gomock.Any(), suite.session, gomock.Any()).
			Return(nil, apperrors.NewValidationError("Name", "failed on the 'max' rule"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", service.CreateTeamRequest{Name: strings.Repeat("x", 101)})
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "validation error")
	})

	suite.Run("invalid body", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", "not json")
		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.Run("found", func() {
		team := &models.Team{ID: "team-1", Name: "North Crew"}
		suite.mockService.EXPECT().
			Get(gomock.Any(), suite.session, "team-1").
			Return(team, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/team-1", nil)

		var response models.Team
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Equal("team-1", response.ID)
	})

	suite.Run("not found", func() {
		suite.mockService.EXPECT().
			Get(gomock.Any(), suite.session, "missing").
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/missing", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
	})

	suite.Run("partition unavailable is retryable", func() {
		suite.mockService.EXPECT().
			Get(gomock.Any(), suite.session, "team-1").
			Return(nil, &apperrors.PartitionUnavailableError{Partition: "p"})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/team-1", nil)
		suite.Equal(http.StatusServiceUnavailable, recorder.Code)
		suite.Equal("5", recorder.Header().Get("Retry-After"))
	})
}

func (suite *TeamHandlerTestSuite) TestExists() {
	suite.Run("requires name parameter", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/exists", nil)
		suite.Equal(http.StatusBadRequest, recorder.Code)
	})

	suite.Run("reports existence", func() {
		suite.mockService.EXPECT().
			Exists(gomock.Any(), suite.session, "North Crew").
			Return(true, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/exists?name=North+Crew", nil)

		var response map[string]bool
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.True(response["exists"])
	})
}

func (suite *TeamHandlerTestSuite) TestMembers() {
	suite.Run("add member", func() {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.session, "team-1", "worker@example.com").
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/team-1/members", handlers.AddMemberRequest{PersonID: "worker@example.com"})
		suite.Equal(http.StatusCreated, recorder.Code)
	})

	suite.Run("duplicate member conflicts", func() {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.session, "team-1", "worker@example.com").
			Return(apperrors.ErrMemberAlreadyInTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/team-1/members", handlers.AddMemberRequest{PersonID: "worker@example.com"})
		suite.Equal(http.StatusConflict, recorder.Code)
	})

	suite.Run("remove member", func() {
		suite.mockService.EXPECT().
			RemoveMember(gomock.Any(), suite.session, "team-1", "worker@example.com").
			Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/team-1/members/worker@example.com", nil)
		suite.Equal(http.StatusOK, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestStats() {
	suite.mockService.EXPECT().
		Stats(gomock.Any(), suite.session, "team-1").
		Return(&service.TeamStats{TotalTasks: 5, PendingTasks: 2}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/team-1/stats", nil)

	var response service.TeamStats
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.EqualValues(5, response.TotalTasks)
	suite.EqualValues(2, response.PendingTasks)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
