package routes

import (
	"teamwork-backend/internal/api/handlers"
	"teamwork-backend/internal/api/middleware"
	"teamwork-backend/internal/auth"
	"teamwork-backend/internal/config"
	"teamwork-backend/internal/logger"
	"teamwork-backend/internal/service"
	"teamwork-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, st *store.Store, cfg *config.Config, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize services
	var ldapService *service.LDAPService
	if cfg.LDAPEnabled {
		ldapService = service.NewLDAPService(cfg)
	}
	presenceService := service.NewPresenceService(st, nil, cfg.PresenceInterval(), log)
	identityService := service.NewIdentityService(st, ldapService, presenceService, log)
	teamService := service.NewTeamService(st, validator, log)
	taskService := service.NewTaskService(st, teamService, validator, log)
	preferenceService := service.NewPreferenceService(log)

	// Initialize auth
	authService := auth.NewService(cfg)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, identityService, validator)
	personHandler := handlers.NewPersonHandler()
	teamHandler := handlers.NewTeamHandler(teamService, validator)
	taskHandler := handlers.NewTaskHandler(taskService, validator)
	presenceHandler := handlers.NewPresenceHandler(presenceService, validator)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)

	// Auth routes
	router.POST("/api/auth/login", authHandler.Login)

	// API v1 routes - all endpoints require authentication and a resolved
	// session against the common partition
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	v1.Use(handlers.RequireSession(identityService))
	{
		v1.GET("/me", personHandler.Me)

		people := v1.Group("/people")
		{
			people.GET("", personHandler.List)
			people.GET("/:id", personHandler.Get)
			people.GET("/:id/teams", personHandler.Teams)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.List)
			teams.POST("", teamHandler.Create)
			teams.GET("/exists", teamHandler.Exists)
			teams.GET("/:id", teamHandler.Get)
			teams.DELETE("/:id", teamHandler.Delete)
			teams.GET("/:id/members", teamHandler.Members)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:personId", teamHandler.RemoveMember)
			teams.GET("/:id/stats", teamHandler.Stats)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PATCH("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
			tasks.PUT("/:id/team", taskHandler.AssignTeam)
			tasks.DELETE("/:id/team", taskHandler.RemoveFromTeam)
			tasks.POST("/:id/complete", taskHandler.Complete)
			tasks.GET("/:id/history", taskHandler.History)
		}

		v1.POST("/presence", presenceHandler.Report)

		preferences := v1.Group("/preferences")
		{
			preferences.GET("/selected-team", preferenceHandler.SelectedTeam)
			preferences.PUT("/selected-team", preferenceHandler.SetSelectedTeam)
		}
	}

	return router
}
