package routes

import (
	"context"
	"log"

	"github.com/Matias222/d-melo/internal/api/handlers"
	"github.com/Matias222/d-melo/internal/api/middleware"
	"github.com/Matias222/d-melo/internal/auth"
	"github.com/Matias222/d-melo/internal/config"
	"github.com/Matias222/d-melo/internal/logger"
	"github.com/Matias222/d-melo/internal/repository"
	"github.com/Matias222/d-melo/internal/service"
	"github.com/Matias222/d-melo/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	teamSessionRepo := repository.NewTeamSessionRepository(db)

	// Initialize the report mirror when a bucket is configured
	var reportStore storage.ReportStore
	if cfg.S3Bucket != "" {
		store, err := storage.NewS3ReportStore(context.Background(), storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			log.Printf("Warning: report store initialization failed, sessions will not be mirrored: %v", err)
		} else {
			reportStore = store
		}
	}

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	teamService := service.NewTeamService(teamRepo, membershipRepo, userRepo, validator)
	sessionService := service.NewSessionService(sessionRepo, userRepo, reportStore, validator)
	sharingService := service.NewSharingService(teamRepo, sessionRepo, teamSessionRepo, membershipRepo)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: failed to load auth config, OAuth exchange disabled: %v", err)
		authConfig = nil
	}

	var authService *auth.AuthService
	var authHandler *auth.AuthHandler
	if authConfig != nil {
		authService = auth.NewAuthService(authConfig)
		authHandler = auth.NewAuthHandler(authService, userService, logger.New())
	}
	authMiddleware := auth.NewAuthMiddleware(authService, cfg.MCPAPIKey)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	teamSessionHandler := handlers.NewTeamSessionHandler(sharingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// OAuth exchange for browser clients
	if authHandler != nil {
		router.POST("/api/auth/github/exchange", authHandler.ExchangeGitHubCode)
	}

	// All fenix routes require an authenticated handle
	fenix := router.Group("/fenix")
	fenix.Use(authMiddleware.RequireAuth())
	{
		fenix.POST("/auth/validate-or-create", userHandler.ValidateOrCreate)
		fenix.GET("/users/me", userHandler.GetMe)

		teams := fenix.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:handle", teamHandler.RemoveMember)
			teams.POST("/:id/sessions", teamSessionHandler.ShareSession)
			teams.GET("/:id/sessions", teamSessionHandler.ListTeamSessions)
			teams.DELETE("/:id/sessions/:session_id", teamSessionHandler.UnshareSession)
		}

		sessions := fenix.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/by-repo", sessionHandler.ListSessionsByRepo)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PATCH("/:id", sessionHandler.UpdateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}
