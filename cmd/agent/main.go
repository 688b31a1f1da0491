package main

import (
	"log"
	"os"

	"github.com/Matias222/d-melo/internal/agent"
	"github.com/Matias222/d-melo/internal/api/middleware"
	"github.com/Matias222/d-melo/internal/auth"
	"github.com/Matias222/d-melo/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	// Interactive callers authenticate with the bearer token minted by the
	// API's OAuth exchange; trusted relays may use the shared-key pair
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	var authService *auth.AuthService
	if err != nil {
		logrus.Warnf("Auth config not loaded, bearer tokens disabled: %v", err)
	} else {
		authService = auth.NewAuthService(authConfig)
	}
	authMiddleware := auth.NewAuthMiddleware(authService, cfg.MCPAPIKey)

	// Tool layer backed by the session API
	client := agent.NewClient(cfg.APIBaseURL, cfg.MCPAPIKey)
	server := agent.NewServer(agent.NewToolset(client))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())

	group := router.Group("/", authMiddleware.RequireAuth())
	server.Routes(group)

	port := cfg.AgentPort
	if port == "" {
		port = "8100"
	}

	logrus.Infof("Starting agent front end on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start agent front end:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	if parsed, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(parsed)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
