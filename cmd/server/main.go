package main

import (
	"context"
	"log"
	"os"

	"seating-planner-backend/internal/api/handlers"
	"seating-planner-backend/internal/api/routes"
	"seating-planner-backend/internal/auth"
	"seating-planner-backend/internal/config"
	"seating-planner-backend/internal/database"
	"seating-planner-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "seating-planner-backend/docs" // This is needed for swag
)

//	@title			Seating Planner Backend API
//	@version		1.0
//	@description	This is the backend API for the event seating planner, providing endpoints for managing guests, tables and the seating chart.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

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

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize session store
	var sessions auth.SessionStore
	var sessionsPinger handlers.Pinger
	if cfg.UsesRedis() {
		redisStore := auth.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer redisStore.Close()
		if err := redisStore.Ping(context.Background()); err != nil {
			logrus.Fatal("Failed to connect to Redis:", err)
		}
		sessions = redisStore
		sessionsPinger = redisStore
		logrus.Infof("Keeping sessions in Redis at %s", cfg.RedisAddr)
	} else {
		sessions = auth.NewMemorySessionStore()
		logrus.Warn("REDIS_ADDR not set, sessions are kept in memory and lost on restart")
	}

	// Initialize auth service
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), repository.NewUserRepository(db), sessions)
	if err != nil {
		logrus.Fatal("Failed to initialize auth service:", err)
	}
	events, unsubscribe := authService.Subscribe()
	defer unsubscribe()
	go logSessionEvents(events)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, authService, sessionsPinger)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// logSessionEvents writes an audit line per sign-up, sign-in and sign-out
func logSessionEvents(events <-chan auth.SessionEvent) {
	for event := range events {
		logrus.WithFields(logrus.Fields{
			"event":   event.Type,
			"user_id": event.UserID,
			"email":   event.Email,
		}).Info("session event")
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
