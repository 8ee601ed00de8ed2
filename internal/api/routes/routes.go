package routes

import (
	"seating-planner-backend/internal/api/handlers"
	"seating-planner-backend/internal/api/middleware"
	"seating-planner-backend/internal/auth"
	"seating-planner-backend/internal/config"
	"seating-planner-backend/internal/database/models"
	"seating-planner-backend/internal/repository"
	"seating-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. sessions is
// reported by the health checks and may be nil for the in-memory store.
func SetupRoutes(db *gorm.DB, cfg *config.Config, authService *auth.AuthService, sessions handlers.Pinger) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	guestRepo := repository.NewGuestRepository(db)
	tableRepo := repository.NewTableRepository(db)

	// Initialize services
	guestService := service.NewGuestService(guestRepo, tableRepo, validator)
	tableService := service.NewTableService(tableRepo, guestRepo, guestService, validator)
	seatingService := service.NewSeatingService(guestService, tableService)

	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, sessions)
	guestHandler := handlers.NewGuestHandler(guestService)
	tableHandler := handlers.NewTableHandler(tableService)
	seatingHandler := handlers.NewSeatingHandler(seatingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		signedIn := authGroup.Group("", authMiddleware.RequireAuth())
		{
			signedIn.POST("/logout", authHandler.Logout)
			signedIn.GET("/session", authHandler.Session)
			signedIn.GET("/profile", authHandler.Profile)
			signedIn.PUT("/profile/role", authHandler.UpdateRole)
		}

		organizerGroup := authGroup.Group("/organizer", authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.RoleSuperUser))
		{
			organizerGroup.POST("/guests", authHandler.AddGuestAccount)
		}
	}

	// API v1 routes - reads for every signed-in user, writes for organizers
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	organizerOnly := authMiddleware.RequireRole(models.RoleSuperUser)

	{
		// Guest routes
		guests := v1.Group("/guests")
		{
			guests.GET("", guestHandler.ListGuests)
			guests.GET("/stats", guestHandler.GetGuestStats)
			guests.GET("/:id", guestHandler.GetGuest)
			guests.POST("", organizerOnly, guestHandler.CreateGuest)
			guests.PUT("/:id", organizerOnly, guestHandler.UpdateGuest)
			guests.DELETE("/:id", organizerOnly, guestHandler.DeleteGuest)
		}

		// Table routes
		tables := v1.Group("/tables")
		{
			tables.GET("", tableHandler.ListTables)
			tables.GET("/with-guests", tableHandler.ListTablesWithGuests)
			tables.GET("/:id", tableHandler.GetTable)
			tables.POST("", organizerOnly, tableHandler.CreateTable)
			tables.PUT("/:id", organizerOnly, tableHandler.UpdateTable)
			tables.DELETE("/:id", organizerOnly, tableHandler.DeleteTable)
		}

		// Seating chart routes
		seating := v1.Group("/seating")
		{
			seating.GET("", seatingHandler.GetChart)
			seating.POST("/assignments", organizerOnly, seatingHandler.AssignSeat)
			seating.DELETE("/assignments/:guestId", organizerOnly, seatingHandler.UnassignSeat)
		}
	}

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
func SetupHealthRoutes(db *gorm.DB, sessions handlers.Pinger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, sessions)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
