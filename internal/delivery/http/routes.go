package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cartscout/backend/config"
	"github.com/cartscout/backend/internal/usecase"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, auth *usecase.AuthService) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/signup", handler.SignUp)
		v1.POST("/auth/login", handler.LogIn)

		// Identity-aware routes; without a token they operate on the
		// guest bucket
		authed := v1.Group("")
		authed.Use(AuthMiddleware(auth))
		{
			authed.GET("/items", handler.ListItems)
			authed.POST("/items", handler.AddItem)
			authed.DELETE("/items/:id", handler.RemoveItem)

			authed.GET("/prices", handler.ListPrices)
			authed.POST("/prices", handler.ImportPrices)

			authed.POST("/plan", handler.ComputePlan)
		}
	}

	return router
}
