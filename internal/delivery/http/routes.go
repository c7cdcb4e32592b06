package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrilog/backend/config"
	"github.com/nutrilog/backend/internal/infrastructure/limiter"
	"github.com/nutrilog/backend/internal/logger"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, store *limiter.Store, log *logger.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(store))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		foods := v1.Group("/foods")
		{
			foods.POST("", handler.CreateFood)
			foods.GET("", handler.ListFoods)
			foods.GET("/:id", handler.GetFood)
			foods.PUT("/:id", handler.UpdateFood)
			foods.DELETE("/:id", handler.DeleteFood)
		}

		meals := v1.Group("/meals")
		{
			meals.POST("", handler.LogMeal)
			meals.GET("", handler.ListMeals)
			meals.DELETE("/:id", handler.DeleteMeal)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", handler.Summary)
			reports.GET("/trend", handler.Trend)
		}

		v1.GET("/export/meals.csv", handler.ExportMeals)
	}

	return router
}
