package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ultrabanca/results-engine/internal/config"
	"github.com/ultrabanca/results-engine/internal/handlers"
	"github.com/ultrabanca/results-engine/internal/middleware"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	ResultHandler *handlers.ResultHandler
	JobHandler    *handlers.JobHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		results := public.Group("/results")
		{
			results.GET("", deps.ResultHandler.GetTodayResults)
			results.GET("/:date", deps.ResultHandler.GetResultsByDate)
		}
	}

	// Job triggers, guarded by the shared internal secret
	jobs := router.Group("/api/v1/jobs")
	jobs.Use(middleware.InternalSecretMiddleware(cfg))
	{
		jobs.POST("/scrape", deps.JobHandler.TriggerScrape)
		jobs.POST("/settle", deps.JobHandler.TriggerSettle)
	}

	return router
}
