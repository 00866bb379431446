package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runlog-backend-go/internal/config"
	"github.com/runlog/runlog-backend-go/internal/handler"
	"github.com/runlog/runlog-backend-go/internal/middleware"
	"github.com/runlog/runlog-backend-go/internal/service"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, runService *service.RunService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "RunLog Backend API is running",
		})
	})

	runHandler := handler.NewRunHandler(runService)
	statsHandler := handler.NewStatsHandler(runService)
	calendarHandler := handler.NewCalendarHandler(runService)
	badgeHandler := handler.NewBadgeHandler(runService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		runs := api.Group("/runs")
		{
			runs.POST("/sync", runHandler.Sync)
			runs.GET("", runHandler.ListRuns)
			runs.GET("/statistics", statsHandler.GetStatistics)
			runs.GET("/calendar", calendarHandler.GetCalendar)
		}

		api.GET("/badges", badgeHandler.ListBadges)
	}

	return r
}
