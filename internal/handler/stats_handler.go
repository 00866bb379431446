package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runlog-backend-go/internal/middleware"
	"github.com/runlog/runlog-backend-go/internal/service"
	"github.com/runlog/runlog-backend-go/pkg/response"
)

const dateLayout = "2006-01-02"

// StatsHandler handles HTTP requests for aggregate statistics
type StatsHandler struct {
	runService *service.RunService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(runService *service.RunService) *StatsHandler {
	return &StatsHandler{
		runService: runService,
	}
}

// GetStatistics handles GET /api/v1/runs/statistics
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	var from, to time.Time
	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			response.BadRequest(c, "Invalid from parameter, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse(dateLayout, s)
		if err != nil {
			response.BadRequest(c, "Invalid to parameter, expected YYYY-MM-DD")
			return
		}
		// Inclusive: extend to the end of the day.
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	stats := h.runService.Stats(middleware.UserID(c), filter, from, to)
	response.Success(c, stats)
}
