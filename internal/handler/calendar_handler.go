package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runlog-backend-go/internal/middleware"
	"github.com/runlog/runlog-backend-go/internal/service"
	"github.com/runlog/runlog-backend-go/pkg/response"
)

// CalendarHandler handles HTTP requests for the month intensity grid
type CalendarHandler struct {
	runService *service.RunService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(runService *service.RunService) *CalendarHandler {
	return &CalendarHandler{
		runService: runService,
	}
}

// GetCalendar handles GET /api/v1/runs/calendar
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.BadRequest(c, "Invalid year parameter")
		return
	}

	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.BadRequest(c, "Invalid month parameter, expected 1-12")
		return
	}

	grid := h.runService.Calendar(middleware.UserID(c), year, time.Month(monthNum))
	response.Success(c, gin.H{
		"year":  year,
		"month": monthNum,
		"days":  grid,
	})
}
