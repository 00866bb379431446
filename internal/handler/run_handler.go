package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runlog-backend-go/internal/activity"
	"github.com/runlog/runlog-backend-go/internal/middleware"
	"github.com/runlog/runlog-backend-go/internal/models"
	"github.com/runlog/runlog-backend-go/internal/service"
	"github.com/runlog/runlog-backend-go/pkg/response"
)

// RunHandler handles HTTP requests for run history
type RunHandler struct {
	runService *service.RunService
}

// NewRunHandler creates a new run handler
func NewRunHandler(runService *service.RunService) *RunHandler {
	return &RunHandler{
		runService: runService,
	}
}

// Sync handles POST /api/v1/runs/sync
func (h *RunHandler) Sync(c *gin.Context) {
	result, err := h.runService.Sync(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrNoUser):
			response.Unauthorized(c, "No resolvable user id")
		case errors.Is(err, service.ErrStaleSync):
			response.Conflict(c, "Sync superseded by a newer request")
		default:
			response.BadGateway(c, err.Error())
		}
		return
	}

	response.Success(c, result)
}

// ListRuns handles GET /api/v1/runs
func (h *RunHandler) ListRuns(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	runs := h.runService.Runs(middleware.UserID(c), filter)
	response.Success(c, gin.H{
		"runs":  runs,
		"count": len(runs),
	})
}

// parseFilter reads the type query parameter, rejecting unknown values.
func parseFilter(c *gin.Context) (models.RunFilter, bool) {
	switch f := models.RunFilter(c.DefaultQuery("type", "all")); f {
	case models.FilterAll, models.FilterOutdoor, models.FilterIndoor:
		return f, true
	default:
		response.BadRequest(c, "Invalid type parameter, expected all, outdoor, or indoor")
		return "", false
	}
}
