package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/runlog/runlog-backend-go/internal/middleware"
	"github.com/runlog/runlog-backend-go/internal/service"
	"github.com/runlog/runlog-backend-go/pkg/response"
)

// BadgeHandler handles HTTP requests for achievement badges
type BadgeHandler struct {
	runService *service.RunService
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(runService *service.RunService) *BadgeHandler {
	return &BadgeHandler{
		runService: runService,
	}
}

// ListBadges handles GET /api/v1/badges
func (h *BadgeHandler) ListBadges(c *gin.Context) {
	badges := h.runService.Badges(middleware.UserID(c))

	earned := 0
	for _, b := range badges {
		if b.IsEarned {
			earned++
		}
	}

	response.Success(c, gin.H{
		"badges": badges,
		"earned": earned,
	})
}
