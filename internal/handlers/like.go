package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/models"
	"emberlink/internal/services"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	engagement *services.EngagementService
}

func NewLikeHandler(engagement *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagement: engagement}
}

// LikePost toggles the actor's like on a post.
func (h *LikeHandler) LikePost(c *gin.Context) {
	h.toggle(c, models.TargetPost)
}

// LikeComment toggles the actor's like on a comment.
func (h *LikeHandler) LikeComment(c *gin.Context) {
	h.toggle(c, models.TargetComment)
}

func (h *LikeHandler) toggle(c *gin.Context, targetType models.TargetType) {
	targetID := utils.StringToUint(c.Param("id"))

	result, err := h.engagement.ToggleLike(middleware.Actor(c), targetType, targetID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
