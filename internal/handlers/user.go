package handlers

import (
	"errors"
	"net/http"
	"time"

	"emberlink/internal/middleware"
	"emberlink/internal/models"
	"emberlink/internal/services"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	db    *gorm.DB
	karma *services.KarmaService
}

func NewUserHandler(db *gorm.DB, karma *services.KarmaService) *UserHandler {
	return &UserHandler{db: db, karma: karma}
}

// Karma returns a user's karma over the trailing 24 hours plus all time.
// Route: /users/:id/karma, or the caller's own with id "me".
func (h *UserHandler) Karma(c *gin.Context) {
	var userID uint
	if id := c.Param("id"); id == "me" {
		userID = middleware.Actor(c)
	} else {
		userID = utils.StringToUint(id)
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "not found")
			return
		}
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	karma24h, err := h.karma.SumSince(userID, time.Now().Add(-24*time.Hour))
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}
	total, err := h.karma.Total(userID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"karma_24h":   karma24h,
		"total_karma": total,
	})
}
