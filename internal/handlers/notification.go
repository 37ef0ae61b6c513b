package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/services"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notify *services.NotificationService
}

func NewNotificationHandler(notify *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notify: notify}
}

// List returns the actor's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	notifications, err := h.notify.ListFor(actor, 50)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	unread, err := h.notify.UnreadCount(actor)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// Read marks a single notification as read.
func (h *NotificationHandler) Read(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := h.notify.MarkRead(middleware.Actor(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReadAll marks all of the actor's notifications as read.
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	if err := h.notify.MarkAllRead(middleware.Actor(c)); err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}
