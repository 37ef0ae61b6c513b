package handlers

import (
	"net/http"
	"time"

	"emberlink/internal/services"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultLeaderboardWindow = 24 * time.Hour
	defaultLeaderboardSize   = 5
	maxLeaderboardSize       = 100
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Top returns the top-K actors by karma accrued in the trailing window.
// window accepts Go duration syntax ("24h", "30m"); limit caps at 100.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	window := defaultLeaderboardWindow
	if w := c.Query("window"); w != "" {
		parsed, err := time.ParseDuration(w)
		if err != nil || parsed <= 0 {
			JSONError(c, http.StatusBadRequest, "invalid window")
			return
		}
		window = parsed
	}

	limit := defaultLeaderboardSize
	if l := c.Query("limit"); l != "" {
		limit = utils.StringToInt(l)
		if limit < 1 || limit > maxLeaderboardSize {
			JSONError(c, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	entries, err := h.leaderboard.Top(limit, window)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":      window.String(),
		"leaderboard": entries,
	})
}
