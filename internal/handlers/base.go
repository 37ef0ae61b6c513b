package handlers

import (
	"errors"
	"net/http"

	"emberlink/internal/services"

	"github.com/gin-gonic/gin"
)

// JSONError writes the standard error envelope.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// serviceError maps the service taxonomy onto HTTP statuses. Lock timeouts
// come back as 409 so clients know the call is retryable.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrLockTimeout):
		JSONError(c, http.StatusConflict, "contention on target, retry")
	case errors.Is(err, services.ErrInvalidParent):
		JSONError(c, http.StatusBadRequest, "parent comment belongs to a different post")
	case errors.Is(err, services.ErrForbidden):
		JSONError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrBadTarget):
		JSONError(c, http.StatusBadRequest, "unknown target type")
	default:
		JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
