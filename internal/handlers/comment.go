package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/services"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	threads *services.ThreadService
}

func NewCommentHandler(threads *services.ThreadService) *CommentHandler {
	return &CommentHandler{threads: threads}
}

type createCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=5000"`
	ParentID *uint  `json:"parent_id"`
}

// Create adds a comment to a post, or a reply when parent_id is given.
func (h *CommentHandler) Create(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.threads.CreateComment(middleware.Actor(c), postID, req.ParentID, req.Content)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Delete removes the author's own comment. Replies survive and are promoted
// to root level in subsequent tree reads.
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID := utils.StringToUint(c.Param("id"))

	if err := h.threads.DeleteComment(middleware.Actor(c), commentID); err != nil {
		serviceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
