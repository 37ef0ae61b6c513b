package handlers

import (
	"net/http"

	"emberlink/internal/middleware"
	"emberlink/internal/models"
	"emberlink/internal/services"
	"emberlink/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	db      *gorm.DB
	threads *services.ThreadService
}

func NewPostHandler(db *gorm.DB, threads *services.ThreadService) *PostHandler {
	return &PostHandler{db: db, threads: threads}
}

type createPostRequest struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	post := models.Post{
		UserID:  middleware.Actor(c),
		Content: req.Content,
	}
	if err := h.db.Create(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List returns posts newest first, paginated.
func (h *PostHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := 30
	offset := (page - 1) * perPage

	var total int64
	h.db.Model(&models.Post{}).Count(&total)

	var posts []models.Post
	if err := h.db.Preload("User").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&posts).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page":  page,
		"total": total,
	})
}

// Comments returns the post plus its full nested comment tree.
func (h *PostHandler) Comments(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	post, tree, err := h.threads.CommentTree(postID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": tree,
	})
}
