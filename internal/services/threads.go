package services

import (
	"errors"

	"emberlink/internal/models"
	"emberlink/internal/utils"

	"gorm.io/gorm"
)

// CommentNode is one comment plus its direct replies, ordered by creation
// time. ContentHTML is the sanitized rendering of the markdown content.
type CommentNode struct {
	models.Comment
	ContentHTML string         `json:"content_html"`
	Replies     []*CommentNode `json:"replies"`
}

// ThreadService reconstructs comment trees and owns comment creation and
// deletion. Deletion policy is orphan-and-promote: removing a comment leaves
// its descendants in place, and the tree builder surfaces them at root level.
type ThreadService struct {
	db     *gorm.DB
	notify *NotificationService
}

func NewThreadService(db *gorm.DB, notify *NotificationService) *ThreadService {
	return &ThreadService{db: db, notify: notify}
}

// CommentTree returns the post and its full nested comment tree. Cost is one
// post fetch plus one comment fetch regardless of depth or breadth; the tree
// is assembled in two passes over the flat, time-ordered result.
//
// A comment whose parent is missing from the result set (parent deleted) is
// promoted to root level rather than dropped or treated as an error.
func (s *ThreadService) CommentTree(postID uint) (*models.Post, []*CommentNode, error) {
	var post models.Post
	if err := s.db.Preload("User").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var comments []models.Comment
	if err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, nil, err
	}

	// First pass: index every comment by id.
	nodes := make(map[uint]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{
			Comment:     comments[i],
			ContentHTML: utils.RenderMarkdown(comments[i].Content),
			Replies:     []*CommentNode{},
		}
	}

	// Second pass: wire children to parents. Input order is chronological, so
	// every Replies slice comes out ordered by created_at as well.
	roots := make([]*CommentNode, 0)
	for i := range comments {
		node := nodes[comments[i].ID]
		if pid := comments[i].ParentID; pid != nil {
			if parent, ok := nodes[*pid]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
			// Dangling parent reference: promote to root.
		}
		roots = append(roots, node)
	}

	return &post, roots, nil
}

// CreateComment adds a comment or reply and bumps the post's denormalized
// comment count in the same transaction. A reply's parent must be a comment
// on the same post.
func (s *ThreadService) CreateComment(actorID, postID uint, parentID *uint, content string) (*models.Comment, error) {
	var (
		comment  models.Comment
		notifyID uint
		ntype    models.NotificationType
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		notifyID, ntype = post.UserID, models.NotificationTypeNewComment

		if parentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if parent.PostID != postID {
				return ErrInvalidParent
			}
			notifyID, ntype = parent.UserID, models.NotificationTypeNewReply
		}

		comment = models.Comment{
			PostID:   postID,
			UserID:   actorID,
			ParentID: parentID,
			Content:  content,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	if notifyID != actorID {
		s.notify.CommentReceived(notifyID, actorID, ntype, postID)
	}
	return &comment, nil
}

// DeleteComment removes a single comment row. Replies are kept and show up at
// root level on the next tree build (orphan-and-promote). Only the author may
// delete.
func (s *ThreadService) DeleteComment(actorID, commentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if comment.UserID != actorID {
			return ErrForbidden
		}
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ? AND comment_count > 0", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
	})
}
