package services

import (
	"fmt"
	"log"

	"emberlink/internal/models"

	"gorm.io/gorm"
)

// NotificationService writes and reads in-app notification rows. Creation is
// best-effort: a failed notification is logged, never propagated, since it
// must not fail the engagement write that triggered it.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// LikeReceived notifies a content author that someone liked their post or
// comment. Called after the toggle transaction commits.
func (s *NotificationService) LikeReceived(authorID, actorID uint, targetType models.TargetType, targetID uint) {
	ntype := models.NotificationTypePostLiked
	if targetType == models.TargetComment {
		ntype = models.NotificationTypeCommentLiked
	}
	s.create(models.Notification{
		UserID:   authorID,
		ActorID:  &actorID,
		Type:     ntype,
		TargetID: targetID,
		Message:  fmt.Sprintf("Your %s was liked", targetType),
	})
}

// CommentReceived notifies a post author of a new comment, or a comment
// author of a new reply.
func (s *NotificationService) CommentReceived(recipientID, actorID uint, ntype models.NotificationType, postID uint) {
	message := "New comment on your post"
	if ntype == models.NotificationTypeNewReply {
		message = "New reply to your comment"
	}
	s.create(models.Notification{
		UserID:   recipientID,
		ActorID:  &actorID,
		Type:     ntype,
		TargetID: postID,
		Message:  message,
	})
}

func (s *NotificationService) create(n models.Notification) {
	if err := s.db.Create(&n).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", n.UserID, err)
	}
}

// ListFor returns the receiver's notifications, newest first.
func (s *NotificationService) ListFor(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Preload("Actor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead marks one of the receiver's notifications as read.
func (s *NotificationService) MarkRead(userID, notificationID uint) error {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification for the receiver as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// UnreadCount returns the receiver's number of unread notifications.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
