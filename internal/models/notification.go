package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypePostLiked    NotificationType = "post_liked"
	NotificationTypeCommentLiked NotificationType = "comment_liked"
	NotificationTypeNewComment   NotificationType = "new_comment"
	NotificationTypeNewReply     NotificationType = "new_reply"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // receiver
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ActorID   *uint            `gorm:"index" json:"actor_id"` // sender
	Actor     User             `gorm:"foreignKey:ActorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"actor"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	TargetID  uint             `json:"target_id"` // liked/commented post or comment
	Message   string           `gorm:"type:text" json:"message"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
