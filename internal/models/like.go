package models

import (
	"time"
)

type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

// Like is "actor currently likes target". The composite unique index is what
// makes the toggle race-safe: concurrent likes for the same (actor, target)
// collapse to a single row at the database level.
type Like struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_likes_actor_target;index" json:"user_id"`
	TargetType TargetType `gorm:"type:varchar(10);not null;uniqueIndex:idx_likes_actor_target;index:idx_likes_target" json:"target_type"`
	TargetID   uint       `gorm:"not null;uniqueIndex:idx_likes_actor_target;index:idx_likes_target" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
