package models

import (
	"time"
)

type KarmaEventKind string

const (
	KarmaPostLiked    KarmaEventKind = "post_liked"
	KarmaCommentLiked KarmaEventKind = "comment_liked"
	KarmaAdjustment   KarmaEventKind = "adjustment" // admin correction, appended never edited
)

// KarmaEvent is the append-only reputation ledger. Rows are never updated or
// deleted; a recipient's karma over any window is the sum of matching rows.
// Unliking does not remove the event the like created.
type KarmaEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RecipientID uint           `gorm:"not null;index:idx_karma_recipient_created" json:"recipient_id"`
	Recipient   User           `gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Kind        KarmaEventKind `gorm:"type:varchar(20);not null" json:"kind"`
	SourceID    uint           `gorm:"not null" json:"source_id"` // id of the liked post/comment
	Points      int            `gorm:"not null" json:"points"`
	CreatedAt   time.Time      `gorm:"index;index:idx_karma_recipient_created" json:"created_at"`
}
