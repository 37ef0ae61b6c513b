package services

import (
	"time"

	"emberlink/internal/models"

	"gorm.io/gorm"
)

// KarmaService is the append-only reputation ledger. Events are written once
// and never updated or deleted; every read re-sums history, so there is no
// stored total that can drift. Corrections append compensating events.
type KarmaService struct {
	db *gorm.DB
}

func NewKarmaService(db *gorm.DB) *KarmaService {
	return &KarmaService{db: db}
}

// Record appends one event in its own transaction. Used for administrative
// adjustments; like-driven events go through RecordTx inside the toggle's
// transaction instead.
func (s *KarmaService) Record(recipientID uint, kind models.KarmaEventKind, sourceID uint, points int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.RecordTx(tx, recipientID, kind, sourceID, points)
	})
}

// RecordTx appends one event within the caller's transaction, so the event
// commits or rolls back together with the writes that justify it.
func (s *KarmaService) RecordTx(tx *gorm.DB, recipientID uint, kind models.KarmaEventKind, sourceID uint, points int) error {
	event := models.KarmaEvent{
		RecipientID: recipientID,
		Kind:        kind,
		SourceID:    sourceID,
		Points:      points,
	}
	return tx.Create(&event).Error
}

// SumSince returns the recipient's total points for events created at or
// after since.
func (s *KarmaService) SumSince(recipientID uint, since time.Time) (int, error) {
	var total int64
	err := s.db.Model(&models.KarmaEvent{}).
		Select("COALESCE(SUM(points), 0)").
		Where("recipient_id = ? AND created_at >= ?", recipientID, since).
		Scan(&total).Error
	return int(total), err
}

// Total returns the recipient's all-time karma.
func (s *KarmaService) Total(recipientID uint) (int, error) {
	var total int64
	err := s.db.Model(&models.KarmaEvent{}).
		Select("COALESCE(SUM(points), 0)").
		Where("recipient_id = ?", recipientID).
		Scan(&total).Error
	return int(total), err
}
