package services

import (
	"errors"
	"fmt"

	"emberlink/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementConfig carries the points-per-event table and the row-lock wait
// budget. Zero LockTimeout means the store's default.
type EngagementConfig struct {
	PostLikedPoints    int
	CommentLikedPoints int
	LockTimeout        int // milliseconds, Postgres only
}

// ToggleResult is the caller-visible outcome of a like toggle. Under a race
// between two toggles from the same actor, which call reports Liked=true
// depends on arrival order; the invariant is count consistency, not who won.
type ToggleResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// EngagementService owns the like/unlike toggle. All three writes of a like
// (the Like row, the counter bump, the karma event) happen in one
// transaction; there is no hook or event bus in between.
type EngagementService struct {
	cfg    EngagementConfig
	db     *gorm.DB
	karma  *KarmaService
	notify *NotificationService
}

func NewEngagementService(db *gorm.DB, cfg EngagementConfig, karma *KarmaService, notify *NotificationService) *EngagementService {
	return &EngagementService{cfg: cfg, db: db, karma: karma, notify: notify}
}

// ToggleLike flips the (actor, target) like state and returns the new state
// plus the target's like count.
//
// Protocol: lock the target row, then INSERT ... ON CONFLICT DO NOTHING the
// Like row. One inserted row means this is a fresh like: bump the counter and
// append a karma event for the target's author. Zero rows means the actor
// already likes the target: delete the Like and decrement the counter,
// flooring at zero. The karma event is never reversed by an unlike.
//
// The row lock serializes concurrent toggles on the same target, so the
// counter always equals the number of active Like rows.
func (s *EngagementService) ToggleLike(actorID uint, targetType models.TargetType, targetID uint) (*ToggleResult, error) {
	var (
		result   ToggleResult
		authorID uint
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" && s.cfg.LockTimeout > 0 {
			if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.cfg.LockTimeout)).Error; err != nil {
				return err
			}
		}

		var likeCount int
		switch targetType {
		case models.TargetPost:
			var post models.Post
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, targetID).Error; err != nil {
				return translateLockError(err)
			}
			authorID, likeCount = post.UserID, post.LikeCount
		case models.TargetComment:
			var comment models.Comment
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&comment, targetID).Error; err != nil {
				return translateLockError(err)
			}
			authorID, likeCount = comment.UserID, comment.LikeCount
		default:
			return ErrBadTarget
		}

		like := models.Like{UserID: actorID, TargetType: targetType, TargetID: targetID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 1 {
			// Fresh like.
			result = ToggleResult{Liked: true, LikeCount: likeCount + 1}
			if err := s.updateLikeCount(tx, targetType, targetID, result.LikeCount); err != nil {
				return err
			}
			kind, points := models.KarmaPostLiked, s.cfg.PostLikedPoints
			if targetType == models.TargetComment {
				kind, points = models.KarmaCommentLiked, s.cfg.CommentLikedPoints
			}
			return s.karma.RecordTx(tx, authorID, kind, targetID, points)
		}

		// The unique index swallowed the insert: this actor already likes the
		// target, so this call is an unlike. The karma event from the original
		// like stays on the ledger.
		if err := tx.Where("user_id = ? AND target_type = ? AND target_id = ?",
			actorID, targetType, targetID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		newCount := likeCount
		if newCount > 0 {
			newCount--
		}
		result = ToggleResult{Liked: false, LikeCount: newCount}
		return s.updateLikeCount(tx, targetType, targetID, newCount)
	})
	if err != nil {
		return nil, err
	}

	if result.Liked && actorID != authorID {
		s.notify.LikeReceived(authorID, actorID, targetType, targetID)
	}
	return &result, nil
}

func (s *EngagementService) updateLikeCount(tx *gorm.DB, targetType models.TargetType, targetID uint, count int) error {
	model := interface{}(&models.Post{})
	if targetType == models.TargetComment {
		model = &models.Comment{}
	}
	return tx.Model(model).Where("id = ?", targetID).UpdateColumn("like_count", count).Error
}

// translateLockError maps store-level failures of the locking SELECT to the
// service taxonomy: a missing row is NotFound, an exhausted lock wait budget
// (Postgres SQLSTATE 55P03) is the retryable ErrLockTimeout.
func translateLockError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
		return ErrLockTimeout
	}
	return err
}
