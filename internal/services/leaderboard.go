package services

import (
	"fmt"
	"log"
	"time"

	"emberlink/internal/models"
	"emberlink/internal/utils"

	"gorm.io/gorm"
)

// LeaderboardEntry is one row of the windowed ranking.
type LeaderboardEntry struct {
	ActorID  uint   `gorm:"column:recipient_id" json:"actor_id"`
	Username string `gorm:"column:username" json:"username"`
	Points   int    `gorm:"column:points" json:"points"`
}

// LeaderboardService computes top-K actors by karma accrued within a sliding
// window. The whole computation is a single grouped aggregate over the
// ledger; there is no per-actor iteration. Results are cached briefly because
// the leaderboard is polled, not pushed.
type LeaderboardService struct {
	db    *gorm.DB
	cache *utils.TTLCache
	ttl   time.Duration
}

// NewLeaderboardService builds the service. ttl <= 0 disables caching.
func NewLeaderboardService(db *gorm.DB, ttl time.Duration) *LeaderboardService {
	var cache *utils.TTLCache
	if ttl > 0 {
		var err error
		cache, err = utils.NewTTLCache(128)
		if err != nil {
			log.Printf("leaderboard cache disabled: %v", err)
		}
	}
	return &LeaderboardService{db: db, cache: cache, ttl: ttl}
}

// Top returns up to k actors ordered by points accrued in
// [now-window, now), descending. Ties break on ascending actor id so
// repeated reads are deterministic.
func (s *LeaderboardService) Top(k int, window time.Duration) ([]LeaderboardEntry, error) {
	key := fmt.Sprintf("leaderboard:%d:%s", k, window)
	if s.cache != nil {
		if cached := s.cache.Get(key); cached != nil {
			return cached.([]LeaderboardEntry), nil
		}
	}

	since := time.Now().Add(-window)
	entries := make([]LeaderboardEntry, 0, k)
	err := s.db.Model(&models.KarmaEvent{}).
		Select("karma_events.recipient_id, users.username, SUM(karma_events.points) AS points").
		Joins("JOIN users ON users.id = karma_events.recipient_id").
		Where("karma_events.created_at >= ?", since).
		Group("karma_events.recipient_id, users.username").
		Order("points DESC, karma_events.recipient_id ASC").
		Limit(k).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, entries, s.ttl)
	}
	return entries, nil
}
