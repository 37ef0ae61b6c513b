package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"emberlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikePost(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)

	author := newTestUser(t, conn, "author")
	liker := newTestUser(t, conn, "liker")
	post := newTestPost(t, conn, author)

	// First call likes.
	result, err := svc.ToggleLike(liker.ID, models.TargetPost, post.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	var refreshed models.Post
	require.NoError(t, conn.First(&refreshed, post.ID).Error)
	assert.Equal(t, 1, refreshed.LikeCount)

	var event models.KarmaEvent
	require.NoError(t, conn.Where("recipient_id = ?", author.ID).First(&event).Error)
	assert.Equal(t, models.KarmaPostLiked, event.Kind)
	assert.Equal(t, post.ID, event.SourceID)
	assert.Equal(t, 5, event.Points)

	// Second call from the same actor unlikes.
	result, err = svc.ToggleLike(liker.ID, models.TargetPost, post.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikeCount)

	var likes int64
	conn.Model(&models.Like{}).Where("target_type = ? AND target_id = ?", models.TargetPost, post.ID).Count(&likes)
	assert.EqualValues(t, 0, likes)
}

func TestToggleLikeCommentPoints(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)

	author := newTestUser(t, conn, "author")
	liker := newTestUser(t, conn, "liker")
	post := newTestPost(t, conn, author)
	comment := newTestComment(t, conn, post, author, nil, time.Now())

	result, err := svc.ToggleLike(liker.ID, models.TargetComment, comment.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	var event models.KarmaEvent
	require.NoError(t, conn.Where("recipient_id = ?", author.ID).First(&event).Error)
	assert.Equal(t, models.KarmaCommentLiked, event.Kind)
	assert.Equal(t, 1, event.Points)
}

func TestToggleLikeMissingTarget(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)
	liker := newTestUser(t, conn, "liker")

	_, err := svc.ToggleLike(liker.ID, models.TargetPost, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ToggleLike(liker.ID, "story", 1)
	assert.ErrorIs(t, err, ErrBadTarget)
}

func TestUnlikeKeepsKarmaEvent(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)
	karma := NewKarmaService(conn)

	author := newTestUser(t, conn, "author")
	liker := newTestUser(t, conn, "liker")
	post := newTestPost(t, conn, author)

	_, err := svc.ToggleLike(liker.ID, models.TargetPost, post.ID)
	require.NoError(t, err)
	_, err = svc.ToggleLike(liker.ID, models.TargetPost, post.ID)
	require.NoError(t, err)

	// The like is gone but the ledger still remembers it.
	total, err := karma.SumSince(author.ID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	var events int64
	conn.Model(&models.KarmaEvent{}).Where("recipient_id = ?", author.ID).Count(&events)
	assert.EqualValues(t, 1, events)
}

func TestConcurrentDistinctActors(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)

	author := newTestUser(t, conn, "author")
	post := newTestPost(t, conn, author)

	const actors = 8
	ids := make([]uint, actors)
	for i := 0; i < actors; i++ {
		ids[i] = newTestUser(t, conn, fmt.Sprintf("actor%d", i)).ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, actors)
	for _, id := range ids {
		wg.Add(1)
		go func(actorID uint) {
			defer wg.Done()
			if _, err := svc.ToggleLike(actorID, models.TargetPost, post.ID); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent toggle failed: %v", err)
	}

	// No lost updates: counter matches the number of active likes exactly.
	var refreshed models.Post
	require.NoError(t, conn.First(&refreshed, post.ID).Error)
	assert.Equal(t, actors, refreshed.LikeCount)

	var likes, events int64
	conn.Model(&models.Like{}).Where("target_type = ? AND target_id = ?", models.TargetPost, post.ID).Count(&likes)
	conn.Model(&models.KarmaEvent{}).Where("recipient_id = ?", author.ID).Count(&events)
	assert.EqualValues(t, actors, likes)
	assert.EqualValues(t, actors, events)
}

func TestLikeCountFloorsAtZero(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)

	author := newTestUser(t, conn, "author")
	liker := newTestUser(t, conn, "liker")
	post := newTestPost(t, conn, author)

	// A pre-existing Like row with a counter that never saw it, so the unlike
	// branch runs against a zero count.
	require.NoError(t, conn.Create(&models.Like{
		UserID: liker.ID, TargetType: models.TargetPost, TargetID: post.ID,
	}).Error)

	result, err := svc.ToggleLike(liker.ID, models.TargetPost, post.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikeCount)
}

func TestLikeNotifiesAuthor(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)

	author := newTestUser(t, conn, "author")
	liker := newTestUser(t, conn, "liker")
	post := newTestPost(t, conn, author)

	_, err := svc.ToggleLike(liker.ID, models.TargetPost, post.ID)
	require.NoError(t, err)

	var n models.Notification
	require.NoError(t, conn.Where("user_id = ?", author.ID).First(&n).Error)
	assert.Equal(t, models.NotificationTypePostLiked, n.Type)
	assert.Equal(t, liker.ID, *n.ActorID)

	// Liking your own post creates no notification.
	_, err = svc.ToggleLike(author.ID, models.TargetPost, post.ID)
	require.NoError(t, err)
	var count int64
	conn.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

// Five distinct actors like one post within the hour: the counter reads 5,
// the author's 24h karma includes 25 points, and the 24h leaderboard places
// the author at 25 or more.
func TestEngagementScenario(t *testing.T) {
	conn := newTestDB(t)
	svc := testEngagement(conn)
	karma := NewKarmaService(conn)
	leaderboard := NewLeaderboardService(conn, 0)

	author := newTestUser(t, conn, "author")
	post := newTestPost(t, conn, author)

	for _, name := range []string{"u1", "u2", "u3", "u4", "u5"} {
		u := newTestUser(t, conn, name)
		result, err := svc.ToggleLike(u.ID, models.TargetPost, post.ID)
		require.NoError(t, err)
		require.True(t, result.Liked)
	}

	var refreshed models.Post
	require.NoError(t, conn.First(&refreshed, post.ID).Error)
	assert.Equal(t, 5, refreshed.LikeCount)

	sum, err := karma.SumSince(author.ID, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 25, sum)

	entries, err := leaderboard.Top(5, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, author.ID, entries[0].ActorID)
	assert.GreaterOrEqual(t, entries[0].Points, 25)
}
