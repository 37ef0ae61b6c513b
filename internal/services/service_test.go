package services

import (
	"fmt"
	"testing"
	"time"

	"emberlink/internal/db"
	"emberlink/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the production schema.
// A single pooled connection keeps the database alive for the whole test and
// serializes concurrent transactions the way Postgres row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(conn))
	return conn
}

func newTestUser(t *testing.T, conn *gorm.DB, name string) *models.User {
	t.Helper()
	user := models.User{
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hash",
	}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

func newTestPost(t *testing.T, conn *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	post := models.Post{UserID: author.ID, Content: "hello"}
	require.NoError(t, conn.Create(&post).Error)
	return &post
}

func newTestComment(t *testing.T, conn *gorm.DB, post *models.Post, author *models.User, parentID *uint, createdAt time.Time) *models.Comment {
	t.Helper()
	comment := models.Comment{
		PostID:    post.ID,
		UserID:    author.ID,
		ParentID:  parentID,
		Content:   "a comment",
		CreatedAt: createdAt,
	}
	require.NoError(t, conn.Create(&comment).Error)
	return &comment
}

func testEngagement(conn *gorm.DB) *EngagementService {
	karma := NewKarmaService(conn)
	notify := NewNotificationService(conn)
	return NewEngagementService(conn, EngagementConfig{
		PostLikedPoints:    5,
		CommentLikedPoints: 1,
		LockTimeout:        3000,
	}, karma, notify)
}
