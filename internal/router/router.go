package router

import (
	"emberlink/internal/config"
	"emberlink/internal/handlers"
	"emberlink/internal/middleware"
	"emberlink/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires services and handlers onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	// Services
	karma := services.NewKarmaService(db)
	notify := services.NewNotificationService(db)
	engagement := services.NewEngagementService(db, services.EngagementConfig{
		PostLikedPoints:    cfg.PostLikedPoints,
		CommentLikedPoints: cfg.CommentLikedPoints,
		LockTimeout:        int(cfg.LockTimeout.Milliseconds()),
	}, karma, notify)
	threads := services.NewThreadService(db, notify)
	leaderboard := services.NewLeaderboardService(db, cfg.LeaderboardTTL)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	postHandler := handlers.NewPostHandler(db, threads)
	commentHandler := handlers.NewCommentHandler(threads)
	likeHandler := handlers.NewLikeHandler(engagement)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboard)
	userHandler := handlers.NewUserHandler(db, karma)
	notificationHandler := handlers.NewNotificationHandler(notify)

	api := r.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Protected routes
	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authorized.GET("/auth/me", authHandler.Me)

		authorized.POST("/posts", postHandler.Create)
		authorized.GET("/posts", postHandler.List)
		authorized.GET("/posts/:id/comments", postHandler.Comments)
		authorized.POST("/posts/:id/comments", commentHandler.Create)
		authorized.POST("/posts/:id/like", likeHandler.LikePost)

		authorized.DELETE("/comments/:id", commentHandler.Delete)
		authorized.POST("/comments/:id/like", likeHandler.LikeComment)

		authorized.GET("/leaderboard", leaderboardHandler.Top)
		authorized.GET("/users/:id/karma", userHandler.Karma)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
	}
}
