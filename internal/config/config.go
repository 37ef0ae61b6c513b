package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment, including
// the points-per-event table. The point values are constants in spirit but
// overridable so a deployment can retune karma without a rebuild.
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTExpiry   time.Duration

	PostLikedPoints    int
	CommentLikedPoints int

	LockTimeout    time.Duration // row-lock wait budget for like toggles
	LeaderboardTTL time.Duration // cache lifetime for leaderboard reads
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	return &Config{
		DatabaseURL:        envString("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=emberlink port=5432 sslmode=disable"),
		Port:               envString("PORT", "8080"),
		JWTSecret:          envString("JWT_SECRET", "secret_key_change_me"),
		JWTExpiry:          envDuration("JWT_EXPIRY", 24*time.Hour),
		PostLikedPoints:    envInt("KARMA_POST_LIKED_POINTS", 5),
		CommentLikedPoints: envInt("KARMA_COMMENT_LIKED_POINTS", 1),
		LockTimeout:        envDuration("LOCK_TIMEOUT", 3*time.Second),
		LeaderboardTTL:     envDuration("LEADERBOARD_CACHE_TTL", 30*time.Second),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return i
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
