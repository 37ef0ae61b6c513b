package main

import (
	"log"

	"emberlink/internal/config"
	"emberlink/internal/db"
	"emberlink/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	r := gin.Default()
	router.RegisterRoutes(r, cfg, conn)

	log.Printf("Emberlink server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
