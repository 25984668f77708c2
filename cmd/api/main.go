package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/db"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/routes"
	"github.com/barberbook/barberbook-api/internal/storage"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)
	rdb := middleware.NewRedisClient(cfg)

	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		store = storage.NewS3Store(cfg)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg, rdb, store)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
