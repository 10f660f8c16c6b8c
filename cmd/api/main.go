package main

import (
	"log"
	"net/http"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/config"
	dbpkg "github.com/MaisonCoiffure01/salon-scheduler/internal/db"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/middleware"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/reminder"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opt)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	reminder.New(db, cfg).StartScheduler()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
