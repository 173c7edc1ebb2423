package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/doctorsportal/portal-server/internal/config"
	dbpkg "github.com/doctorsportal/portal-server/internal/db"
	"github.com/doctorsportal/portal-server/internal/middleware"
	"github.com/doctorsportal/portal-server/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter := middleware.NewRateLimiter(
			rdb,
			cfg.RateLimit,
			time.Duration(cfg.RateLimitWindow)*time.Second,
		)
		r.Use(limiter.Middleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "doctors portal server is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Doctors portal running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
