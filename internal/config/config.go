package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	DBName     string
	ServerPort string

	// Redis is optional; the rate limiter is skipped when RedisAddr is empty.
	RedisAddr       string
	RateLimit       int
	RateLimitWindow int // seconds
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("DB_NAME", "doctorsPortal"),
		ServerPort:      getEnv("PORT", "5000"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RateLimit:       getEnvInt("RATE_LIMIT", 120),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
