package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()

	if cfg.DBName != "doctorsPortal" {
		t.Errorf("DBName: got %q", cfg.DBName)
	}
	if cfg.ServerPort != "5000" {
		t.Errorf("ServerPort: got %q", cfg.ServerPort)
	}
	if cfg.Addr() != ":5000" {
		t.Errorf("Addr: got %q", cfg.Addr())
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr: got %q", cfg.RedisAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "nonsense")

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort: got %q", cfg.ServerPort)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("RateLimit: got %d", cfg.RateLimit)
	}
	if cfg.RateLimitWindow != 60 {
		t.Errorf("RateLimitWindow fallback: got %d", cfg.RateLimitWindow)
	}
}
