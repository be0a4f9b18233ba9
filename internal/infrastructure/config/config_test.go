package config_test

import (
	"testing"
	"time"

	"github.com/iho/paisa/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("API_KEY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StorageDriver != config.DriverSQLite {
		t.Fatalf("expected default sqlite driver, got %q", cfg.StorageDriver)
	}

	if cfg.AdvisorEnabled() {
		t.Fatalf("expected advisor disabled without API key")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.TipsCacheTTL != 6*time.Hour {
		t.Fatalf("expected default tips TTL 6h, got %s", cfg.TipsCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("API_KEY", "secret")
	t.Setenv("ADVISORY_RATE_LIMIT", "0.5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StorageDriver != config.DriverRedis {
		t.Fatalf("expected redis driver, got %s", cfg.StorageDriver)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.AITimeout != 5*time.Second {
		t.Fatalf("expected AI timeout override, got %s", cfg.AITimeout)
	}

	if !cfg.AdvisorEnabled() {
		t.Fatalf("expected advisor enabled with API key")
	}

	if cfg.AdvisoryRateLimit != 0.5 {
		t.Fatalf("expected rate limit 0.5, got %v", cfg.AdvisoryRateLimit)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongodb")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"memory driver", func(c *config.Config) { c.StorageDriver = config.DriverMemory }, false},
		{"zero burst", func(c *config.Config) { c.AdvisoryRateBurst = 0 }, true},
		{"zero cache size", func(c *config.Config) { c.TipsCacheSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &config.Config{
				StorageDriver:     config.DriverPostgres,
				AdvisoryRateLimit: 1,
				AdvisoryRateBurst: 1,
				TipsCacheSize:     1,
			}
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
