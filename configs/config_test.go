package configs

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	if cfg.Port == "" {
		t.Fatalf("expected a default port")
	}
	if cfg.JWTTTL <= 0 {
		t.Fatalf("expected a positive jwt ttl")
	}
	if cfg.SubscriberExpiry != 10*time.Minute {
		t.Fatalf("expected 10m subscriber expiry, got %v", cfg.SubscriberExpiry)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SUBSCRIBER_EXPIRY_MINUTES", "2")

	cfg := LoadConfig()
	if cfg.Port != "9999" {
		t.Fatalf("expected env port, got %s", cfg.Port)
	}
	if cfg.SubscriberExpiry != 2*time.Minute {
		t.Fatalf("expected 2m subscriber expiry, got %v", cfg.SubscriberExpiry)
	}
}
