package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_MODEL_ID", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.GeminiModelID != "gemini-2.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
	if cfg.BookingWindowDays != 14 {
		t.Fatalf("expected default booking window, got %d", cfg.BookingWindowDays)
	}
	if !cfg.SeedDemoData {
		t.Fatalf("expected demo data seeding enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("BOOKING_WINDOW_DAYS", "30")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://medagendar.com, https://app.medagendar.com")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls override")
	}
	if cfg.BookingWindowDays != 30 {
		t.Fatalf("expected booking window override, got %d", cfg.BookingWindowDays)
	}
	if cfg.SeedDemoData {
		t.Fatalf("expected demo data seeding disabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://app.medagendar.com" {
		t.Fatalf("expected parsed cors origins, got %v", cfg.CORSAllowedOrigins)
	}
}
