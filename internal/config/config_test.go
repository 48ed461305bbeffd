package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_PATH", "DB_MAX_OPEN_CONNS", "DB_PING_TIMEOUT", "HTTP_ADDR", "CORS_ALLOWED_ORIGINS", "FORMANCE_STACK_URL", "CURRENCY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Path != "driveledger.db" {
		t.Errorf("Expected default path driveledger.db, got %s", cfg.Database.Path)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Expected 25 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.PingTimeout != 5*time.Second {
		t.Errorf("Expected 5s ping timeout, got %v", cfg.Database.PingTimeout)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Formance.Enabled() {
		t.Error("Expected Formance mirror to be disabled by default")
	}
	if cfg.Formance.Currency != "USD" {
		t.Errorf("Expected USD, got %s", cfg.Formance.Currency)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/dealer.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("HTTP_WRITE_TIMEOUT", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("FORMANCE_STACK_URL", "https://stack.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/dealer.db" {
		t.Errorf("Expected overridden path, got %s", cfg.Database.Path)
	}
	if cfg.Database.MaxOpenConns != 3 {
		t.Errorf("Expected 3 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Server.WriteTimeout != time.Minute {
		t.Errorf("Expected 1m write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("Unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if !cfg.Formance.Enabled() {
		t.Error("Expected Formance mirror to be enabled")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("DB_PING_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid duration")
	}
}

func TestGetEnvInt_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")

	if got := getEnvInt("DB_MAX_IDLE_CONNS", 5); got != 5 {
		t.Errorf("Expected fallback 5, got %d", got)
	}
}
