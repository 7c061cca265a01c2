package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_RequiresTokenAndAdmin(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("ADMIN_ID", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "BOT_TOKEN") {
		t.Fatalf("expected BOT_TOKEN error, got %v", err)
	}

	t.Setenv("BOT_TOKEN", "123:abc")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ADMIN_ID") {
		t.Fatalf("expected ADMIN_ID error, got %v", err)
	}

	t.Setenv("ADMIN_ID", "not-a-number")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ADMIN_ID") {
		t.Fatalf("expected ADMIN_ID parse error, got %v", err)
	}
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "777")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STATS_INTERVAL_HOURS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AdminID != 777 {
		t.Fatalf("AdminID = %d, want 777", cfg.AdminID)
	}
	if cfg.DatabaseURL != "bot.db" {
		t.Fatalf("DatabaseURL = %q, want bot.db", cfg.DatabaseURL)
	}
	if cfg.StatsInterval != 0 {
		t.Fatalf("StatsInterval = %v, want disabled", cfg.StatsInterval)
	}

	t.Setenv("DATABASE_URL", "data/relay.db")
	t.Setenv("STATS_INTERVAL_HOURS", "6")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "data/relay.db" {
		t.Fatalf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.StatsInterval != 6*time.Hour {
		t.Fatalf("StatsInterval = %v, want 6h", cfg.StatsInterval)
	}
}

func TestParseInterval_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "zero", "-3", "0"} {
		if got := parseInterval(raw); got != 0 {
			t.Errorf("parseInterval(%q) = %v, want 0", raw, got)
		}
	}
	if got := parseInterval("2"); got != 2*time.Hour {
		t.Errorf("parseInterval(2) = %v, want 2h", got)
	}
}
