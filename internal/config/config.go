package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the bot.
type Config struct {
	BotToken      string
	AdminID       int64
	DatabaseURL   string
	StatsInterval time.Duration
	LogLevel      string
}

// Load reads configuration from a .env file (if present) and environment
// variables. BOT_TOKEN and ADMIN_ID are required.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BotToken:      strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		StatsInterval: parseInterval(strings.TrimSpace(os.Getenv("STATS_INTERVAL_HOURS"))),
		LogLevel:      strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "bot.db"
	}

	if cfg.BotToken == "" {
		return cfg, fmt.Errorf("BOT_TOKEN is required")
	}

	rawAdmin := strings.TrimSpace(os.Getenv("ADMIN_ID"))
	if rawAdmin == "" {
		return cfg, fmt.Errorf("ADMIN_ID is required")
	}
	adminID, err := strconv.ParseInt(rawAdmin, 10, 64)
	if err != nil || adminID == 0 {
		return cfg, fmt.Errorf("ADMIN_ID must be a Telegram user id, got %q", rawAdmin)
	}
	cfg.AdminID = adminID

	return cfg, nil
}

// parseInterval converts an hour count into a duration; zero disables the digest.
func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
