package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	Port            string
	DatabaseURL     string
	DataPath        string
	JWTSecret       string
	APIMasterSecret string
	AdminUsername   string
	AdminPassword   string
	LogLevel        string
	Environment     string
	GinMode         string
	StrictOffDays   bool
	WeekdayNames    [7]string
}

// LoadEnv loads the first .env found in the working directory or its parents.
// Existing environment variables are not overridden.
func LoadEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	LoadEnv()

	cfg := &AppConfig{
		Port:            getenv("PORT", "8000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DataPath:        getenv("DATA_PATH", "roster_api.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		APIMasterSecret: os.Getenv("API_MASTER_SECRET"),
		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
		LogLevel:        strings.ToLower(getenv("LOG_LEVEL", "info")),
		Environment:     strings.ToLower(getenv("ENVIRONMENT", "development")),
		GinMode:         os.Getenv("GIN_MODE"),
		WeekdayNames:    calendar.DefaultWeekdayNames,
	}

	if v := os.Getenv("STRICT_OFF_DAYS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STRICT_OFF_DAYS: %w", err)
		}
		cfg.StrictOffDays = strict
	}

	if v := os.Getenv("WEEKDAY_NAMES"); v != "" {
		names := strings.Split(v, ",")
		if len(names) != 7 {
			return nil, fmt.Errorf("invalid WEEKDAY_NAMES: expected 7 names, got %d", len(names))
		}
		for i, n := range names {
			cfg.WeekdayNames[i] = strings.TrimSpace(n)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
