package main

import (
	"os"
	"strings"
	"time"

	"timetable_ingest/firebasesdk"
)

type config struct {
	TimetablePageURL     string
	DriveCredentialsFile string
	Firebase             firebasesdk.Config
	RefreshInterval      time.Duration
	OutputDir            string
	WatchAddress         string
}

func loadConfig() (config, error) {
	var cfg config

	var err error
	if cfg.TimetablePageURL, err = getRequiredEnv("TIMETABLE_PAGE_URL"); err != nil {
		return cfg, err
	}
	if cfg.Firebase.DatabaseURL, err = getRequiredEnv("DATABASE_URL"); err != nil {
		return cfg, err
	}
	if cfg.Firebase.CredentialsFile, err = getRequiredEnv("CREDENTIALS_FILE"); err != nil {
		return cfg, err
	}
	cfg.DriveCredentialsFile = getEnv("DRIVE_CREDENTIALS_FILE", "creds.json")
	if cfg.RefreshInterval, err = getEnvDuration("REFRESH_INTERVAL", 10*time.Minute); err != nil {
		return cfg, err
	}
	cfg.OutputDir = strings.TrimSpace(os.Getenv("OUTPUT_DIR"))
	cfg.WatchAddress = strings.TrimSpace(os.Getenv("WATCH_ADDRESS"))

	return cfg, nil
}

func getRequiredEnv(key string) (string, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return "", &configError{message: "missing required environment variable: " + key}
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, &configError{message: "invalid duration for " + key + ": " + err.Error()}
	}
	if parsed <= 0 {
		return 0, &configError{message: "invalid duration for " + key + ": must be positive"}
	}
	return parsed, nil
}

type configError struct {
	message string
}

func (e *configError) Error() string {
	return e.message
}

var _ error = (*configError)(nil)
