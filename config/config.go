package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port         string
	PGURL        string
	LogLevel     string
	PlantTZ      string
	HistorySize  int
	BatchWorkers int
	MaxBatchSize int
}

// Load reads configuration from a .env file (if present) and environment variables.
// Variables already set in the shell take precedence over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// PG_URL is optional; without it scans are only kept in memory
	pgURL := os.Getenv("PG_URL")

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	if _, err := log.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", logLevel, err)
	}

	plantTZ := os.Getenv("PLANT_TIMEZONE")
	if plantTZ == "" {
		plantTZ = "America/Santiago"
	}

	historySize, err := intEnv("HISTORY_SIZE", 10)
	if err != nil {
		return nil, err
	}
	batchWorkers, err := intEnv("BATCH_WORKERS", 8)
	if err != nil {
		return nil, err
	}
	maxBatchSize, err := intEnv("MAX_BATCH_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		PGURL:        pgURL,
		LogLevel:     logLevel,
		PlantTZ:      plantTZ,
		HistorySize:  historySize,
		BatchWorkers: batchWorkers,
		MaxBatchSize: maxBatchSize,
	}, nil
}

// intEnv reads a positive integer variable, falling back to def when unset
func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}
