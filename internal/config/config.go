package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// RefDataDir overrides the embedded reference tables when set.
	RefDataDir string

	// Upper-air wind service configuration.
	WindAPIURL  string
	WindEnabled bool
	WindTimeout time.Duration
	WindHourUTC int

	// Score event publishing configuration.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaScoresTopic string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is loaded first when
// present.
func Load() (*Config, error) {
	// Best-effort: absence of a .env file is the normal production case.
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	windTimeout, err := parseDuration("WIND_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	windHour, err := parseWindHour()
	if err != nil {
		return nil, err
	}

	windEnabled := true
	if v := os.Getenv("WIND_ENABLED"); v != "" {
		windEnabled = v == "true"
	}

	kafkaEnabled := os.Getenv("KAFKA_ENABLED") == "true"

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		RefDataDir:      os.Getenv("REFDATA_DIR"),

		WindAPIURL:  envOrDefault("WIND_API_URL", "https://upper-wind-proxy.smoothsky.dev/300hpa"),
		WindEnabled: windEnabled,
		WindTimeout: windTimeout,
		WindHourUTC: windHour,

		KafkaEnabled:     kafkaEnabled,
		KafkaBrokers:     parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaScoresTopic: envOrDefault("KAFKA_SCORES_TOPIC", "ride-comfort-scores"),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.WindEnabled && cfg.WindAPIURL == "" {
		return nil, errors.New("WIND_ENABLED is true but WIND_API_URL is not set")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaScoresTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SCORES_TOPIC is not set")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseWindHour() (int, error) {
	s := os.Getenv("WIND_HOUR_UTC")
	if s == "" {
		return 12, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 23 {
		return 0, fmt.Errorf("invalid WIND_HOUR_UTC: %q", s)
	}
	return n, nil
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
