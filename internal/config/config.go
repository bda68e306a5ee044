package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by LIFEBOARD_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("LIFEBOARD_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// RedisAddr returns the redis host:port for the dismissal store.
// Empty means redis is not configured and dismissals stay in memory.
func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// MaxAlerts returns the cap on the alert feed.
// Defaults to 5 if not set.
func MaxAlerts() int {
	n, err := strconv.Atoi(os.Getenv("MAX_ALERTS"))
	if err != nil || n <= 0 {
		return 5
	}
	return n
}

// DocumentLookaheadDays returns how far ahead document expiries surface.
// Defaults to 90 if not set.
func DocumentLookaheadDays() int {
	n, err := strconv.Atoi(os.Getenv("DOCUMENT_LOOKAHEAD_DAYS"))
	if err != nil || n <= 0 {
		return 90
	}
	return n
}

// RefreshInterval returns how often externally synced documents are re-read.
// Defaults to 5m if not set.
func RefreshInterval() time.Duration {
	d, err := time.ParseDuration(os.Getenv("REFRESH_INTERVAL"))
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}
