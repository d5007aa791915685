package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPPort      string
	APIBaseURL    string
	TerminalID    string
	RedisAddr     string
	RedisPassword string
	KafkaBrokers  []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	CatalogTTL      time.Duration
	MaxUploadSize   int64
}

// Load reads the kiosk configuration from the environment. An empty
// REDIS_ADDR keeps the cart in memory; an empty KAFKA_BROKERS disables
// order events.
func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		APIBaseURL:      getEnv("POS_API_URL", "http://localhost:3000/api"),
		TerminalID:      getEnv("TERMINAL_ID", "kiosk-1"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "")),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		CatalogTTL:      5 * time.Minute,
		MaxUploadSize:   5 << 20, // 5MB, matches the backend's upload limit
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
