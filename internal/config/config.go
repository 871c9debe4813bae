package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
type Config struct {
	ServerPort     string
	BackendBaseURL string
	RedisURL       string // empty means in-memory sessions
	AllowedOrigins []string
	SessionTTL     time.Duration
	GatewayTimeout time.Duration
	CookieSecure   bool
}

// Load reads configs/.env if present, then the environment.
func Load() *Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:9000"),
		RedisURL:       os.Getenv("REDIS_URL"),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),
		SessionTTL:     time.Duration(getEnvAsInt("SESSION_TTL_SECONDS", 3600*24)) * time.Second,
		GatewayTimeout: time.Duration(getEnvAsInt("GATEWAY_TIMEOUT_SECONDS", 15)) * time.Second,
		CookieSecure:   os.Getenv("GIN_MODE") == "release",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
