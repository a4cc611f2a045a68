package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	RedisURL   string
	// DataDir holds the JSON data files: question bank, leaderboard and
	// pending question proposals.
	DataDir string
	// AdminPass gates the leaderboard reset endpoint.
	AdminPass string
	// PhoneAccuracy is the probability that the phone-a-friend lifeline
	// names the correct answer.
	PhoneAccuracy float64
	// SessionTTL is how long an abandoned game session survives in Redis.
	SessionTTL time.Duration
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		AdminPass:      getEnv("ADMIN_PASS", "change-this-before-going-live"),
		PhoneAccuracy:  getEnvFloat("PHONE_ACCURACY", 0.80),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// QuestionsFile is the live question bank.
func (c *Config) QuestionsFile() string {
	return filepath.Join(c.DataDir, "questions.json")
}

// LeaderboardFile is the persisted top-20 ranking.
func (c *Config) LeaderboardFile() string {
	return filepath.Join(c.DataDir, "leaderboard.json")
}

// ProposalsFile holds submitted questions pending review.
func (c *Config) ProposalsFile() string {
	return filepath.Join(c.DataDir, "proposals.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
