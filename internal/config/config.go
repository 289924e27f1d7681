package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values loaded from environment variables.
type Config struct {
	DatabaseURL     string
	JWTSecret       string
	HTTPPort        string
	TokenExpiration time.Duration
	DemoMode        bool // serve seeded in-memory data instead of Postgres
	AI              AIConfig
}

// AIConfig describes the chat-completion provider settings.
// The provider speaks the OpenAI-compatible API (DeepSeek by default).
type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// Enabled reports whether a completion credential is configured.
// Without one the service falls back to canned character responses.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file (useful for development)
	err := godotenv.Load() // Loads .env from the current directory or parent dirs
	if err != nil {
		log.Println("Warning: Could not load .env file. Using environment variables only.", err)
		// Don't fail if .env is not present, might be in production
	}

	port := getEnv("HTTP_PORT", "8080")
	jwtSecret := getEnv("JWT_SECRET", "default-super-secret-key") // CHANGE THIS IN PRODUCTION!

	demoMode, err := strconv.ParseBool(getEnv("DEMO_MODE", "false"))
	if err != nil {
		log.Printf("Warning: Invalid DEMO_MODE value, defaulting to false. Error: %v", err)
		demoMode = false
	}

	dbURL := getEnv("DATABASE_URL", "") // No default; required unless running in demo mode
	if dbURL == "" && !demoMode {
		log.Fatal("DATABASE_URL environment variable is not set (set DEMO_MODE=true to run without a database).")
	}

	tokenExpStr := getEnv("JWT_EXPIRATION_HOURS", "24") // Default 24 hours
	tokenExpHours, err := strconv.Atoi(tokenExpStr)
	if err != nil {
		log.Printf("Warning: Invalid JWT_EXPIRATION_HOURS '%s', using default 24h. Error: %v", tokenExpStr, err)
		tokenExpHours = 24
	}

	maxTokensStr := getEnv("DEEPSEEK_MAX_TOKENS", "200")
	maxTokens, err := strconv.Atoi(maxTokensStr)
	if err != nil {
		log.Printf("Warning: Invalid DEEPSEEK_MAX_TOKENS '%s', using default 200. Error: %v", maxTokensStr, err)
		maxTokens = 200
	}

	temperatureStr := getEnv("DEEPSEEK_TEMPERATURE", "0.8")
	temperature, err := strconv.ParseFloat(temperatureStr, 32)
	if err != nil {
		log.Printf("Warning: Invalid DEEPSEEK_TEMPERATURE '%s', using default 0.8. Error: %v", temperatureStr, err)
		temperature = 0.8
	}

	cfg := &Config{
		HTTPPort:        port,
		JWTSecret:       jwtSecret,
		DatabaseURL:     dbURL,
		TokenExpiration: time.Hour * time.Duration(tokenExpHours),
		DemoMode:        demoMode,
		AI: AIConfig{
			APIKey:      os.Getenv("DEEPSEEK_API_KEY"), // optional: absent means canned responses only
			BaseURL:     getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			Model:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			MaxTokens:   maxTokens,
			Temperature: float32(temperature),
		},
	}

	log.Printf("Loaded config: Port=%s, DB_URL=***, TokenExp=%s, DemoMode=%t, AIEnabled=%t",
		cfg.HTTPPort, cfg.TokenExpiration, cfg.DemoMode, cfg.AI.Enabled())

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Env variable %s not set, using default: %s", key, fallback)
	return fallback
}
