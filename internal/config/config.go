package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	APIBaseURL string
	APITimeout time.Duration
	LogLevel   string
	LogFile    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; variables already set win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:3000"),
		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api"), "/"),
		APITimeout: getEnvDuration("API_TIMEOUT", 15*time.Second),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
