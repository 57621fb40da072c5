package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	MetricsPort  string
	AssetBaseURL string
	StaticDir    string
	LogLevel     string
}

// Load reads the configuration from the environment, after an optional .env file
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		AssetBaseURL: getEnv("ASSET_BASE_URL", ""),
		StaticDir:    getEnv("STATIC_DIR", "./public"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
