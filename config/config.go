package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port            string
	DatabaseURL     string
	DatabaseName    string
	LogFile         string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// Load reads .env (if present) and the process environment. A missing .env
// file is not an error; deployed environments set variables directly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabaseName:    getEnv("DATABASE_NAME", "bitsbites"),
		LogFile:         getEnv("LOG_FILE", "logs/app.log"),
		ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
		WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
		ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
