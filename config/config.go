package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Configuration values loaded from the environment (or a .env file)
var (
    PostgresHost     string
    PostgresPort     string
    PostgresUser     string
    PostgresPassword string
    PostgresDB       string
    APIPort          string
)

// LoadConfig loads the .env file if present and fills the package-level values
func LoadConfig() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    PostgresHost = getEnv("POSTGRES_HOST", "localhost")
    PostgresPort = getEnv("POSTGRES_PORT", "5432")
    PostgresUser = getEnv("POSTGRES_USER", "postgres")
    PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
    PostgresDB = getEnv("POSTGRES_DB", "directory")
    APIPort = getEnv("API_PORT", "8080")
}

// getEnv returns the value of the environment variable or a default value
func getEnv(key, fallback string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return fallback
}
