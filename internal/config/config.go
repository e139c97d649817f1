package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	MongoURI string
	DBName   string
	Port     string
	LogLevel string
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment. MONGODB_URI is preferred, MONGO_URI is accepted as
// a fallback; a missing connection string is a fatal configuration error.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URI")
	}
	if mongoURI == "" {
		log.Fatal("MONGODB_URI/MONGO_URI not set")
	}

	return &Config{
		MongoURI: mongoURI,
		DBName:   getEnv("DB_NAME", "journal"),
		Port:     getEnv("PORT", "8100"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
