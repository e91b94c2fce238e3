package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read at startup. Secrets used deeper
// in the stack (Cloudinary, SMTP, JWT) are read from the environment where
// they are consumed.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	AppURL      string
}

// Load reads the environment, preferring a local .env file when present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return Config{
		Port:        getenv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		AppURL:      getenv("APP_URL", "http://localhost:8000"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
