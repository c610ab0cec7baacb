package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a setting from .env, falling back to the process environment.
// Used for DATABASE_URL, JWT_SECRET, the admin seed credentials and the
// platform MTN number.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}