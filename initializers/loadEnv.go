package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
}

// MustGetEnv returns the value of the given environment variable or
// stops the process if it is not set. Used for configuration the app
// cannot run without (DB DSN, payment credentials).
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set.", key)
	}
	return value
}
