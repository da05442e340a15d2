package configuration

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is everything the process reads from the environment. Remote
// storage credentials are deliberately absent: they arrive per request and
// are never persisted.
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	CORSOrigins []string
}

// Load reads .env when present, then the environment, with development
// defaults for everything.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return Config{
		Port:        getenv("PORT", "8080"),
		DBPath:      getenv("CLINICORE_DB", "hospital.db"),
		JWTSecret:   getenv("JWT_SECRET", "clinicore-dev-secret"),
		CORSOrigins: strings.Split(getenv("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
