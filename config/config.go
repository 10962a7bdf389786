package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config stores the application configuration.
type Config struct {
	ServerAddr string // Address the HTTP server listens on, e.g. ":8080"

	MongoURL string // MongoDB connection string
	DBName   string // Database holding the songs/playlists/favorites collections

	CORSOrigins []string // Allowed CORS origins; "*" allows everything

	LogLevel string
	LogPath  string // Optional log file; empty means stdout only
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override variables already set in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://127.0.0.1:27017"),
		DBName:      getEnv("DB_NAME", "e1music"),
		CORSOrigins: origins,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPath:     getEnv("LOG_PATH", ""),
	}
}
