package config

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Config struct {
	Port        string
	Environment string
	DBDriver    string
	DBURL       string
	JWTSecret   string
	JWTExpiry   time.Duration
	CORSOrigins []string
}

// Load reads configuration from the environment, optionally seeded from
// a dotenv file (ENV_FILE, default ".env"). The returned Config is
// passed explicitly into constructors; nothing reads the environment
// after startup.
func Load() *Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBURL:       getEnv("DB_URL", "flashnote.db"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTExpiry:   getDuration("JWT_EXPIRES_IN", 24*time.Hour),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
	}
}

// CorsOptions builds the CORS policy for the configured origins.
func (c *Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Edit-Token"},
		AllowCredentials: true,
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
