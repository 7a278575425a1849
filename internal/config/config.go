package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string

	// Backend BarberPro API
	BackendAPIURL  string
	RequestTimeout time.Duration

	// Redis (session token store)
	RedisURL   string
	SessionTTL time.Duration

	DefaultTimezone string
	LogLevel        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "3000"),

		BackendAPIURL:  getEnv("BACKEND_API_URL", "http://localhost:8000"),
		RequestTimeout: parseDuration(getEnv("REQUEST_TIMEOUT", "10s"), 10*time.Second),

		RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SessionTTL: parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),

		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Africa/Luanda"),
		LogLevel:        getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
