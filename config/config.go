package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	Port             string
	JWTSecret        string
	DatabaseURL      string
	RedisHost        string
	EmailServiceHost string
	EmailFromUser    string
	EmailTimeout     time.Duration
}

// Load reads configuration from the environment (a .env file is honored when
// present). A missing or empty JWT_SECRET is fatal: the process must not
// start without a signing secret.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "3000"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisHost:        getEnv("REDIS_HOST_NAME", ""),
		EmailServiceHost: getEnv("EMAIL_SERVICE_HOST", ""),
		EmailFromUser:    getEnv("EMAIL_FROM_USER", "no-reply@example.com"),
		EmailTimeout:     time.Duration(getEnvAsInt("EMAIL_TIMEOUT_MILLIS", 1000)) * time.Millisecond,
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
