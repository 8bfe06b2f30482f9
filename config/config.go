package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	BackendURL     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	RequestTimeout time.Duration
	CartTTL        time.Duration
	ReturnURL      string // Khalti redirects here after payment
	WebsiteURL     string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		BackendURL:     getEnv("BACKEND_API_URI", "http://localhost:5000/api"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		CartTTL:        getEnvDuration("CART_TTL", 30*24*time.Hour),
		ReturnURL:      getEnv("KHALTI_RETURN_URL", "http://localhost:8080/payment/khalti/callback"),
		WebsiteURL:     getEnv("WEBSITE_URL", "http://localhost:8080/"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
