package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// JWT
	JWTSecret string

	// Exam data provider
	ExamAPIBaseURL   string
	ExamCacheSeconds int

	// Collection store
	StoreBackend string // "redis" | "postgres"
	SessionsKey  string
	MaterialsKey string
	ReviewsKey   string

	// Storage
	StoragePath string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		DatabaseURL:      mustGetEnv("DATABASE_URL"),
		RedisURL:         mustGetEnv("REDIS_URL"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		ExamAPIBaseURL:   getEnvOrDefault("EXAM_API_URL", "http://localhost:8081"),
		ExamCacheSeconds: getEnvAsIntOrDefault("EXAM_CACHE_TTL_SECONDS", 300),
		StoreBackend:     getEnvOrDefault("STORE_BACKEND", "redis"),
		SessionsKey:      getEnvOrDefault("SESSIONS_KEY", "nu:study_sessions"),
		MaterialsKey:     getEnvOrDefault("MATERIALS_KEY", "nu:materials"),
		ReviewsKey:       getEnvOrDefault("REVIEWS_KEY", "nu:course_reviews"),
		StoragePath:      getEnvOrDefault("STORAGE_PATH", "./uploads"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
