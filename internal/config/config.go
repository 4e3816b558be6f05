package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN  string
	RedisURL     string
	JWTSecret    string
	ServerPort   string
	UploadDir    string
	KafkaBrokers []string
	KafkaTopic   string
	ReportTTL    int
	TokenTTL     int
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:root1234@tcp(localhost:3306)/cashier_app?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		JWTSecret:    getEnv("JWT_SECRET", "your_jwt_secret"),
		ServerPort:   getEnv("SERVER_PORT", "5001"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		KafkaBrokers: getEnvAsSlice("KAFKA_BROKERS", nil),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order-events"),
		ReportTTL:    getEnvAsInt("REPORT_CACHE_TTL", 300),
		TokenTTL:     getEnvAsInt("TOKEN_TTL", 86400),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
