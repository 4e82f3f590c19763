package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	Currency string

	BackendURL     string        // Base URL of the course backend, without the /api suffix
	BackendTimeout time.Duration // Per-request timeout for backend calls

	IdentitySecret string // HMAC secret shared with the identity provider's JWT template

	DBDriver   string // sqlite, postgres or mysql
	DBName     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	UploadDir string

	RefreshCron         string
	ProgressConcurrency int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:     getEnv("PORT", "3000"),
		Currency: getEnv("CURRENCY", "$"),

		BackendURL:     getEnv("BACKEND_URL", "http://localhost:5000"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 15*time.Second),

		IdentitySecret: getEnv("IDENTITY_JWT_SECRET", "defaultSecret"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "edemy_drafts.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", ""),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		RefreshCron:         getEnv("REFRESH_CRON", "*/5 * * * *"),
		ProgressConcurrency: getEnvInt("PROGRESS_CONCURRENCY", 4),
	}

	// Validate critical configuration
	if AppConfig.IdentitySecret == "defaultSecret" {
		log.Println("Warning: Using default IDENTITY_JWT_SECRET. Update it in your environment.")
	}
	if AppConfig.ProgressConcurrency < 1 {
		log.Printf("Warning: PROGRESS_CONCURRENCY must be positive, got %d. Falling back to 1.", AppConfig.ProgressConcurrency)
		AppConfig.ProgressConcurrency = 1
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
