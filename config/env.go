package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageModeLocal    = "local"
	StorageModePostgres = "postgres"
)

type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	StorageMode    string
	DataDir        string
	SessionTimeout time.Duration
	AdminUsername  string
	AdminPassword  string
	// AdminPasswordHash takes precedence over AdminPassword when set
	// (argon2 encoded hash).
	AdminPasswordHash string
	JWTSecret         string
	JWTExpiry         time.Duration
	OriginURL         string
	DatabaseURL       string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	MaxUploadSize     int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	sessionTimeout, err := time.ParseDuration(getEnv("SESSION_TIMEOUT", "1h"))
	if err != nil {
		sessionTimeout = time.Hour
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5 * 1024 * 1024
	}

	cfg := &Config{
		AppName:           getEnv("APP_NAME", "POS Kasir"),
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8082")),
		StorageMode:       getEnv("STORAGE_MODE", StorageModeLocal),
		DataDir:           getEnv("DATA_DIR", "./data"),
		SessionTimeout:    sessionTimeout,
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         jwtExpiry,
		OriginURL:         os.Getenv("ORIGIN_URL"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "pos_kasir"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MaxUploadSize:     maxUploadSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Storage mode: %s", cfg.StorageMode)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
