package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	JWTSecret     string
	JWTExpiry     time.Duration
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	ContactInbox  string
	CORSOrigin    string
	SeedData      bool
	AdminEmail    string
	AdminPassword string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil || expiry <= 0 {
		expiry = 24 * time.Hour
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	seed, _ := strconv.ParseBool(getEnv("SEED_DATA", "true"))

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8080")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "online_shop"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpiry:     expiry,
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      smtpPort,
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		SMTPFrom:      getEnv("SMTP_FROM", "no-reply@shop.local"),
		ContactInbox:  getEnv("CONTACT_INBOX", "support@shop.local"),
		CORSOrigin:    os.Getenv("ORIGIN_URL"),
		SeedData:      seed,
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@admin.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
