package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	GinMode     string
	CORSOrigins []string

	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
	Import   ImportConfig
	Notify   NotificationConfig
}

type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	AccessCode string
	JWTSecret  string
	TokenTTL   time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json, text
	Output string // stdout, stderr, file path
}

type ImportConfig struct {
	CashbackPercent float64
	MaxUploadBytes  int64
}

type NotificationConfig struct {
	Enabled        bool
	Schedule       string
	BatchSize      int
	TwilioSID      string
	TwilioToken    string
	PhoneNumber    string
	WhatsAppNumber string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
		CORSOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
		Database: DatabaseConfig{
			URL:             os.Getenv("DB_URL"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: AuthConfig{
			AccessCode: os.Getenv("AUTH_SECRET"),
			JWTSecret:  os.Getenv("JWT_SECRET"),
			TokenTTL:   time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24*7)) * time.Hour,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		Import: ImportConfig{
			CashbackPercent: getEnvAsFloat("CASHBACK_PERCENT", 3.2),
			MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,
		},
		Notify: NotificationConfig{
			Enabled:        getEnvAsBool("NOTIFICATIONS_ENABLED", false),
			Schedule:       getEnv("NOTIFICATION_SCHEDULE", "0 9 * * *"),
			BatchSize:      getEnvAsInt("NOTIFICATION_BATCH_SIZE", 200),
			TwilioSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
			PhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
			WhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
