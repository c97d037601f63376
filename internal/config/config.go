package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	Log       LogConfig
	CORS      CORSConfig
	Import    ImportConfig
	Reminder  ReminderConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ImportConfig holds invoice import settings.
type ImportConfig struct {
	MaxUploadMB int64 `mapstructure:"max_upload_mb"`
}

// ReminderConfig holds payment reminder composition settings.
type ReminderConfig struct {
	CountryCode  string `mapstructure:"country_code"`
	BusinessName string `mapstructure:"business_name"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// RateLimitConfig holds request throttling settings.
type RateLimitConfig struct {
	LoginPerMinute int `mapstructure:"login_per_minute"`
}

// Load reads configuration from environment variables with the CREDITWATCH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CREDITWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "creditwatch")
	v.SetDefault("db.password", "creditwatch_secret")
	v.SetDefault("db.name", "creditwatch_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "8h")
	v.SetDefault("jwt.issuer", "creditwatch")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Import defaults
	v.SetDefault("import.max_upload_mb", 5)

	// Reminder defaults
	v.SetDefault("reminder.country_code", "91")
	v.SetDefault("reminder.business_name", "Accounts Team")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@creditwatch.local")
	v.SetDefault("email.from_name", "CreditWatch")

	// Rate limit defaults
	v.SetDefault("rate_limit.login_per_minute", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "CREDITWATCH_SERVER_PORT",
		"server.read_timeout":         "CREDITWATCH_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "CREDITWATCH_SERVER_WRITE_TIMEOUT",
		"server.environment":          "CREDITWATCH_SERVER_ENVIRONMENT",
		"db.host":                     "CREDITWATCH_DB_HOST",
		"db.port":                     "CREDITWATCH_DB_PORT",
		"db.user":                     "CREDITWATCH_DB_USER",
		"db.password":                 "CREDITWATCH_DB_PASSWORD",
		"db.name":                     "CREDITWATCH_DB_NAME",
		"db.sslmode":                  "CREDITWATCH_DB_SSLMODE",
		"db.max_open":                 "CREDITWATCH_DB_MAX_OPEN",
		"db.max_idle":                 "CREDITWATCH_DB_MAX_IDLE",
		"jwt.secret":                  "CREDITWATCH_JWT_SECRET",
		"jwt.access_expiry":           "CREDITWATCH_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                  "CREDITWATCH_JWT_ISSUER",
		"log.level":                   "CREDITWATCH_LOG_LEVEL",
		"log.format":                  "CREDITWATCH_LOG_FORMAT",
		"cors.allowed_origins":        "CREDITWATCH_CORS_ALLOWED_ORIGINS",
		"import.max_upload_mb":        "CREDITWATCH_IMPORT_MAX_UPLOAD_MB",
		"reminder.country_code":       "CREDITWATCH_REMINDER_COUNTRY_CODE",
		"reminder.business_name":      "CREDITWATCH_REMINDER_BUSINESS_NAME",
		"email.provider":              "CREDITWATCH_EMAIL_PROVIDER",
		"email.region":                "CREDITWATCH_EMAIL_REGION",
		"email.from_address":          "CREDITWATCH_EMAIL_FROM_ADDRESS",
		"email.from_name":             "CREDITWATCH_EMAIL_FROM_NAME",
		"rate_limit.login_per_minute": "CREDITWATCH_RATE_LIMIT_LOGIN_PER_MINUTE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CREDITWATCH_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CREDITWATCH_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Import = ImportConfig{
		MaxUploadMB: v.GetInt64("import.max_upload_mb"),
	}
	cfg.Reminder = ReminderConfig{
		CountryCode:  v.GetString("reminder.country_code"),
		BusinessName: v.GetString("reminder.business_name"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.RateLimit = RateLimitConfig{
		LoginPerMinute: v.GetInt("rate_limit.login_per_minute"),
	}

	return cfg, nil
}
