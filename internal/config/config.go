package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"webeye/internal/utils"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Worker    WorkerConfig
	Redis     RedisConfig
	Checks    ChecksConfig
	RateLimit RateLimitConfig
	Bot       BotConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	PublicURL   string
	Debug       bool
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig controls access token signing. SecretKey is generated when
// SECRET_KEY is unset, which invalidates every token on restart.
type AuthConfig struct {
	SecretKey          string
	SecretGenerated    bool
	AccessTokenExpiry  time.Duration
	BotTokenExpiry     time.Duration
	SuperAdminEmail    string
	SuperAdminPassword string
	SuperAdminName     string
}

type StorageConfig struct {
	Provider string // local, s3, r2
	S3       S3Config
}

type S3Config struct {
	BucketName string `env:"S3_BUCKET_NAME"`
	Endpoint   string `env:"S3_ENDPOINT"`
	Region     string `env:"S3_REGION"`
	AccessKey  string `env:"S3_ACCESS_KEY"`
	SecretKey  string `env:"S3_SECRET_KEY"`
}

// Enabled reports whether enough S3 settings are present to build a client.
func (c S3Config) Enabled() bool {
	return c.BucketName != "" && c.AccessKey != "" && c.SecretKey != ""
}

type WorkerConfig struct {
	Concurrency int
}

type RedisConfig struct {
	Addr     string
	Password string
	Username string
	DB       int
}

type ChecksConfig struct {
	Schedule     string
	Timeout      time.Duration
	SweepPerMin  int
	ExportWindow time.Duration
}

type RateLimitConfig struct {
	ReportsPerWindow int
	ReportWindow     time.Duration
	RequestsPerSec   float64
}

type BotConfig struct {
	Token           string
	APIBaseURL      string
	Secret          string
	RegistrationURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "localhost"),
			Port:        getEnvAsInt("SERVER_PORT", 8080),
			PublicURL:   getEnv("PUBLIC_URL", "http://localhost:8080"),
			Debug:       getEnvAsBool("DEBUG", false),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASS", ""),
			Name:     getEnv("DB_NAME", "webeye"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			SecretKey:          getEnv("SECRET_KEY", ""),
			AccessTokenExpiry:  getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 7*24*time.Hour),
			BotTokenExpiry:     getEnvAsDuration("BOT_TOKEN_EXPIRY", 10*time.Minute),
			SuperAdminEmail:    getEnv("SUPERADMIN_EMAIL", ""),
			SuperAdminPassword: getEnv("SUPERADMIN_PASSWORD", ""),
			SuperAdminName:     getEnv("SUPERADMIN_NAME", "admin"),
		},
		Storage: StorageConfig{
			Provider: getEnv("STORAGE_PROVIDER", "local"),
			S3: S3Config{
				BucketName: getEnv("S3_BUCKET_NAME", ""),
				Endpoint:   getEnv("S3_ENDPOINT", ""),
				Region:     getEnv("S3_REGION", ""),
				AccessKey:  getEnv("S3_ACCESS_KEY", ""),
				SecretKey:  getEnv("S3_SECRET_KEY", ""),
			},
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 10),
		},
		Redis: RedisConfig{
			Addr:     fmt.Sprintf("%s:%d", getEnv("REDIS_HOST", "localhost"), getEnvAsInt("REDIS_PORT", 6379)),
			Password: getEnv("REDIS_PASSWORD", ""),
			Username: getEnv("REDIS_USERNAME", ""),
			DB:       getEnvAsInt("REDIS_DB", 1),
		},
		Checks: ChecksConfig{
			Schedule:     getEnv("CHECKS_SCHEDULE", "*/5 * * * *"),
			Timeout:      getEnvAsDuration("CHECKS_TIMEOUT", 10*time.Second),
			SweepPerMin:  getEnvAsInt("CHECKS_PER_MINUTE", 600),
			ExportWindow: getEnvAsDuration("CHECKS_EXPORT_WINDOW", 7*24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			ReportsPerWindow: getEnvAsInt("REPORTS_PER_WINDOW", 5),
			ReportWindow:     getEnvAsDuration("REPORTS_WINDOW", time.Hour),
			RequestsPerSec:   getEnvAsFloat("REQUESTS_PER_SECOND", 20),
		},
		Bot: BotConfig{
			Token:           getEnv("BOT_TOKEN", ""),
			APIBaseURL:      getEnv("BOT_API_URL", "http://localhost:8080/api"),
			Secret:          getEnv("BOT_SECRET", ""),
			RegistrationURL: getEnv("BOT_REGISTRATION_URL", "http://localhost:3000/registration"),
		},
	}

	if cfg.Auth.SecretKey == "" {
		secret, err := utils.GenerateRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate secret key: %w", err)
		}
		cfg.Auth.SecretKey = secret
		cfg.Auth.SecretGenerated = true
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host,
		c.User,
		c.Password,
		c.Name,
		c.Port,
		c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
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

func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
