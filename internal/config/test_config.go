package config

import "time"

func LoadTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "localhost",
			Port:        8081,
			CORSOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			Name:     "webeye_test",
			User:     "test_user",
			Password: "test_password",
		},
		Auth: AuthConfig{
			SecretKey:         "test-secret-key-for-testing-only",
			AccessTokenExpiry: time.Hour,
			BotTokenExpiry:    10 * time.Minute,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
		Checks: ChecksConfig{
			Schedule:     "*/5 * * * *",
			Timeout:      2 * time.Second,
			SweepPerMin:  600,
			ExportWindow: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			ReportsPerWindow: 5,
			ReportWindow:     time.Hour,
			RequestsPerSec:   1000,
		},
		Bot: BotConfig{
			APIBaseURL:      "http://localhost:8081/api",
			Secret:          "test-bot-secret",
			RegistrationURL: "http://localhost:3000/registration",
		},
	}
}
