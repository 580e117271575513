// Package config loads the application configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		Driver        string `yaml:"driver"`
		DSN           string `yaml:"dsn"`
		RunMigrations bool   `yaml:"run_migrations"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Market struct {
		BaseURL       string `yaml:"base_url"`
		RefreshCron   string `yaml:"refresh_cron"`
		RatePerMinute int    `yaml:"rate_per_minute"`
	} `yaml:"market"`
	Auth struct {
		JWTSecret        string `yaml:"jwt_secret"`
		TokenExpiryHours int    `yaml:"token_expiry_hours"`
	} `yaml:"auth"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine, everything has a default or an
// environment source.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		cfg.Database.RunMigrations = v == "true"
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Market.BaseURL = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Market.RefreshCron = v
	}
	if v := os.Getenv("RATE_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Market.RatePerMinute = n
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Market.RefreshCron == "" {
		cfg.Market.RefreshCron = "0 */5 * * * *"
	}
	if cfg.Market.RatePerMinute == 0 {
		cfg.Market.RatePerMinute = 120
	}
	if cfg.Auth.TokenExpiryHours == 0 {
		cfg.Auth.TokenExpiryHours = 24
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Market.RatePerMinute <= 0 {
		return fmt.Errorf("market.rate_per_minute must be positive")
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for postgres")
	}
	return nil
}
