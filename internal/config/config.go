// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server          ServerConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	ExchangeRateAPI ExchangeRateAPIConfig `mapstructure:"exchangerate_api"`
	Frankfurter     FrankfurterConfig     `mapstructure:"frankfurter"`
	Provider        ProviderConfig
	Cache           CacheConfig
	Rates           RatesConfig
	Worker          WorkerConfig
	History         HistoryConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          int  `mapstructure:"port"`
	ServeSwagger  bool `mapstructure:"serve_swagger"`
	ServeAsynqmon bool `mapstructure:"serve_asynqmon"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"name"`
	SSLMode            string `mapstructure:"sslmode"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSec int    `mapstructure:"conn_max_lifetime_sec"`
	DSN                string
}

// RedisConfig holds connection settings for both Redis instances.
type RedisConfig struct {
	AsynqAddr string `mapstructure:"asynq_addr"` // Redis instance for Asynq task queue (required).
	StateAddr string `mapstructure:"state_addr"` // Redis instance for favorites and app state (required).
}

// ExchangeRateAPIConfig holds settings for the v6.exchangerate-api.com provider.
type ExchangeRateAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout_sec"`
}

// FrankfurterConfig holds settings for the frankfurter provider.
type FrankfurterConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout_sec"`
}

// ProviderConfig holds settings shared by all rate providers.
type ProviderConfig struct {
	RetryDelayMs int `mapstructure:"retry_delay_ms"` // Delay before the single fetch retry; 0 disables retrying.
}

// CacheConfig holds rate cache settings.
type CacheConfig struct {
	RateTTLSec int `mapstructure:"rate_ttl_sec"`
}

// RatesConfig holds rate lookup settings.
type RatesConfig struct {
	DefaultBase   string `mapstructure:"default_base"`
	SeriesMaxDays int    `mapstructure:"series_max_days"`
}

// WorkerConfig holds background worker and task queue settings.
type WorkerConfig struct {
	Enabled            bool `mapstructure:"enabled"`
	Concurrency        int  `mapstructure:"concurrency"`
	MaxRetry           int  `mapstructure:"max_retry"`
	TimeoutSec         int  `mapstructure:"timeout_sec"`
	RefreshIntervalSec int  `mapstructure:"refresh_interval_sec"`
}

// HistoryConfig holds conversion history settings.
type HistoryConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Config search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("./internal/config")

	viper.SetEnvPrefix("CONVSVC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.serve_swagger", true)
	viper.SetDefault("server.serve_asynqmon", true)
	viper.SetDefault("database.host", "db")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.name", "converterdb")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime_sec", 300)
	viper.SetDefault("redis.asynq_addr", "redis_asynq:6380")
	viper.SetDefault("redis.state_addr", "redis_state:6381")
	viper.SetDefault("exchangerate_api.base_url", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("exchangerate_api.api_key", "")
	viper.SetDefault("exchangerate_api.timeout_sec", 5)
	viper.SetDefault("frankfurter.base_url", "https://api.frankfurter.dev/v1")
	viper.SetDefault("frankfurter.timeout_sec", 5)
	viper.SetDefault("provider.retry_delay_ms", 200)
	viper.SetDefault("cache.rate_ttl_sec", 3600)
	viper.SetDefault("rates.default_base", "USD")
	viper.SetDefault("rates.series_max_days", 90)
	viper.SetDefault("worker.enabled", true)
	viper.SetDefault("worker.concurrency", 1)
	viper.SetDefault("worker.max_retry", 3)
	viper.SetDefault("worker.timeout_sec", 30)
	viper.SetDefault("worker.refresh_interval_sec", 300)
	viper.SetDefault("history.max_entries", 50)

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetimeSec <= 0 {
		cfg.Database.ConnMaxLifetimeSec = 300
	}

	cfg.Database.DSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.User, cfg.Database.Password,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.Name, cfg.Database.SSLMode)

	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if c.Database.Port <= 0 {
		errs = append(errs, fmt.Errorf("database.port must be positive, got %d", c.Database.Port))
	}
	if c.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}
	if c.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}

	if c.Redis.AsynqAddr == "" {
		errs = append(errs, fmt.Errorf("redis.asynq_addr is required (set CONVSVC_REDIS_ASYNQ_ADDR)"))
	}
	if c.Redis.StateAddr == "" {
		errs = append(errs, fmt.Errorf("redis.state_addr is required (set CONVSVC_REDIS_STATE_ADDR)"))
	}

	if c.Provider.RetryDelayMs < 0 {
		errs = append(errs, fmt.Errorf("provider.retry_delay_ms must be non-negative, got %d", c.Provider.RetryDelayMs))
	}

	if c.Cache.RateTTLSec <= 0 {
		errs = append(errs, fmt.Errorf("cache.rate_ttl_sec must be positive, got %d", c.Cache.RateTTLSec))
	}

	if c.Rates.DefaultBase == "" {
		errs = append(errs, fmt.Errorf("rates.default_base is required"))
	}
	if c.Rates.SeriesMaxDays <= 0 {
		errs = append(errs, fmt.Errorf("rates.series_max_days must be positive, got %d", c.Rates.SeriesMaxDays))
	}

	if c.Worker.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("worker.concurrency must be positive, got %d", c.Worker.Concurrency))
	}
	if c.Worker.MaxRetry < 0 {
		errs = append(errs, fmt.Errorf("worker.max_retry must be non-negative, got %d", c.Worker.MaxRetry))
	}
	if c.Worker.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("worker.timeout_sec must be positive, got %d", c.Worker.TimeoutSec))
	}
	if c.Worker.RefreshIntervalSec <= 0 {
		errs = append(errs, fmt.Errorf("worker.refresh_interval_sec must be positive, got %d", c.Worker.RefreshIntervalSec))
	}

	if c.History.MaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("history.max_entries must be positive, got %d", c.History.MaxEntries))
	}

	return errors.Join(errs...)
}
