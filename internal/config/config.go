package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env         string `koanf:"env"`
	ListenAddr  string `koanf:"listen_addr"`
	DatabaseURL string `koanf:"database_url"`
	// Store selects the repository backend: postgres or memory.
	Store string `koanf:"store"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// RefreshWorkers is the number of async cache refresh workers; 0 disables them.
	RefreshWorkers      int           `koanf:"refresh_workers"`
	RefreshPollInterval time.Duration `koanf:"refresh_poll_interval"`
	CacheTTL            time.Duration `koanf:"cache_ttl"`
	ShutdownTimeout     time.Duration `koanf:"shutdown_timeout"`

	Apollo ApolloConfig `koanf:"apollo"`
}

type ApolloConfig struct {
	BaseURL       string        `koanf:"base_url"`
	APIKey        string        `koanf:"api_key"`
	Timeout       time.Duration `koanf:"timeout"`
	MaxRetries    int           `koanf:"max_retries"`
	RetryBase     time.Duration `koanf:"retry_base"`
	CostPerRecord float64       `koanf:"cost_per_record"`
	PerPage       int           `koanf:"per_page"`
}

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Env:                 "development",
		ListenAddr:          ":8080",
		Store:               StorePostgres,
		LogLevel:            "info",
		LogFormat:           "json",
		RefreshWorkers:      2,
		RefreshPollInterval: 500 * time.Millisecond,
		CacheTTL:            30 * 24 * time.Hour,
		ShutdownTimeout:     10 * time.Second,
		Apollo: ApolloConfig{
			BaseURL:       "https://api.apollo.io",
			Timeout:       10 * time.Second,
			MaxRetries:    3,
			RetryBase:     250 * time.Millisecond,
			CostPerRecord: 0.05,
			PerPage:       10,
		},
	}
}

// Validate checks the loaded configuration.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr must not be empty", ErrInvalidConfig)
	}
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: database_url is required for the postgres store", ErrInvalidConfig)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.RefreshWorkers < 0 {
		return fmt.Errorf("%w: refresh_workers must be >= 0", ErrInvalidConfig)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("%w: cache_ttl must be positive", ErrInvalidConfig)
	}
	if c.Apollo.Timeout <= 0 {
		return fmt.Errorf("%w: apollo.timeout must be positive", ErrInvalidConfig)
	}
	if c.Apollo.MaxRetries < 1 {
		return fmt.Errorf("%w: apollo.max_retries must be >= 1", ErrInvalidConfig)
	}
	if c.Apollo.CostPerRecord < 0 {
		return fmt.Errorf("%w: apollo.cost_per_record must be >= 0", ErrInvalidConfig)
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
