package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TRADELENS_"

// Load layers defaults, an optional YAML file named by TRADELENS_CONFIG and
// TRADELENS_* environment variables, in that order. Nested keys use a double
// underscore: TRADELENS_APOLLO__API_KEY sets apollo.api_key. The unprefixed
// DATABASE_URL and LISTEN_ADDR are honored when nothing else sets them.
func Load() (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if !k.Exists("database_url") {
		cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	}
	if !k.Exists("listen_addr") {
		cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
