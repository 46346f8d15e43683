package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mcoot/shopsim/internal/dependencies/hasher"
	"github.com/mcoot/shopsim/internal/factory"
	"github.com/mcoot/shopsim/internal/services/catalog"
)

// Config holds CLI configuration
type Config struct {
	StorageType   string
	RedisURL      string
	HashAlgorithm string
	CatalogSize   int
	Output        string
	LogFormat     string
	Verbose       bool
	EnvFile       string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType:   factory.StorageTypeMemory,
		RedisURL:      "redis://localhost:6379",
		HashAlgorithm: hasher.AlgorithmSHA256,
		CatalogSize:   catalog.DefaultSize,
		Output:        "text",
		LogFormat:     "json",
		EnvFile:       ".env",
	}
}

// envBinding ties a flag to the environment variable that can supply it
type envBinding struct {
	flag string
	env  string
	set  func(c *Config, val string) error
}

var envBindings = []envBinding{
	{"storage", "SHOPSIM_STORAGE", func(c *Config, v string) error { c.StorageType = v; return nil }},
	{"redis-url", "SHOPSIM_REDIS_URL", func(c *Config, v string) error { c.RedisURL = v; return nil }},
	{"hash", "SHOPSIM_HASH", func(c *Config, v string) error { c.HashAlgorithm = v; return nil }},
	{"output", "SHOPSIM_OUTPUT", func(c *Config, v string) error { c.Output = v; return nil }},
	{"log-format", "SHOPSIM_LOG_FORMAT", func(c *Config, v string) error { c.LogFormat = v; return nil }},
	{"catalog-size", "SHOPSIM_CATALOG_SIZE", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SHOPSIM_CATALOG_SIZE: %w", err)
		}
		c.CatalogSize = n
		return nil
	}},
}

// ApplyEnv fills every setting whose flag was not given explicitly from
// its environment variable, when that variable is set
func (c *Config) ApplyEnv(flagChanged func(name string) bool) error {
	for _, b := range envBindings {
		if flagChanged(b.flag) {
			continue
		}
		val := os.Getenv(b.env)
		if val == "" {
			continue
		}
		if err := b.set(c, val); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks settings that the factory does not
func (c *Config) Validate() error {
	if c.CatalogSize <= 0 {
		return fmt.Errorf("catalog size must be positive, got %d", c.CatalogSize)
	}
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	return nil
}
