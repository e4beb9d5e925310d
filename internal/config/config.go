// Package config loads the CLI configuration from an optional YAML file with
// INVINDEX_* environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	PolicyPlain      = "plain"
	PolicyCompressed = "compressed"
	PolicyPacked     = "packed"
	PolicyBolt       = "bolt"
	PolicyRdb        = "rdb"
)

// Policies lists every storage policy the CLI can build.
var Policies = []string{PolicyPlain, PolicyCompressed, PolicyPacked, PolicyBolt, PolicyRdb}

// Config is the top-level configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects and configures the storage policy.
type StorageConfig struct {
	Policy   string `yaml:"policy"`
	Encoding string `yaml:"encoding"`
	Level    int    `yaml:"level"`
}

// MySQLConfig holds the connection parameters of the rdb policy.
type MySQLConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if path is not empty), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Policy:   PolicyPlain,
			Encoding: "utf8",
			Level:    6,
		},
		MySQL: MySQLConfig{
			User:     "root",
			Addr:     "127.0.0.1",
			Port:     "3306",
			Database: "invindex",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("INVINDEX_STORAGE_POLICY"); v != "" {
		cfg.Storage.Policy = v
	}
	if v := os.Getenv("INVINDEX_STORAGE_ENCODING"); v != "" {
		cfg.Storage.Encoding = v
	}
	if v := os.Getenv("INVINDEX_STORAGE_LEVEL"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INVINDEX_STORAGE_LEVEL: %w", err)
		}
		cfg.Storage.Level = level
	}
	if v := os.Getenv("INVINDEX_MYSQL_USER"); v != "" {
		cfg.MySQL.User = v
	}
	if v := os.Getenv("INVINDEX_MYSQL_PASSWORD"); v != "" {
		cfg.MySQL.Password = v
	}
	if v := os.Getenv("INVINDEX_MYSQL_ADDR"); v != "" {
		cfg.MySQL.Addr = v
	}
	if v := os.Getenv("INVINDEX_MYSQL_PORT"); v != "" {
		cfg.MySQL.Port = v
	}
	if v := os.Getenv("INVINDEX_MYSQL_DATABASE"); v != "" {
		cfg.MySQL.Database = v
	}
	if v := os.Getenv("INVINDEX_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("INVINDEX_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

// Validate checks the policy name. The compression level is left to the
// compressor, which rejects unsupported levels when dumping.
func (c *Config) Validate() error {
	if !IsPolicy(c.Storage.Policy) {
		return fmt.Errorf("unknown storage policy %q, want one of %v", c.Storage.Policy, Policies)
	}
	if c.Storage.Encoding == "" {
		return fmt.Errorf("storage encoding must not be empty")
	}
	return nil
}

func IsPolicy(name string) bool {
	for _, p := range Policies {
		if p == name {
			return true
		}
	}
	return false
}
