// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Server struct {
		Addr           string   `mapstructure:"addr" yaml:"addr"`
		AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
		MaxUploadBytes int64    `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
	} `mapstructure:"server" yaml:"server"`

	Ingest struct {
		// SourceTag is stamped on every ledger record produced by ingestion.
		// It participates in the record fingerprint, so changing it makes
		// previously ingested transactions look new.
		SourceTag   string `mapstructure:"source_tag" yaml:"source_tag"`
		Category    string `mapstructure:"category" yaml:"category"`
		Parallelism int    `mapstructure:"parallelism" yaml:"parallelism"`
	} `mapstructure:"ingest" yaml:"ingest"`

	Symbols struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"symbols" yaml:"symbols"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.vakif-ledger")
	v.AddConfigPath(".vakif-ledger")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("VAKIF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.path", "vakif.db")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_upload_bytes", int64(10*1024*1024))

	v.SetDefault("ingest.source_tag", "Vakif Statement Import v1")
	v.SetDefault("ingest.category", "Hisse Senetleri")
	v.SetDefault("ingest.parallelism", 4)

	v.SetDefault("symbols.file", "stock-codes.yaml")

	v.SetDefault("csv.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[config.Log.Level] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	if config.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	if config.Ingest.SourceTag == "" {
		return fmt.Errorf("ingest source tag cannot be empty")
	}

	if config.Ingest.Parallelism < 1 {
		return fmt.Errorf("ingest parallelism must be at least 1, got %d", config.Ingest.Parallelism)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	return nil
}
