package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// APIConfig aggregates the settings required by the REST API server
type APIConfig struct {
	Server   ServerSettings   `mapstructure:"server"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Import   ImportSettings   `mapstructure:"import"`
}

// CLIConfig aggregates the settings required by the dataset loader CLI
type CLIConfig struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Import   ImportSettings   `mapstructure:"import"`
}

// InitializeAPIConfig loads, overlays and validates the API server configuration
func InitializeAPIConfig(configPath string) (*APIConfig, error) {
	v, err := readConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_header_timeout_sec", 10)
	v.SetDefault("server.shutdown_timeout_sec", 15)
	setImportDefaults(v)

	// The hosting platform injects PORT; it wins over the config file.
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT: %w", err)
	}
	if err := bindImportEnv(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitializeCLIConfig loads, overlays and validates the CLI configuration
func InitializeCLIConfig(configPath string) (*CLIConfig, error) {
	v, err := readConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	setImportDefaults(v)
	if err := bindImportEnv(v); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks all nested settings of the API configuration
func (c *APIConfig) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Import.Validate()
}

// Validate checks all nested settings of the CLI configuration
func (c *CLIConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Import.Validate()
}

func readConfigFile(configPath string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	return v, nil
}

func setImportDefaults(v *viper.Viper) {
	v.SetDefault("import.workers", 4)
	v.SetDefault("import.batch_size", 500)
}

func bindImportEnv(v *viper.Viper) error {
	if err := v.BindEnv("import.workers", "WORKERS"); err != nil {
		return fmt.Errorf("failed to bind WORKERS: %w", err)
	}
	return nil
}
