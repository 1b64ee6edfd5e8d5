package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds configuration for the HTTP server
type ServerSettings struct {
	Port                 int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeoutSec int `mapstructure:"read_header_timeout_sec" validate:"min=0,max=300"`
	ShutdownTimeoutSec   int `mapstructure:"shutdown_timeout_sec" validate:"min=0,max=300"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}

// Addr returns the listen address for the configured port
func (s *ServerSettings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// ImportSettings holds configuration for dataset imports
type ImportSettings struct {
	Workers   int `mapstructure:"workers" validate:"required,min=1,max=32"`
	BatchSize int `mapstructure:"batch_size" validate:"required,min=1,max=10000"`
}

// Validate checks that all fields in ImportSettings are valid
func (s *ImportSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ImportSettings: %w", err)
	}

	return nil
}
