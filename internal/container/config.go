// Package container provides dependency injection and lifecycle management
// for the receipt generator.
package container

import (
	"fmt"
	"time"
)

// Config holds all configuration for the Container.
// It aggregates configurations for all subsystems.
type Config struct {
	// Storage configuration
	Storage StorageConfig

	// Receipt content configuration
	Receipt ReceiptConfig

	// City directory configuration
	Locations LocationsConfig

	// Server configuration
	Server ServerConfig
}

// StorageConfig holds export settings.
type StorageConfig struct {
	// OutputDir is the root of the per-receipt export folders
	OutputDir string

	// TemplatePath is an optional XLSX template with a "Recibo" sheet
	TemplatePath string
}

// ReceiptConfig holds settings printed on every receipt.
type ReceiptConfig struct {
	// Footer is printed at the bottom of the receipt
	Footer string

	// IssuerName is written to the PDF metadata
	IssuerName string
}

// LocationsConfig holds IBGE lookup settings.
type LocationsConfig struct {
	RemoteEnabled bool
	BaseURL       string
	Timeout       time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			OutputDir: "generated_receipts",
		},
		Locations: LocationsConfig{
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// Validate checks that required configuration values are present.
func (c *Config) Validate() error {
	if c.Storage.OutputDir == "" {
		return fmt.Errorf("storage.output_dir is required")
	}
	if c.Locations.RemoteEnabled && c.Locations.BaseURL == "" {
		return fmt.Errorf("locations.base_url is required when remote lookups are enabled")
	}
	return nil
}
