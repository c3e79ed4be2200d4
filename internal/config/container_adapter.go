package config

import (
	"github.com/guicheweb/recibo/internal/container"
)

// ToContainerConfig converts the application Config to a container.Config.
// This provides a bridge between the file-based config loaded by viper
// and the container's configuration structure.
func (c *Config) ToContainerConfig() *container.Config {
	return &container.Config{
		Storage: container.StorageConfig{
			OutputDir:    c.Receipt.OutputDir,
			TemplatePath: c.Receipt.TemplatePath,
		},
		Receipt: container.ReceiptConfig{
			Footer:     c.Receipt.Footer,
			IssuerName: c.Receipt.IssuerName,
		},
		Locations: container.LocationsConfig{
			RemoteEnabled: c.Locations.RemoteEnabled,
			BaseURL:       c.Locations.BaseURL,
			Timeout:       c.Locations.Timeout,
		},
		Server: container.ServerConfig{
			Host:         c.Server.Host,
			Port:         c.Server.Port,
			ReadTimeout:  c.Server.ReadTimeout,
			WriteTimeout: c.Server.WriteTimeout,
		},
	}
}
