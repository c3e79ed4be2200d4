package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RECIBO_SERVER_PORT
const EnvPrefix = "RECIBO"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Receipt   ReceiptConfig   `mapstructure:"receipt"`
	Locations LocationsConfig `mapstructure:"locations"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
}

// ReceiptConfig holds receipt generation configuration
type ReceiptConfig struct {
	OutputDir    string `mapstructure:"output_dir"`
	TemplatePath string `mapstructure:"template_path"` // optional XLSX template
	Footer       string `mapstructure:"footer"`
	IssuerName   string `mapstructure:"issuer_name"`
}

// LocationsConfig holds city directory configuration
type LocationsConfig struct {
	RemoteEnabled bool          `mapstructure:"remote_enabled"`
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables.
// An empty configPath uses defaults and the environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.mode", "release")

	// Receipt defaults
	v.SetDefault("receipt.output_dir", "generated_receipts")
	v.SetDefault("receipt.template_path", "")
	v.SetDefault("receipt.footer", "")
	v.SetDefault("receipt.issuer_name", "")

	// Locations defaults
	v.SetDefault("locations.remote_enabled", false)
	v.SetDefault("locations.base_url", "https://servicodados.ibge.gov.br/api/v1/localidades")
	v.SetDefault("locations.timeout", 10*time.Second)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")
}

// bindEnvVars binds the short environment names used by deployments
func bindEnvVars(v *viper.Viper) error {
	bindings := map[string]string{
		"server.port":              "PORT",
		"logger.level":             "LOG_LEVEL",
		"receipt.footer":           "RECIBO_FOOTER",
		"receipt.issuer_name":      "RECIBO_ISSUER_NAME",
		"locations.remote_enabled": "RECIBO_IBGE_ENABLED",
	}
	for key, env := range bindings {
		// the prefixed form stays first so RECIBO_SERVER_PORT wins over PORT
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}

	if strings.TrimSpace(c.Receipt.OutputDir) == "" {
		return fmt.Errorf("receipt.output_dir is required")
	}

	if c.Locations.RemoteEnabled && c.Locations.BaseURL == "" {
		return fmt.Errorf("locations.base_url is required when remote lookups are enabled")
	}
	if c.Locations.Timeout < 0 {
		return fmt.Errorf("locations.timeout must not be negative")
	}

	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logger.format must be json or console, got %q", c.Logger.Format)
	}

	return nil
}
