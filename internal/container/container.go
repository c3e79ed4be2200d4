package container

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/guicheweb/recibo/internal/application/port"
	"github.com/guicheweb/recibo/internal/application/service"
)

// Container manages all application dependencies and lifecycle.
// Components are initialized in dependency order and released in reverse.
type Container struct {
	config *Config
	logger *zap.Logger

	// Infrastructure - Storage
	storage *StorageBundle

	// Infrastructure - Rendering
	renderers *RendererBundle

	// Infrastructure - External
	directory port.CityDirectory

	// Application
	services *ServiceBundle

	// Lifecycle
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	ready  atomic.Bool
	closed atomic.Bool
}

// HealthStatus represents the health of all components.
type HealthStatus struct {
	Overall    bool                       `json:"overall"`
	Components map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health of a single component.
type ComponentHealth struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// NewContainer creates a new container from configuration.
// It does not initialize components - call Start() to initialize.
func NewContainer(cfg *Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Container{
		config: cfg,
		logger: logger,
	}, nil
}

// Start initializes all components.
// Components are initialized in dependency order:
// 1. Storage
// 2. Composer and renderers
// 3. City directory
// 4. Application services
func (c *Container) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return fmt.Errorf("container has been closed")
	}

	if c.ready.Load() {
		return fmt.Errorf("container already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)
	c.logger.Info("Starting container initialization")

	// Step 1: Initialize storage
	if err := c.initStorage(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.logger.Info("Storage initialized", zap.String("output_dir", c.config.Storage.OutputDir))

	// Step 2: Initialize composer and renderers
	if err := c.initRenderers(); err != nil {
		return fmt.Errorf("failed to initialize renderers: %w", err)
	}
	c.logger.Info("Renderers initialized")

	// Step 3: Initialize the city directory
	if err := c.initDirectory(); err != nil {
		return fmt.Errorf("failed to initialize city directory: %w", err)
	}
	c.logger.Info("City directory initialized", zap.Bool("remote_enabled", c.config.Locations.RemoteEnabled))

	// Step 4: Initialize application services
	if err := c.initServices(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	c.logger.Info("Application services initialized")

	c.ready.Store(true)
	c.logger.Info("Container started successfully")

	return nil
}

// Close shuts the container down. Components hold no open resources, so
// closing only cancels the container context and flips the lifecycle flags.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return fmt.Errorf("container already closed")
	}

	c.logger.Info("Closing container")

	if c.cancel != nil {
		c.cancel()
	}

	c.closed.Store(true)
	c.ready.Store(false)

	c.logger.Info("Container closed successfully")
	return nil
}

// Ready returns true when all components are initialized.
func (c *Container) Ready() bool {
	return c.ready.Load()
}

// Health returns health status of all components.
func (c *Container) Health() *HealthStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := &HealthStatus{
		Overall:    true,
		Components: make(map[string]ComponentHealth),
	}

	set := func(name string, health ComponentHealth) {
		status.Components[name] = health
		if !health.Healthy {
			status.Overall = false
		}
	}

	// Check output directory
	if c.storage == nil {
		set("storage", ComponentHealth{Healthy: false, Message: "not initialized"})
	} else if info, err := os.Stat(c.config.Storage.OutputDir); err == nil && !info.IsDir() {
		set("storage", ComponentHealth{Healthy: false, Message: "output path is not a directory"})
	} else {
		// a missing directory is created on the first export
		set("storage", ComponentHealth{Healthy: true})
	}

	// Check renderers
	if c.renderers != nil {
		set("renderers", ComponentHealth{Healthy: true})
	} else {
		set("renderers", ComponentHealth{Healthy: false, Message: "not initialized"})
	}

	// Check city directory
	if c.directory != nil {
		health := ComponentHealth{Healthy: true, Message: "bundled table"}
		if c.config.Locations.RemoteEnabled {
			health.Message = "ibge lookups enabled"
		}
		set("locations", health)
	} else {
		set("locations", ComponentHealth{Healthy: false, Message: "not initialized"})
	}

	// Check services
	if c.services != nil {
		set("services", ComponentHealth{Healthy: true})
	} else {
		set("services", ComponentHealth{Healthy: false, Message: "not initialized"})
	}

	return status
}

// initStorage initializes file storage and folder manager using providers.
func (c *Container) initStorage() error {
	bundle, err := ProvideStorage(&c.config.Storage, c.logger)
	if err != nil {
		return err
	}
	c.storage = bundle
	return nil
}

// initRenderers initializes the composer and renderers using providers.
func (c *Container) initRenderers() error {
	bundle, err := ProvideRenderers(&c.config.Storage, &c.config.Receipt, c.logger)
	if err != nil {
		return err
	}
	c.renderers = bundle
	return nil
}

// initDirectory initializes the city directory using providers.
func (c *Container) initDirectory() error {
	directory, err := ProvideDirectory(&c.config.Locations, c.logger)
	if err != nil {
		return err
	}
	c.directory = directory
	return nil
}

// initServices initializes all application services using providers.
func (c *Container) initServices() error {
	services, err := ProvideServices(&ServiceDeps{
		Renderers: c.renderers,
		Storage:   c.storage,
		Logger:    c.logger,
	})
	if err != nil {
		return err
	}
	c.services = services
	return nil
}

// Getters for accessing container components

// Services returns all application services.
func (c *Container) Services() *ServiceBundle {
	return c.services
}

// Directory returns the city directory.
func (c *Container) Directory() port.CityDirectory {
	return c.directory
}

// Renderers returns the composer and renderers.
func (c *Container) Renderers() *RendererBundle {
	return c.renderers
}

// Storage returns the export storage components.
func (c *Container) Storage() *StorageBundle {
	return c.storage
}

// Logger returns the container's logger.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// Config returns the container's configuration.
func (c *Container) Config() *Config {
	return c.config
}

// zapLoggerAdapter adapts zap.Logger to the service.Logger interface.
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	fields := convertToZapFields(keysAndValues...)
	a.logger.Info(msg, fields...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	fields := convertToZapFields(keysAndValues...)
	a.logger.Error(msg, fields...)
}

// convertToZapFields converts key-value pairs to zap fields.
func convertToZapFields(keysAndValues ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

// NewLoggerAdapter exposes the key-value logger used by the services to
// outer adapters such as the HTTP server.
func NewLoggerAdapter(logger *zap.Logger) service.Logger {
	return &zapLoggerAdapter{logger: logger}
}
