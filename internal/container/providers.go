package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/guicheweb/recibo/internal/application/port"
	"github.com/guicheweb/recibo/internal/application/service"
	"github.com/guicheweb/recibo/internal/locations"
	"github.com/guicheweb/recibo/internal/storage"
	"github.com/guicheweb/recibo/internal/voucher"
)

// StorageBundle groups the export storage components.
type StorageBundle struct {
	FileStorage   port.FileStorage
	FolderManager port.FolderManager
}

// RendererBundle groups the document composer and the file renderers.
type RendererBundle struct {
	Composer port.DocumentComposer
	PDF      port.DocumentRenderer
	XLSX     port.DocumentRenderer
}

// ServiceBundle groups all application services.
type ServiceBundle struct {
	Receipt service.ReceiptService
}

// ProvideStorage creates file storage and folder manager rooted at the
// output directory.
func ProvideStorage(cfg *StorageConfig, logger *zap.Logger) (*StorageBundle, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &StorageBundle{
		FileStorage:   storage.NewLocalFileStorage(cfg.OutputDir, logger),
		FolderManager: storage.NewFolderManager(cfg.OutputDir, logger),
	}, nil
}

// ProvideRenderers creates the composer plus the PDF and XLSX renderers.
// A configured XLSX template must exist and contain the receipt sheet.
func ProvideRenderers(storageCfg *StorageConfig, receiptCfg *ReceiptConfig, logger *zap.Logger) (*RendererBundle, error) {
	if storageCfg == nil || receiptCfg == nil {
		return nil, fmt.Errorf("renderer config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	xlsx, err := voucher.NewExcelFiller(storageCfg.TemplatePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create excel filler: %w", err)
	}
	if err := xlsx.ValidateTemplate(); err != nil {
		return nil, fmt.Errorf("invalid excel template: %w", err)
	}

	return &RendererBundle{
		Composer: voucher.NewComposer(receiptCfg.Footer, logger),
		PDF:      voucher.NewPDFRenderer(receiptCfg.IssuerName, logger),
		XLSX:     xlsx,
	}, nil
}

// ProvideDirectory creates the city directory.
func ProvideDirectory(cfg *LocationsConfig, logger *zap.Logger) (port.CityDirectory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("locations config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return locations.NewDirectory(locations.DirectoryConfig{
		RemoteEnabled: cfg.RemoteEnabled,
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.Timeout,
	}, logger), nil
}

// ServiceDeps holds dependencies required for creating services.
type ServiceDeps struct {
	Renderers *RendererBundle
	Storage   *StorageBundle
	Logger    *zap.Logger
}

// ProvideServices creates all application services.
func ProvideServices(deps *ServiceDeps) (*ServiceBundle, error) {
	if deps == nil {
		return nil, fmt.Errorf("service dependencies are required")
	}
	if deps.Renderers == nil {
		return nil, fmt.Errorf("renderers are required")
	}
	if deps.Storage == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	serviceLogger := &zapLoggerAdapter{logger: deps.Logger}

	return &ServiceBundle{
		Receipt: service.NewReceiptService(
			deps.Renderers.Composer,
			deps.Renderers.PDF,
			deps.Renderers.XLSX,
			deps.Storage.FolderManager,
			deps.Storage.FileStorage,
			serviceLogger,
		),
	}, nil
}
