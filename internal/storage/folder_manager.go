package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var unsafeFolderChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

// FolderManager manages one export folder per receipt under the output
// directory
type FolderManager struct {
	baseDir string
	logger  *zap.Logger
}

// NewFolderManager creates a new FolderManager
func NewFolderManager(baseDir string, logger *zap.Logger) *FolderManager {
	return &FolderManager{
		baseDir: baseDir,
		logger:  logger,
	}
}

// BaseDir returns the output directory
func (m *FolderManager) BaseDir() string {
	return m.baseDir
}

// CreateReceiptFolder creates {baseDir}/{receiptID}/ and returns its path.
// Creating an existing folder is not an error.
func (m *FolderManager) CreateReceiptFolder(receiptID string) (string, error) {
	safeName := m.SanitizeFolderName(receiptID)
	if safeName == "" {
		return "", fmt.Errorf("cannot create folder: empty receipt ID")
	}

	folderPath := filepath.Join(m.baseDir, safeName)

	if err := os.MkdirAll(folderPath, 0755); err != nil {
		m.logger.Error("Failed to create receipt folder",
			zap.String("receipt_id", receiptID),
			zap.String("folder_path", folderPath),
			zap.Error(err))
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	m.logger.Debug("Created receipt folder",
		zap.String("receipt_id", receiptID),
		zap.String("folder_path", folderPath))

	return folderPath, nil
}

// GetReceiptFolderPath returns the folder path for a receipt without
// creating it
func (m *FolderManager) GetReceiptFolderPath(receiptID string) string {
	return filepath.Join(m.baseDir, m.SanitizeFolderName(receiptID))
}

// FolderExists checks if the receipt folder already exists
func (m *FolderManager) FolderExists(receiptID string) bool {
	info, err := os.Stat(m.GetReceiptFolderPath(receiptID))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// DeleteReceiptFolder removes a receipt folder and all its contents.
// A missing folder is not an error.
func (m *FolderManager) DeleteReceiptFolder(receiptID string) error {
	if m.SanitizeFolderName(receiptID) == "" {
		return fmt.Errorf("cannot delete folder: empty receipt ID")
	}

	folderPath := m.GetReceiptFolderPath(receiptID)

	if _, err := os.Stat(folderPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.RemoveAll(folderPath); err != nil {
		m.logger.Error("Failed to delete receipt folder",
			zap.String("receipt_id", receiptID),
			zap.String("folder_path", folderPath),
			zap.Error(err))
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	m.logger.Debug("Deleted receipt folder",
		zap.String("receipt_id", receiptID),
		zap.String("folder_path", folderPath))

	return nil
}

// SanitizeFolderName keeps only ASCII letters, digits, hyphens and
// underscores so an identifier can never escape the base directory
func (m *FolderManager) SanitizeFolderName(name string) string {
	name = strings.ReplaceAll(name, "..", "")
	return unsafeFolderChars.ReplaceAllString(name, "")
}
