package port

import "github.com/guicheweb/recibo/internal/storage"

// FileStorage writes exported files
type FileStorage interface {
	SaveFileWithType(fullPath string, content []byte, fileType storage.FileType) error
	ValidatePath(fullPath string) error
}

// FolderManager manages one export folder per receipt
type FolderManager interface {
	CreateReceiptFolder(receiptID string) (string, error)
	GetReceiptFolderPath(receiptID string) string
	FolderExists(receiptID string) bool
	DeleteReceiptFolder(receiptID string) error
}
