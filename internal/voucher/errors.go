package voucher

import "errors"

// Errors returned while composing and rendering receipts
var (
	ErrNilReceipt  = errors.New("receipt is nil")
	ErrNilDocument = errors.New("document is nil")

	ErrTemplateNotFound = errors.New("template file not found")
	ErrInvalidTemplate  = errors.New("invalid template structure")

	ErrRenderFailed   = errors.New("failed to render document")
	ErrFileSaveFailed = errors.New("failed to save file")
)
