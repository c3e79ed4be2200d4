package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalFileStorage_SaveFile(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()
	fs := NewLocalFileStorage(tempDir, logger)

	t.Run("saves file successfully", func(t *testing.T) {
		fullPath := filepath.Join(tempDir, "receipt-1", "recibo.pdf")
		content := []byte("%PDF-1.3 content")

		err := fs.SaveFileWithType(fullPath, content, FileTypePDF)

		require.NoError(t, err)
		savedContent, err := os.ReadFile(fullPath)
		require.NoError(t, err)
		assert.Equal(t, content, savedContent)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		fullPath := filepath.Join(tempDir, "deep", "nested", "dir", "recibo.xlsx")

		err := fs.SaveFileWithType(fullPath, []byte("content"), FileTypeExcel)

		require.NoError(t, err)
		assert.FileExists(t, fullPath)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		fullPath := filepath.Join(tempDir, "overwrite", "recibo.txt")

		require.NoError(t, fs.SaveFileWithType(fullPath, []byte("original"), FileTypeText))
		require.NoError(t, fs.SaveFileWithType(fullPath, []byte("updated"), FileTypeText))

		content, _ := os.ReadFile(fullPath)
		assert.Equal(t, []byte("updated"), content)
	})

	t.Run("saves empty file", func(t *testing.T) {
		fullPath := filepath.Join(tempDir, "empty.txt")
		require.NoError(t, fs.SaveFileWithType(fullPath, []byte{}, FileTypeText))

		info, err := os.Stat(fullPath)
		require.NoError(t, err)
		assert.Equal(t, int64(0), info.Size())
	})
}

func TestLocalFileStorage_ValidatePath(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()
	fs := NewLocalFileStorage(tempDir, logger)

	t.Run("accepts valid path within base", func(t *testing.T) {
		assert.NoError(t, fs.ValidatePath(filepath.Join(tempDir, "receipt", "recibo.pdf")))
	})

	t.Run("rejects path outside base directory", func(t *testing.T) {
		err := fs.ValidatePath("/etc/passwd")
		assert.ErrorIs(t, err, ErrPathEscapesBase)
	})

	t.Run("rejects path traversal attempt", func(t *testing.T) {
		err := fs.ValidatePath(filepath.Join(tempDir, "..", "..", "etc", "passwd"))
		assert.ErrorIs(t, err, ErrPathEscapesBase)
	})

	t.Run("rejects path with similar prefix", func(t *testing.T) {
		err := fs.ValidatePath(tempDir + "_malicious/file.txt")
		assert.ErrorIs(t, err, ErrPathEscapesBase)
	})

	t.Run("save refuses escaping paths", func(t *testing.T) {
		err := fs.SaveFileWithType(tempDir+"_malicious/evil.txt", []byte("x"), FileTypeText)
		assert.ErrorIs(t, err, ErrPathEscapesBase)
	})
}

func TestFileType_Extension(t *testing.T) {
	assert.Equal(t, ".pdf", FileTypePDF.Extension())
	assert.Equal(t, ".xlsx", FileTypeExcel.Extension())
	assert.Equal(t, ".txt", FileTypeText.Extension())
	assert.Equal(t, "", FileTypeGeneric.Extension())
}
