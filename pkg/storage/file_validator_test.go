package storage_test

import (
	"testing"

	"health-research-cms/pkg/storage"

	"github.com/stretchr/testify/assert"
)

var (
	pdfHeader = []byte("%PDF-1.7 rest of document")
	pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
)

func TestValidateFile(t *testing.T) {
	t.Run("accepts a pdf resume", func(t *testing.T) {
		result := storage.ValidateFile("resume.pdf", pdfHeader, "application/pdf")
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
	})

	t.Run("accepts a png image", func(t *testing.T) {
		result := storage.ValidateFile("logo.PNG", pngHeader, "image/png")
		assert.True(t, result.Valid)
	})

	t.Run("rejects a disallowed extension", func(t *testing.T) {
		result := storage.ValidateFile("run.exe", []byte{0x4D, 0x5A}, "application/octet-stream")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not allowed")
	})

	t.Run("rejects content that does not match the extension", func(t *testing.T) {
		result := storage.ValidateFile("resume.pdf", pngHeader, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("rejects octet-stream mime", func(t *testing.T) {
		result := storage.ValidateFile("resume.pdf", pdfHeader, "application/octet-stream")
		assert.False(t, result.Valid)
	})

	t.Run("rejects a file without extension", func(t *testing.T) {
		result := storage.ValidateFile("resume", pdfHeader, "application/pdf")
		assert.False(t, result.Valid)
	})

	t.Run("mime parameters are stripped before matching", func(t *testing.T) {
		result := storage.ValidateFile("resume.pdf", pdfHeader, "application/pdf; charset=binary")
		assert.True(t, result.Valid)
	})
}
