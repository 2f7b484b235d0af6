// Package textextract turns statement files into plain text. Plain-text
// statements pass through unchanged; PDF statements are converted with the
// pdftotext command-line tool.
package textextract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extractor extracts the plain-text content of a statement file.
// Implementations exist for production use and for testing.
type Extractor interface {
	// ExtractText returns the text content of the file at path.
	ExtractText(ctx context.Context, path string) (string, error)
}

// FileExtractor is the production implementation. It reads .txt files
// directly and shells out to pdftotext for .pdf files, so pdftotext must be
// installed for PDF support.
type FileExtractor struct{}

// NewFileExtractor creates a new FileExtractor instance.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// ExtractText extracts text from a statement file based on its extension.
func (e *FileExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractFromPDF(ctx, path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("error reading statement file: %w", err)
		}
		return string(data), nil
	}
}

func extractFromPDF(ctx context.Context, pdfFile string) (string, error) {
	tempFile := pdfFile + ".txt"

	cmd := exec.CommandContext(ctx, "pdftotext", "-layout", pdfFile, tempFile)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}
	defer os.Remove(tempFile)

	output, err := os.ReadFile(tempFile)
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}
	return string(output), nil
}

// MockExtractor implements Extractor for testing. It returns predefined
// text or an error instead of touching the filesystem.
type MockExtractor struct {
	MockText string
	MockErr  error

	// Paths records every path ExtractText was called with.
	Paths []string
}

// NewMockExtractor creates a new MockExtractor with the given mock data.
func NewMockExtractor(mockText string, mockErr error) *MockExtractor {
	return &MockExtractor{MockText: mockText, MockErr: mockErr}
}

// ExtractText returns the predefined mock text or error.
func (e *MockExtractor) ExtractText(_ context.Context, path string) (string, error) {
	e.Paths = append(e.Paths, path)
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
