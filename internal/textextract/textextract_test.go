package textextract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExtractorPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	content := "2025.07.14 valörlü GZ: -1.234,56 TL\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	text, err := NewFileExtractor().ExtractText(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestFileExtractorMissingFile(t *testing.T) {
	_, err := NewFileExtractor().ExtractText(context.Background(),
		filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestMockExtractor(t *testing.T) {
	mock := NewMockExtractor("some text", nil)

	text, err := mock.ExtractText(context.Background(), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "some text", text)
	assert.Equal(t, []string{"a.pdf"}, mock.Paths)
}

func TestMockExtractorError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := NewMockExtractor("", wantErr)

	_, err := mock.ExtractText(context.Background(), "a.pdf")
	assert.ErrorIs(t, err, wantErr)
}
