package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"crlf normalized", "line one\r\nline two", "line one\nline two"},
		{"bare cr normalized", "line one\rline two", "line one\nline two"},
		{"trailing whitespace stripped", "line one   \t\nline two", "line one\nline two"},
		{"interior spaces collapsed", "Jane    Doe", "Jane Doe"},
		{"indent preserved", "  • indented bullet", "  • indented bullet"},
		{"blank runs reduced", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding blank lines trimmed", "\n\nJane Doe\n\n", "Jane Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestFromText(t *testing.T) {
	doc := FromText("Jane   Doe\r\n\r\n\r\nEXPERIENCE")
	assert.Equal(t, "Jane Doe\n\nEXPERIENCE", doc.Text)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\njane@example.com\n"), 0o644))

	doc, meta, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\njane@example.com", doc.Text)
	require.NotNil(t, meta)
	assert.Equal(t, path, meta.Source)
	assert.Equal(t, len(doc.Text), meta.CharCount)
	assert.Equal(t, 2, meta.LineCount)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestFromFileMissing(t *testing.T) {
	doc, meta, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Nil(t, doc)
	assert.Nil(t, meta)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
