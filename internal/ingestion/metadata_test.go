package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("Jane Doe\njane@example.com", "resume.txt")

	assert.Equal(t, "resume.txt", meta.Source)
	assert.Equal(t, len("Jane Doe\njane@example.com"), meta.CharCount)
	assert.Equal(t, 2, meta.LineCount)
	assert.Len(t, meta.Hash, 64)

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_Empty(t *testing.T) {
	meta := NewMetadata("", "")

	assert.Zero(t, meta.CharCount)
	assert.Zero(t, meta.LineCount)
	assert.NotEmpty(t, meta.Hash, "empty content still hashes")
}

func TestMetadataHashIsStable(t *testing.T) {
	first := NewMetadata("same content", "a")
	second := NewMetadata("same content", "b")
	assert.Equal(t, first.Hash, second.Hash)

	different := NewMetadata("other content", "a")
	assert.NotEqual(t, first.Hash, different.Hash)
}

func TestMetadataToJSON(t *testing.T) {
	meta := NewMetadata("Jane Doe", "resume.txt")

	data, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, meta.Hash, decoded.Hash)
	assert.Equal(t, meta.CharCount, decoded.CharCount)
}
