package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes one ingested resume document
type Metadata struct {
	Source    string `json:"source,omitempty"` // file path or "html"/"text"
	Timestamp string `json:"timestamp"`        // RFC3339
	Hash      string `json:"hash"`             // SHA256 hex digest of the cleaned text
	CharCount int    `json:"char_count"`
	LineCount int    `json:"line_count"`
}

// NewMetadata creates Metadata for cleaned document text
func NewMetadata(text, source string) *Metadata {
	lineCount := 0
	if text != "" {
		lineCount = strings.Count(text, "\n") + 1
	}
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(text),
		CharCount: len(text),
		LineCount: lineCount,
	}
}

// computeHash computes the SHA256 hash of content as a hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
