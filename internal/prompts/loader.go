// Package prompts provides the embedded LLM prompt templates.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed parser.json
var parserJSON []byte

var (
	parseOnce sync.Once
	templates map[string]string
	parseErr  error
)

// Get retrieves a prompt template by key.
func Get(key string) (string, error) {
	parseOnce.Do(func() {
		parseErr = json.Unmarshal(parserJSON, &templates)
	})
	if parseErr != nil {
		return "", fmt.Errorf("failed to parse embedded prompts: %w", parseErr)
	}

	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// MustGet retrieves a prompt template by key, panicking when absent. Use
// for templates that are required at initialization time.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(err)
	}
	return template
}

// Format replaces {{.Key}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}
