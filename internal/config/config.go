// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Model   string `json:"model,omitempty"`   // Gemini model name
	UseAI   bool   `json:"use_ai,omitempty"`  // Enable the AI candidate pass
	Verbose bool   `json:"verbose,omitempty"` // Print detailed result summaries
	OutDir  string `json:"out_dir,omitempty"` // Directory for result JSON files

	// Merge thresholds (zero means use the default)
	ExperienceMatchThreshold    float64 `json:"experience_match_threshold,omitempty"`
	SkillCategoryThreshold      float64 `json:"skill_category_threshold,omitempty"`
	SkillItemDuplicateThreshold float64 `json:"skill_item_duplicate_threshold,omitempty"`

	// Scoring weights (zero means use the default)
	AIBonus           float64 `json:"ai_bonus,omitempty"`
	ValidationPenalty float64 `json:"validation_penalty,omitempty"`
	ImprovementBonus  float64 `json:"improvement_bonus,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks threshold and weight ranges
func (c *Config) Validate() error {
	thresholds := map[string]float64{
		"experience_match_threshold":     c.ExperienceMatchThreshold,
		"skill_category_threshold":       c.SkillCategoryThreshold,
		"skill_item_duplicate_threshold": c.SkillItemDuplicateThreshold,
	}
	for name, value := range thresholds {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %g", name, value)
		}
	}
	if c.ValidationPenalty < 0 {
		return fmt.Errorf("validation_penalty must not be negative, got %g", c.ValidationPenalty)
	}
	return nil
}
