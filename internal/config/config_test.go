package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"model": "gemini-2.5-flash",
		"use_ai": true,
		"out_dir": "results",
		"experience_match_threshold": 0.85,
		"ai_bonus": 0.25
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.True(t, cfg.UseAI)
	assert.Equal(t, "results", cfg.OutDir)
	assert.InDelta(t, 0.85, cfg.ExperienceMatchThreshold, 0.0001)
	assert.InDelta(t, 0.25, cfg.AIBonus, 0.0001)
	assert.Zero(t, cfg.SkillCategoryThreshold, "unset values stay zero so defaults apply")
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `{"model": `))
		assert.Error(t, err)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `{"skill_category_threshold": 1.5}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skill_category_threshold")
	})

	t.Run("negative penalty", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `{"validation_penalty": -0.1}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation_penalty")
	})
}

func TestValidateZeroConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}
