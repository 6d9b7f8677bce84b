package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "assistant", cfg.Defaults.Persona)
	assert.Equal(t, "none", cfg.Defaults.Grounding)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  key: file-key
defaults:
  persona: code
  grounding: search
  reasoning: true
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, "code", cfg.Defaults.Persona)
	assert.Equal(t, "search", cfg.Defaults.Grounding)
	assert.True(t, cfg.Defaults.Reasoning)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  key: file-key\n"), 0o644))

	t.Run("GOOGLE_API_KEY overrides file", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GOOGLE_API_KEY", "google-key")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "google-key", cfg.API.Key)
	})

	t.Run("GEMINI_API_KEY wins over GOOGLE_API_KEY", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "google-key")
		t.Setenv("GEMINI_API_KEY", "gemini-key")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "gemini-key", cfg.API.Key)
	})
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("missing key is fatal", func(t *testing.T) {
		cfg := Default()
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("valid config passes", func(t *testing.T) {
		cfg := Default()
		cfg.API.Key = "k"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown persona rejected", func(t *testing.T) {
		cfg := Default()
		cfg.API.Key = "k"
		cfg.Defaults.Persona = "pirate"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown grounding rejected", func(t *testing.T) {
		cfg := Default()
		cfg.API.Key = "k"
		cfg.Defaults.Grounding = "bing"
		assert.Error(t, cfg.Validate())
	})
}
