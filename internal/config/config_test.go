package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks field validation and default application.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil config.
	err := Validate(nil)
	require.Error(t, err)

	// Empty config picks up defaults.
	cfg := new(Config)

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, OutputFormatText, cfg.OutputFormat)

	// Bad log level.
	cfg = &Config{LogLevel: "loud"}

	err = Validate(cfg)
	require.Error(t, err)

	// Bad output format.
	cfg = &Config{OutputFormat: "xml"}

	err = Validate(cfg)
	require.Error(t, err)

	// Okay with explicit values.
	cfg = &Config{LogLevel: "debug", OutputFormat: OutputFormatYAML}

	err = Validate(cfg)
	require.NoError(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		LogLevel:     "warn",
		OutputFormat: OutputFormatYAML,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.LogLevel, loaded.LogLevel)
	require.Equal(t, cfg.OutputFormat, loaded.OutputFormat)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadMissingFile reports a wrapped read error.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
