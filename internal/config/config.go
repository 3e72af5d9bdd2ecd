package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/ccfx/internal/logger"
)

// Config holds output settings shared by the ccfx binaries.
type Config struct {
	// LogLevel is the minimum level for console logging.
	LogLevel string `yaml:"log_level"`
	// OutputFormat selects how the build report is rendered, "text" or "yaml".
	OutputFormat string `yaml:"output_format"`
}

const (
	// DefaultConfigFilename is the default filename for output settings.
	DefaultConfigFilename = "ccfx-settings.yaml"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// OutputFormatText renders the report as aligned plain text.
	OutputFormatText = "text"
	// OutputFormatYAML renders the report as a YAML document.
	OutputFormatYAML = "yaml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownOutputFormat is returned for output formats outside the supported set.
	errUnknownOutputFormat = errors.New(`output format must be "text" or "yaml"`)
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		OutputFormat: OutputFormatText,
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputFormatText
	}

	if cfg.OutputFormat != OutputFormatText && cfg.OutputFormat != OutputFormatYAML {
		return errUnknownOutputFormat
	}

	return nil
}
