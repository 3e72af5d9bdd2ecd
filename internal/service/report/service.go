package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/ccfx/internal/config"
	"github.com/oshokin/ccfx/internal/logger"
	"github.com/oshokin/ccfx/internal/platform"
	"github.com/oshokin/ccfx/internal/version"
)

// applicationName is the product name shown in the report header.
const applicationName = "ccfx"

// Options configures a single report run.
type Options struct {
	// ConfigPath is the path to the configuration YAML file.
	ConfigPath string
	// OutputFormat overrides the configured format when non-empty.
	OutputFormat string
	// LogLevel overrides the configured console log level when non-empty.
	LogLevel string
	// Writer receives the rendered report. Defaults to os.Stdout.
	Writer io.Writer
}

// Report aggregates everything the binary knows about itself.
type Report struct {
	// Application is the product name.
	Application string `yaml:"application"`
	// Version is the dotted four-component application version.
	Version string `yaml:"version"`
	// Platform is the compiled-in build target label.
	Platform string `yaml:"platform"`
	// Commit is the source revision the binary was built from.
	Commit string `yaml:"commit"`
	// BuildTime is the UTC build timestamp.
	BuildTime string `yaml:"build_time"`
	// GoVersion is the Go toolchain release that produced the binary.
	GoVersion string `yaml:"go_version"`
}

// New collects the build report for the running binary.
func New() Report {
	return Report{
		Application: applicationName,
		Version:     version.Short(),
		Platform:    platform.Name,
		Commit:      version.Commit,
		BuildTime:   version.BuildTime,
		GoVersion:   runtime.Version(),
	}
}

// Run renders the build report according to the configuration and options.
func Run(ctx context.Context, options *Options) error {
	cfg, err := loadConfig(ctx, options.ConfigPath)
	if err != nil {
		return err
	}

	levelSource := cfg.LogLevel
	if options.LogLevel != "" {
		levelSource = options.LogLevel
	}

	if level, ok := logger.ParseLogLevel(levelSource); ok {
		logger.SetLevel(level)
	}

	format := cfg.OutputFormat
	if options.OutputFormat != "" {
		format = options.OutputFormat
	}

	out := options.Writer
	if out == nil {
		out = os.Stdout
	}

	r := New()

	logger.InfoKV(ctx, "rendering build report",
		"version", r.Version,
		"platform", r.Platform,
		"format", format)

	switch format {
	case config.OutputFormatYAML:
		return r.renderYAML(out)
	case config.OutputFormatText:
		return r.renderText(out)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// loadConfig reads the settings file, falling back to defaults when the
// file does not exist. Explicit paths that fail for any other reason are
// reported to the caller.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	cfg, err := config.Load(path)

	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, os.ErrNotExist):
		logger.Debugf(ctx, "no settings file, using defaults")

		return config.Default(), nil
	default:
		return nil, fmt.Errorf("load configuration: %w", err)
	}
}

// renderText writes the report as aligned key-value lines.
func (r Report) renderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	rows := [][2]string{
		{"Application:", r.Application},
		{"Version:", r.Version},
		{"Platform:", r.Platform},
		{"Commit:", r.Commit},
		{"Built at:", r.BuildTime},
		{"Go version:", r.GoVersion},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	return nil
}

// renderYAML writes the report as a YAML document.
func (r Report) renderYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
