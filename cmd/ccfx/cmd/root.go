package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/ccfx/internal/config"
	"github.com/oshokin/ccfx/internal/logger"
	"github.com/oshokin/ccfx/internal/service/report"
	"github.com/oshokin/ccfx/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// outputFormat overrides the configured report format when set.
	outputFormat string
	// logLevel overrides the configured console log level when set.
	logLevel string

	// rootCmd represents the base command that prints the build report.
	rootCmd = &cobra.Command{
		Use:   "ccfx",
		Short: "Print the build report of this binary.",
		Long: `Prints what this binary is: the four-component application version,
the platform label it was built for, and the commit and timestamp of the build.

The version and platform label are fixed when the binary is compiled and cannot
be changed at runtime. The settings file only controls how the report is
rendered (text or YAML) and the console log level; both can be overridden with
flags.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if logLevel != "" {
				if _, ok := logger.ParseLogLevel(logLevel); !ok {
					return fmt.Errorf("unknown log level %q", logLevel)
				}
			}

			options := &report.Options{
				ConfigPath:   configPath,
				OutputFormat: outputFormat,
				LogLevel:     logLevel,
			}

			return report.Run(ctx, options)
		},
	}
)

// Execute runs the ccfx CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&outputFormat, "output", "o", "", `report output format: "text" or "yaml"`)
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "console log level")
}
