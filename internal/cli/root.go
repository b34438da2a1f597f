package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/datacube-go/agdcmeta/internal/config"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/internal/locator"
	"github.com/datacube-go/agdcmeta/internal/logging"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

var rootCmd = &cobra.Command{
	Use:   "agdcmeta",
	Short: "Locate dataset metadata documents",
	Long: `agdcmeta finds the metadata document that describes a dataset.

A dataset is a directory or a single file. Its metadata document is either:
  - the path itself, when it names a .yaml, .yml or .json file (optionally .gz)
  - <directory>/agdc-metadata.<suffix> for a directory dataset
  - <file>.agdc-md.<suffix> next to a data file

Suffixes are matched in a fixed order and without regard to letter case.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Dataset path does not exist
  21 - No metadata document found
  22 - Metadata document could not be decoded
  23 - Compared datasets differ`,
	SilenceUsage: true,
}

var (
	configPath   string
	outputFormat string
)

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./"+config.ConfigFileName+" if present)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: text or json (overrides config)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// loadSettings loads .env, the config file and environment overrides, then
// applies command line flags. A missing default config file is not an error.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", agdcmeta.ErrInvalidConfig, configPath)
		}
	} else {
		cfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	cfg.ApplyEnv()
	if outputFormat != "" {
		cfg.Output = outputFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if getVerboseFlag(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[VERBOSE] Output: %s, color: %s, compare field: %s\n", cfg.Output, cfg.Color, cfg.CompareField)
	}
	return cfg, nil
}

// newLogger returns a console logger writing to the command's stderr.
func newLogger(cmd *cobra.Command) agdcmeta.Logger {
	return logging.NewWriterLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

func newLocator(fsys filesystem.FileSystemProvider, logger agdcmeta.Logger) *locator.Locator {
	return locator.NewLocatorWithFS(fsys, logger)
}
