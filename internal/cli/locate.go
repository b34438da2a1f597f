package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datacube-go/agdcmeta/internal/config"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/internal/locator"
)

var locateCmd = &cobra.Command{
	Use:   "locate <dataset_path>...",
	Short: "Print the metadata document path for each dataset",
	Long: `Resolve each dataset path to its metadata document.

Resolved paths are printed to stdout, one per line, in argument order.
Every path is attempted; failures are reported on stderr and the command
exits with the code of the first failure.

Examples:
  # Directory dataset
  agdcmeta locate /data/LS8_OLI_NBAR_3577_-14_-40_2015

  # Data file with a sibling .agdc-md.yaml
  agdcmeta locate /data/scene.tif

  # Several datasets as JSON
  agdcmeta locate -o json /data/*.tif`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

// locateResult is one entry of `locate -o json` output.
type locateResult struct {
	Input    string `json:"input"`
	Metadata string `json:"metadata,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	loc := newLocator(filesystem.NewOSFileSystem(), newLogger(cmd))
	errStyles := newStyles(cmd.ErrOrStderr(), cfg.Color)

	results := make([]locateResult, 0, len(args))
	var firstErr error
	failed := 0

	for _, datasetPath := range args {
		mdPath, err := loc.Resolve(datasetPath)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			results = append(results, locateResult{Input: datasetPath, Error: err.Error()})
			if cfg.Output == config.OutputText {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errStyles.Fail("✗"), err)
			}
			continue
		}

		results = append(results, locateResult{Input: datasetPath, Metadata: mdPath})
		if cfg.Output == config.OutputText {
			fmt.Fprintln(cmd.OutOrStdout(), mdPath)
		}
	}

	if cfg.Output == config.OutputJSON {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d dataset path(s) could not be resolved: %w", failed, len(args), causeOf(firstErr))
	}
	return nil
}

// causeOf strips the ResolutionError context that was already printed,
// keeping the sentinel that selects the exit code.
func causeOf(err error) error {
	var resErr *locator.ResolutionError
	if errors.As(err, &resErr) && resErr.Err != nil {
		return resErr.Err
	}
	return err
}
