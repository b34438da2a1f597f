package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datacube-go/agdcmeta/internal/checksum"
	"github.com/datacube-go/agdcmeta/internal/config"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/internal/files/scanner"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

var scanCmd = &cobra.Command{
	Use:   "scan <root>",
	Short: "Find every dataset below a directory",
	Long: `Walk a directory tree and list every dataset with its metadata document.

A directory holding an agdc-metadata document is reported as one dataset and
is not descended into. A data file with an .agdc-md sibling is reported as a
file dataset.

Examples:
  agdcmeta scan /data/landsat
  agdcmeta scan --checksum -o json /data/landsat`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var scanChecksums bool

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanChecksums, "checksum", false, "Fingerprint each metadata document")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var calc checksum.Calculator
	if scanChecksums {
		calc = checksum.New()
	}
	s := scanner.NewScannerWithFS(calc, filesystem.NewOSFileSystem(), newLogger(cmd))

	datasets, err := s.ScanDirectory(args[0])
	if err != nil {
		return err
	}
	if datasets == nil {
		datasets = []agdcmeta.Dataset{}
	}

	if cfg.Output == config.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), datasets)
	}

	out := cmd.OutOrStdout()
	for _, ds := range datasets {
		if scanChecksums {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", ds.Kind, ds.Path, ds.Metadata, ds.Checksum)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", ds.Kind, ds.Path, ds.Metadata)
	}
	if len(datasets) == 0 {
		st := newStyles(cmd.ErrOrStderr(), cfg.Color)
		fmt.Fprintln(cmd.ErrOrStderr(), st.Muted("No datasets found under "+args[0]))
	}
	return nil
}
