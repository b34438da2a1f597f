package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datacube-go/agdcmeta/internal/config"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

var probeCmd = &cobra.Command{
	Use:   "probe <stem>",
	Short: "Find <stem>.<suffix> for the first recognized metadata suffix",
	Long: `Probe a path stem for a metadata document.

The stem is a path without its metadata extension. Recognized suffixes are
tried in order (` + strings.Join(agdcmeta.MetadataSuffixes, ", ") + `) and letter case
is ignored. The first existing file is printed.

Examples:
  agdcmeta probe /data/scene/agdc-metadata
  agdcmeta probe /data/scene.tif.agdc-md`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

type probeResult struct {
	Stem     string `json:"stem"`
	Metadata string `json:"metadata,omitempty"`
	Found    bool   `json:"found"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	stem := args[0]
	loc := newLocator(filesystem.NewOSFileSystem(), newLogger(cmd))
	mdPath, found := loc.FindWithAnySuffix(stem)

	if cfg.Output == config.OutputJSON {
		if err := writeJSON(cmd.OutOrStdout(), probeResult{Stem: stem, Metadata: mdPath, Found: found}); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	} else if found {
		fmt.Fprintln(cmd.OutOrStdout(), mdPath)
	}

	if !found {
		return fmt.Errorf("no metadata document matches %s.{%s}: %w",
			stem, strings.Join(agdcmeta.MetadataSuffixes, ","), agdcmeta.ErrMetadataNotFound)
	}
	return nil
}
