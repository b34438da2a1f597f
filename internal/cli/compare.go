package cli

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/datacube-go/agdcmeta/internal/config"
	"github.com/datacube-go/agdcmeta/internal/document"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

var compareCmd = &cobra.Command{
	Use:   "compare <dataset_path>...",
	Short: "Check that datasets agree on a metadata field",
	Long: `Resolve each dataset, read the first document of its metadata file and
check that every dataset holds the same value for a field.

The field is a dotted path into the document (e.g. product.name or
platform.code). A dataset without the field counts as a mismatch.

Examples:
  # Same product?
  agdcmeta compare /data/scene1.tif /data/scene2.tif

  # Same platform?
  agdcmeta compare --field platform.code /data/a /data/b /data/c`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

var compareField string

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareField, "field", "", "Dotted document field to compare (default from config: "+config.DefaultCompareField+")")
}

type compareValue struct {
	Dataset string `json:"dataset"`
	Present bool   `json:"present"`
	Value   any    `json:"value,omitempty"`
}

type compareResult struct {
	Field  string         `json:"field"`
	Equal  bool           `json:"equal"`
	Values []compareValue `json:"values"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	field := cfg.CompareField
	if compareField != "" {
		field = compareField
	}

	fsys := filesystem.NewOSFileSystem()
	loc := newLocator(fsys, newLogger(cmd))

	docs := make([]document.Document, 0, len(args))
	for _, datasetPath := range args {
		mdPath, err := loc.Resolve(datasetPath)
		if err != nil {
			return err
		}
		loaded, err := document.Load(fsys, mdPath)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return &document.DecodeError{Path: mdPath, Index: -1, Message: "file contains no documents"}
		}
		docs = append(docs, loaded[0])
	}

	get := func(d document.Document) (any, bool) { return d.Field(field) }
	equal := agdcmeta.AllEqualFunc(docs, get, reflect.DeepEqual)

	result := compareResult{Field: field, Equal: equal, Values: make([]compareValue, len(docs))}
	for i, d := range docs {
		v, ok := get(d)
		result.Values[i] = compareValue{Dataset: args[i], Present: ok, Value: v}
	}

	if cfg.Output == config.OutputJSON {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	} else {
		printCompare(cmd, cfg, result)
	}

	if !equal {
		return fmt.Errorf("%s: %w", field, agdcmeta.ErrValuesDiffer)
	}
	return nil
}

func printCompare(cmd *cobra.Command, cfg *config.Config, result compareResult) {
	out := cmd.OutOrStdout()
	st := newStyles(out, cfg.Color)

	for _, v := range result.Values {
		value := st.Muted("(absent)")
		if v.Present {
			value = fmt.Sprint(v.Value)
		}
		fmt.Fprintf(out, "%s\t%s\n", v.Dataset, value)
	}
	if result.Equal {
		fmt.Fprintf(out, "%s %s\n", st.OK("equal"), result.Field)
	} else {
		fmt.Fprintf(out, "%s %s\n", st.Fail("differ"), result.Field)
	}
}
