package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datacube-go/agdcmeta/internal/checksum"
	"github.com/datacube-go/agdcmeta/internal/config"
	"github.com/datacube-go/agdcmeta/internal/document"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
)

var showCmd = &cobra.Command{
	Use:   "show <dataset_path>",
	Short: "Resolve a dataset and summarize its metadata document",
	Long: `Resolve a dataset to its metadata document, decode it and print a summary.

The summary lists each document in the file with its id and the configured
compare field (product.name by default). Document content is not validated.

Examples:
  agdcmeta show /data/scene.tif
  agdcmeta show -o json /data/LS8_scene`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type showDocument struct {
	ID      string `json:"id,omitempty"`
	Present bool   `json:"present"`
	Field   any    `json:"field"`
}

type showResult struct {
	Dataset     string         `json:"dataset"`
	Metadata    string         `json:"metadata"`
	Checksum    string         `json:"checksum"`
	ChecksumRaw string         `json:"checksum_raw"`
	Field       string         `json:"field"`
	Documents   []showDocument `json:"documents"`
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOSFileSystem()
	logger := newLogger(cmd)

	mdPath, err := newLocator(fsys, logger).Resolve(args[0])
	if err != nil {
		return err
	}

	content, err := fsys.ReadFile(mdPath)
	if err != nil {
		return &document.DecodeError{Path: mdPath, Index: -1, Message: "failed to read file", Err: err}
	}
	docs, err := document.Decode(mdPath, content)
	if err != nil {
		return err
	}
	logger.Verbose("Decoded %d document(s) from %s", len(docs), mdPath)

	calc := checksum.New()
	normalized, err := calc.CalculateNormalized(docs)
	if err != nil {
		return &document.DecodeError{Path: mdPath, Index: -1, Message: "cannot fingerprint documents", Err: err}
	}

	result := showResult{
		Dataset:     args[0],
		Metadata:    mdPath,
		Checksum:    normalized,
		ChecksumRaw: calc.CalculateRaw(content),
		Field:       cfg.CompareField,
		Documents:   make([]showDocument, 0, len(docs)),
	}
	for i, doc := range docs {
		entry := showDocument{}
		if id, err := doc.ID(); err == nil {
			entry.ID = id.String()
		} else {
			logger.Verbose("Document %d: %v", i+1, err)
		}
		entry.Field, entry.Present = doc.Field(cfg.CompareField)
		result.Documents = append(result.Documents, entry)
	}

	if cfg.Output == config.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	st := newStyles(cmd.OutOrStdout(), cfg.Color)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", st.Heading("Metadata:"), mdPath)
	fmt.Fprintf(out, "%s %s\n", st.Heading("Checksum:"), result.Checksum)
	fmt.Fprintf(out, "%s %d\n", st.Heading("Documents:"), len(docs))
	for i, d := range result.Documents {
		id := d.ID
		if id == "" {
			id = st.Muted("(no id)")
		}
		field := st.Muted("(absent)")
		switch {
		case d.Present && d.Field == nil:
			field = "null"
		case d.Present:
			field = fmt.Sprint(d.Field)
		}
		fmt.Fprintf(out, "  %d. id=%s %s=%s\n", i+1, id, cfg.CompareField, field)
	}
	return nil
}
