package agdcmeta

// DatasetKind tells how a dataset's metadata document was found.
type DatasetKind string

const (
	// DatasetDirectory is a directory holding an agdc-metadata document.
	DatasetDirectory DatasetKind = "directory"
	// DatasetFile is a data file with an .agdc-md sibling document.
	DatasetFile DatasetKind = "file"
)

// Dataset is one dataset discovered by a tree scan.
type Dataset struct {
	Path     string      `json:"path"`
	Kind     DatasetKind `json:"kind"`
	Metadata string      `json:"metadata"`

	// Fingerprints of the metadata document, set when checksums are requested.
	Checksum    string `json:"checksum,omitempty"`     // normalized (content) digest
	ChecksumRaw string `json:"checksum_raw,omitempty"` // digest of the bytes on disk
}

// DatasetScanner discovers datasets below a root directory.
type DatasetScanner interface {
	ScanDirectory(root string) ([]Dataset, error)
}
