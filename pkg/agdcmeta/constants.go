package agdcmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitDatasetNotFound  = 20 // Dataset path does not exist
	ExitMetadataNotFound = 21 // No metadata convention matched
	ExitDocumentDecode   = 22 // Metadata document could not be decoded
	ExitValuesDiffer     = 23 // Compared datasets disagree on a field
)

const (
	// MetadataBaseName is the base name of the metadata document stored
	// inside a directory dataset, e.g. "scene/agdc-metadata.yaml".
	MetadataBaseName = "agdc-metadata"

	// SiblingMarker is appended to a data file's name to form the stem of
	// its sibling metadata document, e.g. "scene.tif.agdc-md.yaml".
	SiblingMarker = "agdc-md"
)

// MetadataSuffixes is the ordered list of recognized metadata document
// suffixes, without the leading dot. The first existing candidate wins, so
// entries are only ever appended.
var MetadataSuffixes = []string{
	"yaml",
	"yml",
	"json",
	"yaml.gz",
	"yml.gz",
	"json.gz",
}
