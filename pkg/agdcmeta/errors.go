package agdcmeta

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := loc.Resolve(path)
//	if errors.Is(err, agdcmeta.ErrMetadataNotFound) {
//	    // The dataset exists but carries no metadata document
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDatasetNotFound indicates the dataset path does not exist at all.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMetadataNotFound indicates the dataset exists but no metadata
	// naming convention matched.
	ErrMetadataNotFound = errors.New("no metadata found")

	// ErrDocumentDecode indicates a metadata document could not be read or decoded.
	ErrDocumentDecode = errors.New("metadata document could not be decoded")

	// ErrValuesDiffer indicates compared datasets hold different values for a field.
	ErrValuesDiffer = errors.New("values differ")
)

// usageErrorPatterns are prefixes of the errors cobra returns for command line misuse.
var usageErrorPatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"requires at most",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDatasetNotFound):
		return ExitDatasetNotFound
	case errors.Is(err, ErrMetadataNotFound):
		return ExitMetadataNotFound
	case errors.Is(err, ErrDocumentDecode):
		return ExitDocumentDecode
	case errors.Is(err, ErrValuesDiffer):
		return ExitValuesDiffer
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
