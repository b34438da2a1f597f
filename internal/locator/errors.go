package locator

import (
	"fmt"
)

// ResolutionError reports why a dataset path could not be resolved to a
// metadata document. Err is agdcmeta.ErrDatasetNotFound,
// agdcmeta.ErrMetadataNotFound, or the underlying filesystem error.
type ResolutionError struct {
	Path   string // Dataset path as supplied by the caller
	Reason string // Primary error message
	Hint   string // Actionable suggestion, may be empty
	Err    error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("cannot resolve metadata for %s: %s", e.Path, e.Reason)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }
