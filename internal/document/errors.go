package document

import (
	"errors"
	"fmt"

	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

// ErrNoID is returned by Document.ID when the document has no "id" field.
var ErrNoID = errors.New("document has no id field")

// DecodeError describes a metadata document that could not be read or
// decoded. It matches agdcmeta.ErrDocumentDecode with errors.Is.
type DecodeError struct {
	Path    string // Path of the document
	Index   int    // Zero-based position in a multi-document stream, -1 if not applicable
	Message string // Primary error message
	Err     error  // Underlying cause, may be nil
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	location := e.Path
	if e.Index >= 0 {
		location = fmt.Sprintf("%s (document %d)", e.Path, e.Index+1)
	}
	msg := fmt.Sprintf("cannot decode %s: %s", location, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{agdcmeta.ErrDocumentDecode}
	}
	return []error{agdcmeta.ErrDocumentDecode, e.Err}
}
