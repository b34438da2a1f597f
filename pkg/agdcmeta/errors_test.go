package agdcmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, agdcmeta.ExitSuccess},
		{"general error", errors.New("something went wrong"), agdcmeta.ExitGeneralError},
		{"invalid config", agdcmeta.ErrInvalidConfig, agdcmeta.ExitConfigError},
		{"dataset not found", agdcmeta.ErrDatasetNotFound, agdcmeta.ExitDatasetNotFound},
		{"metadata not found", agdcmeta.ErrMetadataNotFound, agdcmeta.ExitMetadataNotFound},
		{"decode failure", agdcmeta.ErrDocumentDecode, agdcmeta.ExitDocumentDecode},
		{"values differ", agdcmeta.ErrValuesDiffer, agdcmeta.ExitValuesDiffer},
		{"wrapped sentinel", fmt.Errorf("resolve /data/x: %w", agdcmeta.ErrMetadataNotFound), agdcmeta.ExitMetadataNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agdcmeta.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown flag", errors.New("unknown flag: --foo")},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x")},
		{"accepts args", errors.New("accepts 1 arg(s), received 0")},
		{"requires at least", errors.New("requires at least 1 arg(s), only received 0")},
		{"unknown command", errors.New(`unknown command "frob" for "agdcmeta"`)},
		{"flag needs argument", errors.New("flag needs an argument: --field")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := agdcmeta.ExitCodeForError(tt.err); got != agdcmeta.ExitUsageError {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, agdcmeta.ExitUsageError)
			}
		})
	}
}
