package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/datacube-go/agdcmeta/internal/checksum"
	"github.com/datacube-go/agdcmeta/internal/document"
	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/internal/locator"
	"github.com/datacube-go/agdcmeta/internal/logging"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

// Scanner discovers datasets in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator, fsProvider and logger are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	locator    *locator.Locator
	logger     agdcmeta.Logger
}

// NewScanner creates a scanner over the OS filesystem.
// A nil calculator disables checksums.
func NewScanner(calculator checksum.Calculator, logger agdcmeta.Logger) *Scanner {
	return NewScannerWithFS(calculator, filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// A nil calculator disables checksums and a nil logger discards messages.
// Panics if fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, logger agdcmeta.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		locator:    locator.NewLocatorWithFS(fsProvider, logger),
		logger:     logger,
	}
}

// ScanDirectory walks root and returns every dataset found, in walk order.
// Entries of a directory are visited in lexical order.
func (s *Scanner) ScanDirectory(root string) ([]agdcmeta.Dataset, error) {
	info, err := s.fsProvider.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", agdcmeta.ErrDatasetNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root is not a directory: %s", root)
	}

	entries, err := s.fsProvider.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan root: %w", err)
	}

	var datasets []agdcmeta.Dataset
	if err := s.walk(root, entries, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

func (s *Scanner) walk(dir string, entries []filesystem.FileInfo, out *[]agdcmeta.Dataset) error {
	// One listing per directory serves every probe in it.
	if mdPath, ok := s.locator.FindInListing(filepath.Join(dir, agdcmeta.MetadataBaseName), entries); ok {
		return s.record(dir, agdcmeta.DatasetDirectory, mdPath, out)
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			children, err := s.fsProvider.ReadDir(p)
			if err != nil {
				s.logger.Verbose("Skipping %s: %v", p, err)
				continue
			}
			if err := s.walk(p, children, out); err != nil {
				return err
			}
			continue
		}

		if locator.HasMetadataSuffix(entry.Name()) {
			continue
		}
		if mdPath, ok := s.locator.FindInListing(p+"."+agdcmeta.SiblingMarker, entries); ok {
			if err := s.record(p, agdcmeta.DatasetFile, mdPath, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Scanner) record(datasetPath string, kind agdcmeta.DatasetKind, mdPath string, out *[]agdcmeta.Dataset) error {
	ds := agdcmeta.Dataset{Path: datasetPath, Kind: kind, Metadata: mdPath}
	s.logger.Verbose("Found %s dataset %s", kind, datasetPath)

	if s.calculator != nil {
		if err := s.fingerprint(&ds); err != nil {
			return err
		}
	}
	*out = append(*out, ds)
	return nil
}

// fingerprint fills in the checksums of ds.Metadata.
func (s *Scanner) fingerprint(ds *agdcmeta.Dataset) error {
	content, err := s.fsProvider.ReadFile(ds.Metadata)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ds.Metadata, err)
	}
	docs, err := document.Decode(ds.Metadata, content)
	if err != nil {
		return err
	}
	normalized, err := s.calculator.CalculateNormalized(docs)
	if err != nil {
		return &document.DecodeError{Path: ds.Metadata, Index: -1, Message: "cannot fingerprint documents", Err: err}
	}

	ds.ChecksumRaw = s.calculator.CalculateRaw(content)
	ds.Checksum = normalized
	return nil
}

var _ agdcmeta.DatasetScanner = (*Scanner)(nil)
