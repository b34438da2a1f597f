package locator

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/internal/logging"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

// Locator resolves dataset paths to metadata documents.
// It holds no mutable state and is safe for concurrent use by multiple
// goroutines as long as the provided filesystem and logger are.
type Locator struct {
	fs     filesystem.FileSystemProvider
	logger agdcmeta.Logger
}

// NewLocator creates a Locator over the OS filesystem that logs nothing.
func NewLocator() *Locator {
	return &Locator{
		fs:     filesystem.NewOSFileSystem(),
		logger: logging.NewNullLogger(),
	}
}

// NewLocatorWithFS creates a Locator over a custom filesystem provider.
// A nil logger discards messages.
// Panics if fsProvider is nil.
func NewLocatorWithFS(fsProvider filesystem.FileSystemProvider, logger agdcmeta.Logger) *Locator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Locator{
		fs:     fsProvider,
		logger: logger,
	}
}

// Resolve returns the path of the metadata document for datasetPath.
//
// The returned path existed when it was checked. A URL is returned as is.
// An existing file with a recognized metadata suffix is returned unchanged.
// A directory resolves to its agdc-metadata document and any other file to
// its ".agdc-md" sibling.
//
// Failures are *ResolutionError values wrapping agdcmeta.ErrDatasetNotFound
// when nothing exists at datasetPath, or agdcmeta.ErrMetadataNotFound when
// no convention matched.
func (l *Locator) Resolve(datasetPath string) (string, error) {
	if isURL(datasetPath) {
		l.logger.Verbose("Using URL %s as is", datasetPath)
		return datasetPath, nil
	}

	info, err := l.stat(datasetPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &ResolutionError{
				Path:   datasetPath,
				Reason: "dataset path does not exist",
				Err:    agdcmeta.ErrDatasetNotFound,
			}
		}
		return "", &ResolutionError{
			Path:   datasetPath,
			Reason: "cannot access dataset path",
			Err:    err,
		}
	}

	// Direct specification wins over sibling probing.
	if !info.IsDir() && HasMetadataSuffix(filepath.Base(datasetPath)) {
		l.logger.Verbose("%s is a metadata document", datasetPath)
		return datasetPath, nil
	}

	if info.IsDir() {
		stem := filepath.Join(datasetPath, agdcmeta.MetadataBaseName)
		if mdPath, ok := l.FindWithAnySuffix(stem); ok {
			l.logger.Verbose("Found %s in dataset directory", mdPath)
			return mdPath, nil
		}
		return "", &ResolutionError{
			Path:   datasetPath,
			Reason: "no " + agdcmeta.MetadataBaseName + " document in dataset directory",
			Hint:   "Expected one of " + candidateNames(agdcmeta.MetadataBaseName) + " inside the directory.",
			Err:    agdcmeta.ErrMetadataNotFound,
		}
	}

	stem := datasetPath + "." + agdcmeta.SiblingMarker
	if mdPath, ok := l.FindWithAnySuffix(stem); ok {
		l.logger.Verbose("Found sibling %s", mdPath)
		return mdPath, nil
	}
	return "", &ResolutionError{
		Path:   datasetPath,
		Reason: "no sibling metadata document",
		Hint:   "Expected one of " + candidateNames(filepath.Base(stem)) + " next to the file.",
		Err:    agdcmeta.ErrMetadataNotFound,
	}
}

func (l *Locator) stat(p string) (filesystem.FileInfo, error) {
	if p == "" {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return l.fs.Stat(p)
}

// Resolve resolves datasetPath against the OS filesystem.
func Resolve(datasetPath string) (string, error) {
	return NewLocator().Resolve(datasetPath)
}

// FindWithAnySuffix probes stem against the OS filesystem.
func FindWithAnySuffix(stem string) (string, bool) {
	return NewLocator().FindWithAnySuffix(stem)
}

func candidateNames(base string) string {
	names := make([]string, len(agdcmeta.MetadataSuffixes))
	for i, suffix := range agdcmeta.MetadataSuffixes {
		names[i] = base + "." + suffix
	}
	return strings.Join(names, ", ")
}

// isURL reports whether p starts with a scheme of two or more characters
// followed by "://". Single letter schemes are left alone so Windows drive
// letters are never mistaken for URLs.
func isURL(p string) bool {
	i := strings.Index(p, "://")
	if i < 2 {
		return false
	}
	for j, r := range p[:i] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
