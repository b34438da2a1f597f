package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read-only view of a filesystem used to locate
// and read dataset metadata. Implementations must report missing paths with
// errors that satisfy errors.Is(err, fs.ErrNotExist).
type FileSystemProvider interface {
	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// ReadDir returns the entries of the directory at path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)
}
