// Package files groups filesystem access for dataset discovery.
//
// Sub-packages:
//   - filesystem: FileSystemProvider with OS and in-memory implementations
//   - scanner: walks a directory tree and reports datasets with their
//     metadata documents
//
// # Usage
//
//	import (
//	    "github.com/datacube-go/agdcmeta/internal/checksum"
//	    "github.com/datacube-go/agdcmeta/internal/files/scanner"
//	)
//
//	s := scanner.NewScanner(checksum.New(), logger)
//	datasets, err := s.ScanDirectory("/data/landsat")
package files
