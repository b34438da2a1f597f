// Package checksum fingerprints metadata documents.
//
// Two digests are produced for each metadata file:
//
//   - Raw checksum: hash of the exact bytes on disk (detects any change,
//     including re-compression or reformatting)
//   - Normalized checksum: hash of the decoded documents in canonical JSON
//     form (the same content stored as YAML, JSON or gzip shares one digest)
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(fileContent)
//	normalized, err := calculator.CalculateNormalized(docs)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
