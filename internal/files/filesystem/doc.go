// Package filesystem provides the filesystem abstraction used to locate and
// read dataset metadata documents.
//
// FileSystemProvider exposes the three read-only primitives the rest of the
// module needs: Stat, ReadDir and ReadFile. Nothing in this package writes
// to disk.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: Case-sensitive in-memory implementation for testing
package filesystem
