// Package scanner discovers datasets in a directory tree.
//
// The scanner walks the tree through filesystem.FileSystemProvider and uses
// the locator's suffix probing to decide what is a dataset:
//   - A directory with an agdc-metadata document is a directory dataset and
//     is not descended into
//   - A data file with an .agdc-md sibling document is a file dataset
//
// Metadata documents are optionally fingerprinted with a checksum.Calculator.
package scanner
