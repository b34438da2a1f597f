// Package document reads dataset metadata documents once they have been
// located.
//
// Supported encodings, chosen from the file name with letter case ignored:
//   - .yaml, .yml: YAML, possibly several documents separated by "---"
//   - .json: JSON (decoded as YAML, of which JSON is a subset)
//   - any of the above followed by .gz: gzip-compressed
//
// Documents are decoded into generic maps. Their content is not validated
// against any schema; callers pick out the fields they need with
// Document.Field.
package document
