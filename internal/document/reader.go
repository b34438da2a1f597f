package document

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
)

// MaxDocumentSize bounds the decompressed size of a single metadata file.
const MaxDocumentSize = 64 << 20

// Load reads the metadata file at path and decodes every document in it.
// An empty file yields no documents and no error.
func Load(fsys filesystem.FileSystemProvider, path string) ([]Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Index: -1, Message: "failed to read file", Err: err}
	}
	return Decode(path, data)
}

// Decode decodes data as the metadata file named name. The name selects the
// encoding and is used in error messages.
func Decode(name string, data []byte) ([]Document, error) {
	inner, compressed := trimFoldSuffix(name, ".gz")
	if compressed {
		raw, err := gunzip(data)
		if err != nil {
			return nil, &DecodeError{Path: name, Index: -1, Message: "invalid gzip stream", Err: err}
		}
		data = raw
	}

	if !isYAMLFamily(inner) {
		return nil, &DecodeError{Path: name, Index: -1, Message: "unsupported document type"}
	}
	return decodeYAMLStream(name, data)
}

func decodeYAMLStream(name string, data []byte) ([]Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []Document
	for i := 0; ; i++ {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, &DecodeError{Path: name, Index: i, Message: "invalid document", Err: err}
		}
		// An explicit empty document between separators decodes to nil.
		if doc == nil {
			continue
		}
		docs = append(docs, Document(doc))
	}
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, MaxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > MaxDocumentSize {
		return nil, errors.New("decompressed document exceeds size limit")
	}
	return raw, nil
}

func isYAMLFamily(name string) bool {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if _, ok := trimFoldSuffix(name, ext); ok {
			return true
		}
	}
	return false
}

// trimFoldSuffix removes suffix from name ignoring letter case.
func trimFoldSuffix(name, suffix string) (string, bool) {
	if len(name) <= len(suffix) || !strings.EqualFold(name[len(name)-len(suffix):], suffix) {
		return name, false
	}
	return name[:len(name)-len(suffix)], true
}
