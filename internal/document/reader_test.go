package document

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

const sceneYAML = `id: 4ec8fe97-e8b9-11e4-87ff-1040f381a756
product:
  name: ls8_nbar_scene
platform:
  code: LANDSAT_8
image:
  bands:
    - red
    - green
`

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDecode_YAML(t *testing.T) {
	docs, err := Decode("scene/agdc-metadata.yaml", []byte(sceneYAML))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	name, ok := docs[0].Field("product.name")
	require.True(t, ok)
	assert.Equal(t, "ls8_nbar_scene", name)
}

func TestDecode_JSON(t *testing.T) {
	docs, err := Decode("scene.tif.agdc-md.JSON", []byte(`{"id": "4ec8fe97-e8b9-11e4-87ff-1040f381a756", "product": {"name": "ls7"}}`))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	name, ok := docs[0].Field("product.name")
	require.True(t, ok)
	assert.Equal(t, "ls7", name)
}

func TestDecode_Gzip(t *testing.T) {
	for _, name := range []string{"agdc-metadata.yaml.gz", "agdc-metadata.YML.GZ", "agdc-metadata.json.gz"} {
		t.Run(name, func(t *testing.T) {
			docs, err := Decode(name, gzipBytes(t, sceneYAML))
			require.NoError(t, err)
			require.Len(t, docs, 1)

			code, ok := docs[0].Field("platform.code")
			require.True(t, ok)
			assert.Equal(t, "LANDSAT_8", code)
		})
	}
}

func TestDecode_MultiDocument(t *testing.T) {
	stream := "product: {name: a}\n---\n---\nproduct: {name: b}\n"

	docs, err := Decode("datasets.yaml", []byte(stream))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	a, _ := docs[0].Field("product.name")
	b, _ := docs[1].Field("product.name")
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}

func TestDecode_Empty(t *testing.T) {
	docs, err := Decode("empty.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     []byte
		contains string
	}{
		{"unsupported type", "scene.tif", []byte("II*"), "unsupported document type"},
		{"bare gz", "scene.gz", gzipBytes(t, sceneYAML), "unsupported document type"},
		{"not gzip", "scene.yaml.gz", []byte("plain text"), "invalid gzip stream"},
		{"invalid yaml", "scene.yaml", []byte("product: [unclosed"), "(document 1)"},
		{"top level list", "scene.yaml", []byte("- a\n- b\n"), "invalid document"},
		{"second document invalid", "scene.yaml", []byte("a: 1\n---\n- x\n"), "(document 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Decode(tt.fileName, tt.data)
			require.Error(t, err)
			assert.Nil(t, docs)
			assert.True(t, errors.Is(err, agdcmeta.ErrDocumentDecode))
			assert.Contains(t, err.Error(), tt.contains)
			assert.Contains(t, err.Error(), tt.fileName)
		})
	}
}

func TestLoad(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("scene/agdc-metadata.yaml", sceneYAML)

	docs, err := Load(mfs, "/data/scene/agdc-metadata.yaml")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	id, err := docs[0].ID()
	require.NoError(t, err)
	assert.Equal(t, "4ec8fe97-e8b9-11e4-87ff-1040f381a756", id.String())
}

func TestLoad_Missing(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")

	_, err := Load(mfs, "/data/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, agdcmeta.ErrDocumentDecode))

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "/data/missing.yaml", decErr.Path)
}

func TestTrimFoldSuffix(t *testing.T) {
	got, ok := trimFoldSuffix("a.yaml.GZ", ".gz")
	assert.True(t, ok)
	assert.Equal(t, "a.yaml", got)

	got, ok = trimFoldSuffix(".gz", ".gz")
	assert.False(t, ok)
	assert.Equal(t, ".gz", got)
}
