package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacube-go/agdcmeta/internal/files/filesystem"
	"github.com/datacube-go/agdcmeta/internal/logging"
)

func TestFindWithAnySuffix(t *testing.T) {
	loc := newTestLocator(t, map[string]any{
		"directory_dataset": map[string]any{
			"file1.txt":             "",
			"file2.txt":             "",
			"agdc-metadata.json.gz": "",
		},
		"file_dataset.tif.agdc-md.yaml": "",
		"dataset_metadata.YAML":         "",
		"no_metadata.tif":               "",
	})

	tests := []struct {
		name string
		stem string
		want string
	}{
		{"uppercase suffix", "/data/dataset_metadata", "/data/dataset_metadata.YAML"},
		{"compressed suffix in directory", "/data/directory_dataset/agdc-metadata", "/data/directory_dataset/agdc-metadata.json.gz"},
		{"sibling stem", "/data/file_dataset.tif.agdc-md", "/data/file_dataset.tif.agdc-md.yaml"},
		{"relative stem", "dataset_metadata", "dataset_metadata.YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := loc.FindWithAnySuffix(tt.stem)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindWithAnySuffix_Absent(t *testing.T) {
	loc := newTestLocator(t, map[string]any{
		"no_metadata.tif": "",
	})

	for _, stem := range []string{
		"/data/no_metadata",
		"/data/missing_dir/agdc-metadata",
		"/data/",
		"",
	} {
		got, ok := loc.FindWithAnySuffix(stem)
		assert.False(t, ok, stem)
		assert.Empty(t, got, stem)
	}
}

func TestFindWithAnySuffix_CandidateOrder(t *testing.T) {
	loc := newTestLocator(t, map[string]any{
		"a.json":    "",
		"a.yml":     "",
		"a.yaml.gz": "",
		"b.json.gz": "",
		"b.JSON":    "",
		"c.YML":     "",
		"c.yaml":    "",
	})

	got, ok := loc.FindWithAnySuffix("/data/a")
	require.True(t, ok)
	assert.Equal(t, "/data/a.yml", got)

	// A case variant of an earlier candidate beats an exact later one
	got, ok = loc.FindWithAnySuffix("/data/b")
	require.True(t, ok)
	assert.Equal(t, "/data/b.JSON", got)

	got, ok = loc.FindWithAnySuffix("/data/c")
	require.True(t, ok)
	assert.Equal(t, "/data/c.yaml", got)
}

func TestFindWithAnySuffix_StemIsMatchedExactly(t *testing.T) {
	loc := newTestLocator(t, map[string]any{
		"Scene.yaml":      "",
		"scene.extra.yml": "",
		"scenery.json":    "",
	})

	_, ok := loc.FindWithAnySuffix("/data/scene")
	assert.False(t, ok)
}

func TestFindWithAnySuffix_LexicallySmallestCaseVariant(t *testing.T) {
	loc := newTestLocator(t, map[string]any{
		"x.yAml": "",
		"x.YAML": "",
	})

	got, ok := loc.FindWithAnySuffix("/data/x")
	require.True(t, ok)
	assert.Equal(t, "/data/x.YAML", got)
}

func TestFindWithAnySuffix_LogsProbes(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("scene.json", "")

	var out syncBuffer
	loc := NewLocatorWithFS(mfs, logging.NewWriterLogger(&out, true))

	got, ok := loc.FindWithAnySuffix("/data/scene")
	require.True(t, ok)
	assert.Equal(t, "/data/scene.json", got)
	assert.Equal(t,
		"[VERBOSE] Probing /data/scene.yaml\n[VERBOSE] Probing /data/scene.yml\n[VERBOSE] Probing /data/scene.json\n",
		out.String())
}

func TestHasMetadataSuffix(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"dataset_metadata.yaml", true},
		{"dataset_metadata.YAML", true},
		{"agdc-metadata.yaml.gz", true},
		{"agdc-metadata.Json.GZ", true},
		{"scene.tif.agdc-md.yml", true},
		{"scene.tif", false},
		{"scene.gz", false},
		{"yaml", false},
		{".yaml", false},
		{"scene.yamlx", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMetadataSuffix(tt.name))
		})
	}
}
