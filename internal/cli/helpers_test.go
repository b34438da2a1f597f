package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	configPath, outputFormat, compareField = "", "", ""
	scanChecksums = false
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	t.Setenv("AGDCMETA_OUTPUT", "")
	t.Setenv("AGDCMETA_COLOR", "never")
	t.Setenv("AGDCMETA_COMPARE_FIELD", "")

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// writeTree creates files and directories under a temp dir. Values are file
// content or nested maps; []byte values are written gzip-compressed.
func writeTree(t *testing.T, tree map[string]any) string {
	t.Helper()
	root := t.TempDir()
	var write func(dir string, tree map[string]any)
	write = func(dir string, tree map[string]any) {
		for name, v := range tree {
			p := filepath.Join(dir, name)
			switch node := v.(type) {
			case map[string]any:
				require.NoError(t, os.MkdirAll(p, 0755))
				write(p, node)
			case string:
				require.NoError(t, os.WriteFile(p, []byte(node), 0644))
			case []byte:
				var buf bytes.Buffer
				zw := gzip.NewWriter(&buf)
				_, err := zw.Write(node)
				require.NoError(t, err)
				require.NoError(t, zw.Close())
				require.NoError(t, os.WriteFile(p, buf.Bytes(), 0644))
			}
		}
	}
	write(root, tree)
	return root
}
