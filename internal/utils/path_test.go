package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T) *PathResolver {
	root := t.TempDir()
	return &PathResolver{
		executablePath: filepath.Join(root, "bin", "wordsolve"),
		executableDir:  filepath.Join(root, "bin"),
		homeDir:        root,
		configDir:      filepath.Join(root, "config"),
	}
}

func TestWordListPath(t *testing.T) {
	pr := testResolver(t)
	assert.Equal(t, []string{"/abs/enable.txt"}, pr.WordListCandidates("/abs/enable.txt"))

	// falls back to the first candidate when nothing exists
	assert.Equal(t, filepath.Join(pr.executableDir, "enable.txt"), pr.GetWordListPath("enable.txt"))

	data := filepath.Join(pr.configDir, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, "enable.txt"), []byte("CAT\n"), 0o644))
	assert.Equal(t, filepath.Join(data, "enable.txt"), pr.GetWordListPath("lists/enable.txt"))
}

func TestCacheAndConfigPaths(t *testing.T) {
	pr := testResolver(t)
	assert.Equal(t, filepath.Join(pr.configDir, "cache"), pr.GetCacheDir(""))
	assert.Equal(t, filepath.Join(pr.configDir, "blobs"), pr.GetCacheDir("blobs"))
	assert.Equal(t, "/var/cache/ws", pr.GetCacheDir("/var/cache/ws"))

	path, err := pr.GetConfigPath("config.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pr.GetConfigDir(), "config.toml"), path)
	assert.DirExists(t, pr.GetConfigDir())
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, WriteFileAtomic(path, []byte("one")))
	require.NoError(t, WriteFileAtomic(path, []byte("two")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}
