package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordList(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestFileSource(t *testing.T) {
	path := writeWordList(t, "words.txt", "cat\ndog\n")

	data, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cat\ndog\n", string(data))
}

func TestFileSourceErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.txt")).Fetch(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewFileSource(writeWordList(t, "empty.txt", "")).Fetch(ctx)
	assert.ErrorContains(t, err, "too small")

	_, err = NewFileSource(writeWordList(t, "words.bin", "cat")).Fetch(ctx)
	assert.ErrorContains(t, err, "invalid extension")

	_, err = NewFileSource(t.TempDir()).Fetch(ctx)
	assert.ErrorContains(t, err, "directory")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewFileSource(writeWordList(t, "words.txt", "cat")).Fetch(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectFileFormat(t *testing.T) {
	f, err := DetectFileFormat(writeWordList(t, "twl.txt", "cat"))
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = DetectFileFormat(writeWordList(t, "twl.json", "cat"))
	assert.Error(t, err)
	assert.Equal(t, FormatUnknown, f)
}

func TestDirCache(t *testing.T) {
	dc := NewDirCache(filepath.Join(t.TempDir(), "nested", "cache"))

	_, ok, err := dc.Get(DefaultCacheKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, dc.Put(DefaultCacheKey, []byte("CAT\n")))
	data, ok, err := dc.Get(DefaultCacheKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CAT\n", string(data))

	require.NoError(t, dc.Put(DefaultCacheKey, []byte("DOG\n")))
	data, _, _ = dc.Get(DefaultCacheKey)
	assert.Equal(t, "DOG\n", string(data))

	assert.ErrorIs(t, dc.Put("../escape", nil), ErrInvalidKey)
	_, _, err = dc.Get("")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestMemoryCacheCopies(t *testing.T) {
	mc := NewMemoryCache()
	blob := []byte("CAT")
	require.NoError(t, mc.Put("k", blob))
	blob[0] = 'B'

	data, ok, err := mc.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CAT", string(data))
}

func TestCachedSource(t *testing.T) {
	calls := 0
	src := SourceFunc(func(context.Context) ([]byte, error) {
		calls++
		return []byte("CAT\nDOG\n"), nil
	})
	cache := NewMemoryCache()
	cs := NewCachedSource(src, cache)

	for i := 0; i < 3; i++ {
		data, err := cs.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "CAT\nDOG\n", string(data))
	}
	assert.Equal(t, 1, calls, "source consulted once, cache afterwards")

	stored, ok, _ := cache.Get(DefaultCacheKey)
	assert.True(t, ok)
	assert.Equal(t, "CAT\nDOG\n", string(stored))
}

type brokenCache struct{}

func (brokenCache) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (brokenCache) Put(string, []byte) error         { return errors.New("disk gone") }

func TestCachedSourceIgnoresCacheFailures(t *testing.T) {
	cs := NewCachedSource(StaticSource("CAT\n"), brokenCache{})
	data, err := cs.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CAT\n", string(data))
}

func TestCachedSourcePropagatesSourceError(t *testing.T) {
	boom := errors.New("fetch failed")
	cs := NewCachedSource(SourceFunc(func(context.Context) ([]byte, error) {
		return nil, boom
	}), NewMemoryCache())

	_, err := cs.Fetch(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "lexicon-raw-v1-enable", KeyFor("/usr/share/words/enable.txt"))
	assert.Equal(t, "lexicon-raw-v1-sowpods_2019", KeyFor("lists/sowpods 2019.lst"))
	assert.Equal(t, DefaultCacheKey, KeyFor(""))
	assert.NotEqual(t, KeyFor("a/twl.txt"), KeyFor("a/csw.txt"))
}
