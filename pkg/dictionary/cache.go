package dictionary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultCacheKey is the fixed key the raw word list is cached under.
const DefaultCacheKey = "lexicon-raw-v1"

// ErrInvalidKey is returned for cache keys that cannot name a file.
var ErrInvalidKey = errors.New("dictionary: invalid cache key")

// BlobCache is an opaque get/put-by-key store.
type BlobCache interface {
	Get(key string) (data []byte, ok bool, err error)
	Put(key string, data []byte) error
}

// DirCache keeps one file per key inside a directory.
type DirCache struct {
	dir string
}

// NewDirCache creates a cache rooted at dir. The dir is created on first Put.
func NewDirCache(dir string) *DirCache {
	return &DirCache{dir: dir}
}

func (dc *DirCache) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(dc.dir, key+".blob"), nil
}

// Get returns the blob stored under key. A missing entry is not an error.
func (dc *DirCache) Get(key string) ([]byte, bool, error) {
	path, err := dc.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w", path, err)
	}
	return data, true, nil
}

// Put stores data under key, replacing any previous entry atomically.
func (dc *DirCache) Put(key string, data []byte) error {
	path, err := dc.path(key)
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(dc.dir); err != nil {
		return fmt.Errorf("failed to create cache dir %s: %w", dc.dir, err)
	}
	return utils.WriteFileAtomic(path, data)
}

// MemoryCache is a BlobCache held in process memory.
type MemoryCache struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{blobs: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key.
func (mc *MemoryCache) Get(key string) ([]byte, bool, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	data, ok := mc.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Put stores a copy of data under key.
func (mc *MemoryCache) Put(key string, data []byte) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.blobs[key] = append([]byte(nil), data...)
	return nil
}

// CachedSource serves the word list from a cache when it holds one and falls
// back to the wrapped source otherwise, filling the cache on the way. Cache
// failures are logged and never fail a fetch.
type CachedSource struct {
	Source Source
	Cache  BlobCache
	Key    string
}

// NewCachedSource wraps src with cache under DefaultCacheKey.
func NewCachedSource(src Source, cache BlobCache) *CachedSource {
	return &CachedSource{Source: src, Cache: cache, Key: DefaultCacheKey}
}

// KeyFor derives a cache key for the word list at path so that switching lists
// never serves the previous list's bytes.
func KeyFor(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	clean := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, base)
	if clean == "" {
		return DefaultCacheKey
	}
	return DefaultCacheKey + "-" + clean
}

// Fetch returns the cached blob or the source's text.
func (cs *CachedSource) Fetch(ctx context.Context) ([]byte, error) {
	data, ok, err := cs.Cache.Get(cs.Key)
	switch {
	case err != nil:
		log.Warnf("Word list cache read failed, using source: %v", err)
	case ok && len(data) > 0:
		log.Debugf("Word list served from cache (%d bytes)", len(data))
		return data, nil
	}

	data, err = cs.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := cs.Cache.Put(cs.Key, data); err != nil {
		log.Warnf("Failed to cache word list: %v", err)
	}
	return data, nil
}
