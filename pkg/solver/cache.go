package solver

import (
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultMemoSize bounds the blank-resolution memo when no size is configured.
const DefaultMemoSize = 50000

// MemoCache remembers blank-resolution outcomes keyed by the normalized query.
// It is bounded: once full, the least recently used tenth is evicted in one
// pass. Safe for concurrent use.
type MemoCache struct {
	results     map[string]bool
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

// NewMemoCache returns a cache holding at most maxEntries results.
// A non-positive size selects DefaultMemoSize.
func NewMemoCache(maxEntries int) *MemoCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoSize
	}
	return &MemoCache{
		results:    make(map[string]bool, min(maxEntries, 1024)),
		accessTime: make(map[string]int64, min(maxEntries, 1024)),
		maxEntries: maxEntries,
	}
}

// Get returns the stored outcome for key.
func (mc *MemoCache) Get(key string) (valid, ok bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	valid, ok = mc.results[key]
	if ok {
		mc.hits++
		mc.markAccessed(key)
	}
	return valid, ok
}

// Put stores the outcome for key, evicting old entries when full.
func (mc *MemoCache) Put(key string, valid bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.results[key]; !exists && len(mc.results) >= mc.maxEntries {
		mc.evictLRU()
	}
	mc.results[key] = valid
	mc.markAccessed(key)
}

// Len returns the number of stored entries.
func (mc *MemoCache) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return len(mc.results)
}

// Stats returns the cache counters.
func (mc *MemoCache) Stats() map[string]int {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	return map[string]int{
		"memoEntries": len(mc.results),
		"memoMax":     mc.maxEntries,
		"memoHits":    int(mc.hits),
	}
}

func (mc *MemoCache) markAccessed(key string) {
	mc.accessCount++
	mc.accessTime[key] = mc.accessCount
}

// evictLRU drops the least recently used tenth of the entries, at least one.
func (mc *MemoCache) evictLRU() {
	type entry struct {
		key  string
		time int64
	}
	entries := make([]entry, 0, len(mc.accessTime))
	for k, t := range mc.accessTime {
		entries = append(entries, entry{k, t})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.time < b.time:
			return -1
		case a.time > b.time:
			return 1
		}
		return 0
	})

	n := max(1, mc.maxEntries/10)
	for _, e := range entries[:min(n, len(entries))] {
		delete(mc.results, e.key)
		delete(mc.accessTime, e.key)
	}
	log.Debugf("Evicted %d entries from blank memo", min(n, len(entries)))
}
