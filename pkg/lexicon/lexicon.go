/*
Package lexicon holds the word list of the solver and the lookup structures
derived from it.

A Lexicon is built once from raw newline-delimited text and is read-only
afterwards, so it can be shared between goroutines without locking.

Besides the set of words it keeps:

  - a by-length index: length -> words of that length
  - an anagram index: sorted letters -> words with that letter multiset
  - prefix and suffix maps for affixes of 1 to 4 letters
  - patricia tries over the words and over the reversed words, used when an
    affix is longer than the maps go
  - one roaring bitmap of word ids per letter, used to narrow containment
    searches before the multiset test

Every slice handed out by the accessors is shared with the index and must not
be modified by callers.
*/
package lexicon

import (
	"errors"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is the immutable word set together with its derived indices.
type Lexicon struct {
	words    []string
	ids      map[string]uint32
	byLength map[int][]string
	anagrams map[string][]string
	prefixes map[string][]string
	suffixes map[string][]string
	forward  *patricia.Trie
	reverse  *patricia.Trie
	letters  [26]*roaring.Bitmap
	stats    Stats
}

// Stats describes a finished build.
type Stats struct {
	Words       int
	Skipped     int
	Duplicates  int
	AnagramKeys int
	PrefixKeys  int
	SuffixKeys  int
	MaxLength   int
	BuildTime   time.Duration
}

// Stats returns the numbers recorded while building.
func (l *Lexicon) Stats() Stats {
	return l.stats
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Contains reports whether word is in the lexicon. word must be uppercase.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.ids[word]
	return ok
}

// Words returns every word in ascending order.
func (l *Lexicon) Words() []string {
	return l.words
}

// WordsOfLength returns the by-length bucket for n.
func (l *Lexicon) WordsOfLength(n int) []string {
	return l.byLength[n]
}

// Lengths returns the word lengths present, ascending.
func (l *Lexicon) Lengths() []int {
	lengths := make([]int, 0, len(l.byLength))
	for n := range l.byLength {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)
	return lengths
}

// Anagrams returns the words whose sorted letters equal key.
func (l *Lexicon) Anagrams(key string) []string {
	return l.anagrams[key]
}

// WithPrefix returns every word starting with prefix. Prefixes up to
// MaxIndexedAffix letters come straight from the prefix map.
func (l *Lexicon) WithPrefix(prefix string) []string {
	if prefix == "" {
		return nil
	}
	if len(prefix) <= MaxIndexedAffix {
		return l.prefixes[prefix]
	}
	var out []string
	l.VisitPrefix(prefix, func(word string) bool {
		out = append(out, word)
		return true
	})
	slices.Sort(out)
	return out
}

// WithSuffix returns every word ending with suffix. Suffixes up to
// MaxIndexedAffix letters come straight from the suffix map.
func (l *Lexicon) WithSuffix(suffix string) []string {
	if suffix == "" {
		return nil
	}
	if len(suffix) <= MaxIndexedAffix {
		return l.suffixes[suffix]
	}
	var out []string
	l.visit(l.reverse, utils.Reverse(suffix), func(word string) bool {
		out = append(out, word)
		return true
	})
	slices.Sort(out)
	return out
}

// VisitPrefix calls fn for each word starting with prefix until fn returns
// false. Visiting order is the trie's, not alphabetical.
func (l *Lexicon) VisitPrefix(prefix string, fn func(word string) bool) {
	l.visit(l.forward, prefix, fn)
}

var errStopVisit = errors.New("lexicon: stop visit")

func (l *Lexicon) visit(trie *patricia.Trie, key string, fn func(word string) bool) {
	err := trie.VisitSubtree(patricia.Prefix(key), func(_ patricia.Prefix, item patricia.Item) error {
		if !fn(l.words[item.(uint32)]) {
			return errStopVisit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopVisit) {
		log.Errorf("Error visiting trie subtree for %q: %v", key, err)
	}
}

// ContainingAll returns, in ascending order, the words that hold at least one
// of every letter with a non-zero count in need. Counts above one are not
// checked here; callers finish the test on the returned candidates.
func (l *Lexicon) ContainingAll(need utils.LetterCounts) []string {
	var sets []*roaring.Bitmap
	for i, n := range need {
		if n > 0 {
			sets = append(sets, l.letters[i])
		}
	}
	if len(sets) == 0 {
		return l.words
	}
	ids := roaring.FastAnd(sets...).ToArray()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = l.words[id]
	}
	return out
}
