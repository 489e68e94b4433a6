package lexicon

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

const (
	// MaxWordLength is the longest word the index accepts.
	MaxWordLength = 15
	// MaxIndexedAffix is the longest prefix and suffix kept in the affix maps.
	// Longer affixes are served by the tries.
	MaxIndexedAffix = 4
)

// ErrEmptyLexicon is returned when the raw word list held no usable word.
var ErrEmptyLexicon = errors.New("lexicon: word list contains no valid words")

// isLineBreak treats CR and LF alike, so CR-only lists split too. Lines have
// no length limit; over-long ones are skipped like any other bad line.
func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// Build parses newline-delimited raw text and constructs the lexicon with all
// of its derived indices. Either every index is built or an error is returned.
func Build(raw string) (*Lexicon, error) {
	start := time.Now()
	stats := Stats{}

	set := make(map[string]struct{}, strings.Count(raw, "\n")+1)
	for _, line := range strings.FieldsFunc(raw, isLineBreak) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		word, ok := utils.NormalizeWord(line)
		if !ok || len(word) > MaxWordLength {
			stats.Skipped++
			continue
		}
		if _, dup := set[word]; dup {
			stats.Duplicates++
			continue
		}
		set[word] = struct{}{}
	}
	if len(set) == 0 {
		return nil, ErrEmptyLexicon
	}

	// Sorting first makes word ids, and with them every index, a pure
	// function of the word set.
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	slices.Sort(words)

	lex := newLexicon(len(words))
	lex.words = words
	for id, word := range words {
		lex.add(uint32(id), word)
	}
	for _, bm := range lex.letters {
		bm.RunOptimize()
	}

	stats.Words = len(words)
	stats.AnagramKeys = len(lex.anagrams)
	stats.PrefixKeys = len(lex.prefixes)
	stats.SuffixKeys = len(lex.suffixes)
	stats.BuildTime = time.Since(start)
	for l := range lex.byLength {
		stats.MaxLength = max(stats.MaxLength, l)
	}
	lex.stats = stats

	log.Debugf("Lexicon built: words=[%d] skipped=[%d] dupes=[%d] in %v",
		stats.Words, stats.Skipped, stats.Duplicates, stats.BuildTime)
	return lex, nil
}

func newLexicon(n int) *Lexicon {
	lex := &Lexicon{
		ids:      make(map[string]uint32, n),
		byLength: make(map[int][]string, MaxWordLength),
		anagrams: make(map[string][]string, n),
		prefixes: make(map[string][]string),
		suffixes: make(map[string][]string),
		forward:  patricia.NewTrie(),
		reverse:  patricia.NewTrie(),
	}
	for i := range lex.letters {
		lex.letters[i] = roaring.New()
	}
	return lex
}

// add files one word under every index. Words must arrive in sorted order so
// each bucket stays sorted without a second pass.
func (l *Lexicon) add(id uint32, word string) {
	l.ids[word] = id
	n := len(word)
	l.byLength[n] = append(l.byLength[n], word)

	key := utils.AnagramKey(word)
	l.anagrams[key] = append(l.anagrams[key], word)

	for i := 1; i <= min(MaxIndexedAffix, n); i++ {
		p := word[:i]
		l.prefixes[p] = append(l.prefixes[p], word)
		s := word[n-i:]
		l.suffixes[s] = append(l.suffixes[s], word)
	}

	l.forward.Insert(patricia.Prefix(word), id)
	l.reverse.Insert(patricia.Prefix(utils.Reverse(word)), id)

	for i := 0; i < n; i++ {
		l.letters[word[i]-'A'].Add(id)
	}
}
