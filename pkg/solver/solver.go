// Package solver answers word-game queries over a built lexicon: exact checks
// with blank tiles, anagrams, word building, affix and containment searches
// and fixed-length listings. Every search returns a Grouped result set.
package solver

import (
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/lexicon"
)

// Options tune a Solver.
type Options struct {
	// MemoSize bounds the blank-resolution memo. Zero selects DefaultMemoSize.
	MemoSize int
	// MaxBlanks lowers the blank ceiling. Zero or anything above MaxBlanks
	// selects MaxBlanks.
	MaxBlanks int
	// SortResults orders each result group alphabetically.
	SortResults bool
}

// Solver runs searches against one lexicon. The lexicon is never modified;
// the memo carries its own lock, so a Solver is safe for concurrent use.
type Solver struct {
	lex       *lexicon.Lexicon
	memo      *MemoCache
	maxBlanks int
	sorted    bool
}

// New creates a solver over lex.
func New(lex *lexicon.Lexicon, opts Options) *Solver {
	maxBlanks := opts.MaxBlanks
	if maxBlanks <= 0 || maxBlanks > MaxBlanks {
		maxBlanks = MaxBlanks
	}
	return &Solver{
		lex:       lex,
		memo:      NewMemoCache(opts.MemoSize),
		maxBlanks: maxBlanks,
		sorted:    opts.SortResults,
	}
}

// Lexicon returns the lexicon the solver reads.
func (s *Solver) Lexicon() *lexicon.Lexicon {
	return s.lex
}

// Solve runs the strategy selected by st on letters and groups the result.
func (s *Solver) Solve(letters string, st SearchType) Grouped {
	var matches []Match
	switch st {
	case SearchWordBuilder:
		matches = s.WordBuilder(letters)
	case SearchStartsWith:
		matches = s.StartsWith(letters)
	case SearchEndsWith:
		matches = s.EndsWith(letters)
	case SearchContaining:
		matches = s.Containing(letters)
	case SearchQWithoutU:
		matches = s.QWithoutU()
	case SearchBingo7:
		matches = s.Bingo(letters, 7)
	case SearchBingo8:
		matches = s.Bingo(letters, 8)
	case SearchTwoLetter, SearchThreeLetter, SearchFourLetter, SearchFiveLetter:
		n, _ := st.FixedLength()
		matches = s.FixedLength(n)
	default:
		matches = s.Anagram(letters)
	}

	g := Group(matches)
	if s.sorted {
		SortGroups(g)
	}
	return g
}

// Stats returns counters of the solver and its lexicon.
func (s *Solver) Stats() map[string]int {
	ls := s.lex.Stats()
	stats := map[string]int{
		"totalWords":  ls.Words,
		"anagramKeys": ls.AnagramKeys,
		"maxLength":   ls.MaxLength,
		"maxBlanks":   s.maxBlanks,
	}
	for k, v := range s.memo.Stats() {
		stats[k] = v
	}
	return stats
}

// parseRack normalizes user letters. ok is false when the rack carries more
// blanks than allowed.
func (s *Solver) parseRack(letters string) (rack string, blanks int, ok bool) {
	rack, blanks = utils.SplitBlanks(utils.NormalizeQuery(letters))
	return rack, blanks, blanks <= s.maxBlanks
}

func plainMatch(word string) Match {
	return Match{Word: word, Length: len(word), BlankSubstitutions: []string{}}
}

func plainMatches(words []string) []Match {
	out := make([]Match, len(words))
	for i, w := range words {
		out[i] = plainMatch(w)
	}
	return out
}
