package solver

import (
	"bytes"

	"github.com/bastiangx/wordsolve/internal/utils"
)

// MaxBlanks is the most blanks a query may carry. Queries with more blanks
// yield no results.
const MaxBlanks = 3

// IsValid reports whether word, possibly containing up to MaxBlanks blanks,
// can be read as a word of the lexicon. A blank stands for any one letter.
func (s *Solver) IsValid(word string) bool {
	q := utils.NormalizeQuery(word)
	if q == "" {
		return false
	}
	_, blanks := utils.SplitBlanks(q)
	if blanks == 0 {
		return s.lex.Contains(q)
	}
	if blanks > s.maxBlanks {
		return false
	}
	if len(s.lex.WordsOfLength(len(q))) == 0 {
		return false
	}
	if valid, ok := s.memo.Get(q); ok {
		return valid
	}
	valid := s.resolve([]byte(q), 0)
	s.memo.Put(q, valid)
	return valid
}

// resolve fills the blanks of buf left to right, trying A-Z at each one and
// stopping at the first assignment that forms a word. buf is restored before
// returning.
func (s *Solver) resolve(buf []byte, from int) bool {
	i := bytes.IndexByte(buf[from:], utils.Blank)
	if i < 0 {
		return s.lex.Contains(string(buf))
	}
	i += from
	defer func() { buf[i] = utils.Blank }()
	for c := byte('A'); c <= 'Z'; c++ {
		buf[i] = c
		if s.resolve(buf, i+1) {
			return true
		}
	}
	return false
}

// CanForm checks whether candidate can be spelled from the letters in avail
// plus at most blankBudget blanks. Each candidate letter is taken from avail
// when one is left, otherwise it is charged to a blank and recorded in subs.
// avail is a copy; the caller's table is untouched.
func CanForm(candidate string, avail utils.LetterCounts, blankBudget int) (ok bool, subs []string) {
	subs = []string{}
	for i := 0; i < len(candidate); i++ {
		c := candidate[i] - 'A'
		if avail[c] > 0 {
			avail[c]--
			continue
		}
		if len(subs) == blankBudget {
			return false, nil
		}
		subs = append(subs, candidate[i:i+1])
	}
	return true, subs
}
