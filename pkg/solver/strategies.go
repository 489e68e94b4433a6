package solver

import (
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
)

// minBuildLength is the shortest word the word builder returns.
const minBuildLength = 2

// Anagram returns the words using exactly the letters given, blanks included.
// Without blanks the anagram index answers directly; with blanks every word
// of the rack's length is tested with CanForm.
func (s *Solver) Anagram(letters string) []Match {
	rack, blanks, ok := s.parseRack(letters)
	if !ok {
		return nil
	}
	return s.anagram(rack, blanks, len(rack)+blanks)
}

func (s *Solver) anagram(rack string, blanks, length int) []Match {
	if length == 0 {
		return nil
	}
	if blanks == 0 {
		return plainMatches(s.lex.Anagrams(utils.AnagramKey(rack)))
	}
	return s.formable(utils.CountLetters(rack), blanks, length, utils.NewMatchFilter(64))
}

// formable tests every word of the given length against avail plus blanks.
func (s *Solver) formable(avail utils.LetterCounts, blanks, length int, seen *utils.MatchFilter) []Match {
	var out []Match
	for _, word := range s.lex.WordsOfLength(length) {
		ok, subs := CanForm(word, avail, blanks)
		if !ok || !seen.ShouldInclude(word, length) {
			continue
		}
		out = append(out, Match{Word: word, Length: length, BlankSubstitutions: subs})
	}
	return out
}

// WordBuilder returns every word of two letters or more that can be spelled
// from a subset of the rack, longest first.
func (s *Solver) WordBuilder(letters string) []Match {
	rack, blanks, ok := s.parseRack(letters)
	if !ok {
		return nil
	}
	if len(rack)+blanks < minBuildLength {
		return nil
	}
	if blanks == 0 && subMultisets(utils.AnagramKey(rack), s.lex.Len()) <= s.lex.Len() {
		return s.subAnagrams(rack)
	}
	return s.buildByScan(rack, blanks)
}

// buildByScan tests the words of every length the rack can reach.
func (s *Solver) buildByScan(rack string, blanks int) []Match {
	avail := utils.CountLetters(rack)
	seen := utils.NewMatchFilter(256)
	var out []Match
	for length := min(len(rack)+blanks, s.lex.Stats().MaxLength); length >= minBuildLength; length-- {
		out = append(out, s.formable(avail, blanks, length, seen)...)
	}
	return out
}

// subMultisets counts the distinct sub-multisets of a sorted key, giving up
// once the count passes limit.
func subMultisets(key string, limit int) int {
	n := 1
	for i := 0; i < len(key); {
		j := i
		for j < len(key) && key[j] == key[i] {
			j++
		}
		n *= j - i + 1
		if n > limit {
			return limit + 1
		}
		i = j
	}
	return n
}

// subAnagrams walks the distinct sub-multisets of rack no longer than the
// lexicon's longest word and looks each one up in the anagram index.
// WordBuilder only takes this path when there are fewer of them than words.
func (s *Solver) subAnagrams(rack string) []Match {
	key := utils.AnagramKey(rack)
	maxLength := s.lex.Stats().MaxLength
	byLength := make([][]Match, len(key)+1)
	seen := utils.NewMatchFilter(256)

	var walk func(i int, picked []byte)
	walk = func(i int, picked []byte) {
		if i == len(key) {
			if len(picked) < minBuildLength {
				return
			}
			for _, w := range s.lex.Anagrams(string(picked)) {
				if seen.ShouldInclude(w, len(w)) {
					byLength[len(w)] = append(byLength[len(w)], plainMatch(w))
				}
			}
			return
		}
		// run of equal letters starting at i
		j := i
		for j < len(key) && key[j] == key[i] {
			j++
		}
		for take := 0; take <= j-i && len(picked)+take <= maxLength; take++ {
			walk(j, append(picked, key[i:i+take]...))
		}
	}
	walk(0, make([]byte, 0, len(key)))

	var out []Match
	for n := len(key); n >= minBuildLength; n-- {
		out = append(out, byLength[n]...)
	}
	return out
}

// StartsWith returns the words beginning with letters. Blanks cannot be part
// of a literal prefix and are dropped.
func (s *Solver) StartsWith(letters string) []Match {
	prefix := utils.StripBlanks(utils.NormalizeQuery(letters))
	return plainMatches(s.lex.WithPrefix(prefix))
}

// EndsWith returns the words ending with letters. Blanks are dropped as in
// StartsWith.
func (s *Solver) EndsWith(letters string) []Match {
	suffix := utils.StripBlanks(utils.NormalizeQuery(letters))
	return plainMatches(s.lex.WithSuffix(suffix))
}

// Containing returns the words holding every letter of the rack, repeats
// counted, and any letters besides. Each blank asks for one more letter of
// any kind; the extra letters that filled the blanks are reported as the
// substitutions.
func (s *Solver) Containing(letters string) []Match {
	rack, blanks, ok := s.parseRack(letters)
	if !ok || len(rack)+blanks == 0 {
		return nil
	}
	need := utils.CountLetters(rack)
	minLength := need.Total() + blanks

	var out []Match
	for _, word := range s.lex.ContainingAll(need) {
		// the bitmaps match letters, not repeats
		if len(word) < minLength || !utils.CountLetters(word).Covers(need) {
			continue
		}
		out = append(out, Match{Word: word, Length: len(word), BlankSubstitutions: leftovers(word, need, blanks)})
	}
	return out
}

// leftovers returns the first n letters of word not claimed by need, in word
// order.
func leftovers(word string, need utils.LetterCounts, n int) []string {
	subs := make([]string, 0, n)
	for i := 0; i < len(word) && len(subs) < n; i++ {
		c := word[i] - 'A'
		if need[c] > 0 {
			need[c]--
			continue
		}
		subs = append(subs, word[i:i+1])
	}
	return subs
}

// QWithoutU returns the words that start with Q but not with QU.
func (s *Solver) QWithoutU() []Match {
	var out []Match
	for _, word := range s.lex.WithPrefix("Q") {
		if !strings.HasPrefix(word, "QU") {
			out = append(out, plainMatch(word))
		}
	}
	return out
}

// Bingo returns the n-letter words formable from the rack with blanks
// appended until the rack holds n tiles. For the usual six-letter rack that is
// n-6 blanks.
func (s *Solver) Bingo(letters string, n int) []Match {
	rack, blanks, _ := s.parseRack(letters)
	tiles := len(rack) + blanks
	if tiles == 0 || tiles > n {
		return nil
	}
	blanks += n - tiles
	if blanks > s.maxBlanks {
		return nil
	}
	return s.anagram(rack, blanks, n)
}

// FixedLength lists every word of exactly n letters.
func (s *Solver) FixedLength(n int) []Match {
	return plainMatches(s.lex.WordsOfLength(n))
}
