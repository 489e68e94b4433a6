package solver

import (
	"slices"
	"strings"
)

// Match is one word found by a search.
type Match struct {
	Word   string `msgpack:"word"`
	Length int    `msgpack:"length"`
	// BlankSubstitutions holds the letters the blanks stood for, in the order
	// they were resolved. Empty when the query had no blanks.
	BlankSubstitutions []string `msgpack:"blankSubstitutions"`
}

// Grouped is the result set of every search: word length -> matches.
type Grouped map[int][]Match

// Group partitions matches by their Length. Matches are kept whole and no
// deduplication happens here.
func Group(matches []Match) Grouped {
	g := make(Grouped)
	for _, m := range matches {
		g[m.Length] = append(g[m.Length], m)
	}
	return g
}

// Lengths returns the lengths present, ascending.
func (g Grouped) Lengths() []int {
	lengths := make([]int, 0, len(g))
	for n := range g {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)
	return lengths
}

// Count returns the number of matches across all groups.
func (g Grouped) Count() int {
	n := 0
	for _, ms := range g {
		n += len(ms)
	}
	return n
}

// Flatten joins the groups back into one list, shortest words first.
func (g Grouped) Flatten() []Match {
	out := make([]Match, 0, g.Count())
	for _, n := range g.Lengths() {
		out = append(out, g[n]...)
	}
	return out
}

// Words returns the words of length n in group order.
func (g Grouped) Words(n int) []string {
	words := make([]string, len(g[n]))
	for i, m := range g[n] {
		words[i] = m.Word
	}
	return words
}

// SortGroups orders each group alphabetically by word.
func SortGroups(g Grouped) {
	for _, ms := range g {
		slices.SortStableFunc(ms, func(a, b Match) int {
			return strings.Compare(a.Word, b.Word)
		})
	}
}
