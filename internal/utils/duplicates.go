package utils

import "strconv"

// MatchFilter drops repeated matches when more than one index path finds the
// same word. Entries are keyed on word and length.
type MatchFilter struct {
	seen map[string]struct{}
}

// NewMatchFilter creates an empty filter sized for roughly n entries.
func NewMatchFilter(n int) *MatchFilter {
	return &MatchFilter{seen: make(map[string]struct{}, n)}
}

// ShouldInclude returns true the first time a word/length pair is offered
// and false for every repeat.
func (f *MatchFilter) ShouldInclude(word string, length int) bool {
	key := word + ":" + strconv.Itoa(length)
	if _, dup := f.seen[key]; dup {
		return false
	}
	f.seen[key] = struct{}{}
	return true
}

// Len returns how many distinct entries were accepted.
func (f *MatchFilter) Len() int {
	return len(f.seen)
}
