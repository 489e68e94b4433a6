package utils

import (
	"slices"
	"strings"
)

// Blank is the canonical wildcard tile in a normalized query.
const Blank = '?'

// LetterCounts is a frequency table over the letters A-Z.
// It is an array so that passing it by value hands the callee its own copy.
type LetterCounts [26]int

// IsBlankRune reports whether r is accepted as a blank tile in user input.
func IsBlankRune(r rune) bool {
	return r == '?' || r == '_' || r == '*' || r == '.'
}

// IsLetter reports whether b is an uppercase ASCII letter.
func IsLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// NormalizeQuery uppercases s, maps every accepted blank character to Blank
// and drops everything else that is not a letter.
func NormalizeQuery(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case IsBlankRune(r):
			b.WriteByte(Blank)
		}
	}
	return b.String()
}

// NormalizeWord uppercases and trims a dictionary line. ok is false when the
// line holds anything other than the letters A-Z.
func NormalizeWord(line string) (word string, ok bool) {
	word = strings.ToUpper(strings.TrimSpace(line))
	if word == "" {
		return "", false
	}
	for i := 0; i < len(word); i++ {
		if !IsLetter(word[i]) {
			return "", false
		}
	}
	return word, true
}

// SplitBlanks separates a normalized query into its letters and blank count.
func SplitBlanks(q string) (letters string, blanks int) {
	blanks = strings.Count(q, string(Blank))
	if blanks == 0 {
		return q, 0
	}
	return strings.ReplaceAll(q, string(Blank), ""), blanks
}

// StripBlanks removes every blank from a normalized query.
func StripBlanks(q string) string {
	letters, _ := SplitBlanks(q)
	return letters
}

// AnagramKey returns the letters of word sorted ascending.
func AnagramKey(word string) string {
	b := []byte(word)
	slices.Sort(b)
	return string(b)
}

// CountLetters builds the frequency table of the letters in s, ignoring
// anything that is not A-Z.
func CountLetters(s string) LetterCounts {
	var counts LetterCounts
	for i := 0; i < len(s); i++ {
		if IsLetter(s[i]) {
			counts[s[i]-'A']++
		}
	}
	return counts
}

// Covers reports whether c holds at least as many of every letter as need.
func (c LetterCounts) Covers(need LetterCounts) bool {
	for i := range c {
		if c[i] < need[i] {
			return false
		}
	}
	return true
}

// Total returns the number of letters counted.
func (c LetterCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Reverse returns s with its bytes in reverse order. Words are ASCII.
func Reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}
