package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"cat", "CAT"},
		{"c?t", "C?T"},
		{"c_t*", "C?T?"},
		{" a.b ", "A?B"},
		{"ab1-c", "ABC"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeQuery(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeWord(t *testing.T) {
	w, ok := NormalizeWord("  apple\r")
	assert.True(t, ok)
	assert.Equal(t, "APPLE", w)

	_, ok = NormalizeWord("don't")
	assert.False(t, ok)
	_, ok = NormalizeWord("   ")
	assert.False(t, ok)
}

func TestSplitBlanks(t *testing.T) {
	letters, blanks := SplitBlanks("A?C?")
	assert.Equal(t, "AC", letters)
	assert.Equal(t, 2, blanks)

	letters, blanks = SplitBlanks("ACT")
	assert.Equal(t, "ACT", letters)
	assert.Zero(t, blanks)
}

func TestAnagramKey(t *testing.T) {
	assert.Equal(t, "ACT", AnagramKey("CAT"))
	assert.Equal(t, AnagramKey("TAC"), AnagramKey("ACT"))
	assert.Equal(t, "EELST", AnagramKey("STEEL"))
}

func TestLetterCounts(t *testing.T) {
	c := CountLetters("BALLOON")
	assert.Equal(t, 2, c['L'-'A'])
	assert.Equal(t, 2, c['O'-'A'])
	assert.Equal(t, 7, c.Total())

	assert.True(t, c.Covers(CountLetters("LOON")))
	assert.False(t, c.Covers(CountLetters("LLL")))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "GOD", Reverse("DOG"))
	assert.Equal(t, "", Reverse(""))
}

func TestMatchFilter(t *testing.T) {
	f := NewMatchFilter(4)
	assert.True(t, f.ShouldInclude("CAT", 3))
	assert.False(t, f.ShouldInclude("CAT", 3))
	assert.True(t, f.ShouldInclude("CATS", 4))
	assert.Equal(t, 2, f.Len())
}

func TestIsValidRack(t *testing.T) {
	assert.True(t, IsValidRack("cat"))
	assert.True(t, IsValidRack("c?t "))
	assert.True(t, IsValidRack("??"))
	assert.False(t, IsValidRack(""))
	assert.False(t, IsValidRack("   "))
	assert.False(t, IsValidRack("c4t"))
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "279,496", FormatWithCommas(279496))
	assert.Equal(t, "-12,345", FormatWithCommas(-12345))
}
