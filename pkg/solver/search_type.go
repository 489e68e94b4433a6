package solver

import "strings"

// SearchType names one of the search strategies.
type SearchType string

const (
	SearchAnagram     SearchType = "anagram"
	SearchWordBuilder SearchType = "wordbuilder"
	SearchStartsWith  SearchType = "startswith"
	SearchEndsWith    SearchType = "endswith"
	SearchContaining  SearchType = "containing"
	SearchQWithoutU   SearchType = "qwithoutu"
	SearchBingo7      SearchType = "bingo7"
	SearchBingo8      SearchType = "bingo8"
	SearchTwoLetter   SearchType = "twoletter"
	SearchThreeLetter SearchType = "threeletter"
	SearchFourLetter  SearchType = "fourletter"
	SearchFiveLetter  SearchType = "fiveletter"
)

// SearchTypes lists every known search type.
var SearchTypes = []SearchType{
	SearchAnagram, SearchWordBuilder, SearchStartsWith, SearchEndsWith,
	SearchContaining, SearchQWithoutU, SearchBingo7, SearchBingo8,
	SearchTwoLetter, SearchThreeLetter, SearchFourLetter, SearchFiveLetter,
}

var fixedLengths = map[SearchType]int{
	SearchTwoLetter:   2,
	SearchThreeLetter: 3,
	SearchFourLetter:  4,
	SearchFiveLetter:  5,
}

// ParseSearchType maps user input onto a SearchType. Case, spaces, dashes and
// underscores are ignored, so "Word-Builder" and "starts_with" both work.
// Anything unrecognized is read as SearchAnagram; ok reports whether the input
// was recognized.
func ParseSearchType(s string) (st SearchType, ok bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	for _, known := range SearchTypes {
		if cleaned == string(known) {
			return known, true
		}
	}
	return SearchAnagram, false
}

// FixedLength returns the word length listed by a fixed-length search type.
func (st SearchType) FixedLength() (int, bool) {
	n, ok := fixedLengths[st]
	return n, ok
}

// TakesLetters reports whether the search reads the rack at all. Q-without-U
// and the fixed-length listings ignore it.
func (st SearchType) TakesLetters() bool {
	if _, fixed := st.FixedLength(); fixed {
		return false
	}
	return st != SearchQWithoutU
}

func (st SearchType) String() string {
	return string(st)
}
