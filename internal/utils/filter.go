package utils

import (
	"fmt"
	"unicode"
)

// IsValidRack checks if raw user input can be read as a rack of tiles:
// letters and blank characters only, surrounding spaces ignored.
func IsValidRack(s string) bool {
	if len(s) == 0 {
		return false
	}
	seen := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			seen = true
		case IsBlankRune(r):
			seen = true
		default:
			return false
		}
	}
	return seen
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 && n > -1000 {
		return str
	}
	sign := ""
	if str[0] == '-' {
		sign, str = "-", str[1:]
	}
	result := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return sign + string(result)
}
