package internal

import (
	"strings"
	"unicode/utf8"
)

// PadLeft prepends fill until s is at least width runes long
func PadLeft(s string, fill rune, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(fill), n) + s
}

// PadRight appends fill until s is at least width runes long
func PadRight(s string, fill rune, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(fill), n)
}

// ApplyWidth pads s to d.Width: on the right when the sign directive is
// '-', on the left otherwise. A zero width leaves s untouched.
func ApplyWidth(s string, d Directives) string {
	if d.Width <= 0 {
		return s
	}
	if d.Sign == SignMinus {
		return PadRight(s, d.FillOrDefault(), d.Width)
	}
	return PadLeft(s, d.FillOrDefault(), d.Width)
}

// Truncate keeps at most n runes of s; n <= 0 keeps everything
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
