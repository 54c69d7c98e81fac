package grid

import (
	"fmt"
	"strings"
)

// FromString builds a Grid from a line-oriented text blob. Line i becomes
// row i and the j-th character of a line becomes column j, converted by conv.
// Lines are split on '\n'; a trailing '\r' is dropped and a final newline does
// not produce an extra row.
func FromString[D comparable](text string, conv func(rune) D) *Grid[int, D] {
	g := New[int, D]()
	for y, line := range lines(text) {
		for x, r := range []rune(line) {
			g.Insert(x, y, conv(r))
		}
	}
	return g
}

// FromRunes is FromString with the identity conversion.
func FromRunes(text string) *Grid[int, rune] {
	return FromString(text, func(r rune) rune { return r })
}

// ParseDigits builds a Grid of decimal digits. Any other character fails with
// an error wrapping ErrInvalidDigit that names its line and column.
func ParseDigits(text string) (*Grid[int, int], error) {
	g := New[int, int]()
	for y, line := range lines(text) {
		for x, r := range []rune(line) {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrInvalidDigit, r, y+1, x+1)
			}
			g.Insert(x, y, int(r-'0'))
		}
	}
	return g, nil
}

// lines splits text the way a line reader does: no empty trailing line and
// no carriage returns.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	out := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
