package strtod

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/strtod/scan"
)

// Error is the class of strtod errors.
var Error = errs.Class("strtod")

// ErrSyntax indicates that no number could be read.
var ErrSyntax = Error.New("invalid syntax")

// ParseAt reads the longest floating point token of text starting at pos.
// The text ends at its first zero byte or at the end of the slice.
//
// On success end is the offset of the first unread byte. On failure ok is
// false and end equals pos.
func ParseAt(text []byte, pos int) (f float64, end int, ok bool) {
	c := scan.NewCursor(text, pos)

	f, e, ok := scan.Read(c)
	if !ok {
		return 0, c.Pos(), false
	}

	return f, e.Pos(), true
}

// Parse reads the longest floating point token at the start of text and
// returns its value and length.
func Parse(text []byte) (f float64, n int, ok bool) {
	return ParseAt(text, 0)
}

// ParseString is Parse for a string.
func ParseString(s string) (f float64, n int, ok bool) {
	return Parse([]byte(s))
}

// ParseInto reads the longest floating point token at the start of text. On
// success it stores the value in value and the offset of the first unread
// byte in end and returns 1. On failure it returns 0 and leaves both
// untouched.
func ParseInto(text []byte, value *float64, end *int) int {
	f, n, ok := Parse(text)
	if !ok {
		return 0
	}

	*value = f
	*end = n

	return 1
}

// ParseFloat converts all of s to a float64. Unlike Parse, any bytes left
// after the number are an error.
func ParseFloat(s string) (float64, error) {
	f, n, ok := ParseString(s)
	if !ok {
		return 0, ErrSyntax
	}

	if n != len(s) {
		return f, Error.New("unexpected %q at offset %d", s[n:], n)
	}

	return f, nil
}
