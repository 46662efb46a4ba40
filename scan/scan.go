package scan

import (
	"math"

	"github.com/calebcase/strtod/decimal"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// readSign consumes an optional sign and reports whether it was a minus.
func readSign(c *Cursor) (negative bool) {
	switch c.Peek() {
	case '+':
		c.Next()
	case '-':
		c.Next()
		return true
	}

	return false
}

// prefixLength returns how many leading bytes at c match word, ignoring ASCII
// case. The word must be lower case.
func prefixLength(c Cursor, word string) (n int) {
	for n < len(word) {
		b := c.Peek()
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}

		if b != word[n] {
			break
		}

		c.Next()
		n++
	}

	return n
}

// ReadSpecial reads an optionally signed "inf", "infinity" or "nan", ignoring
// case. Any other prefix of those words does not match.
func ReadSpecial(c Cursor) (f float64, end Cursor, ok bool) {
	start := c
	negative := readSign(&c)

	switch c.Peek() {
	case 'I', 'i':
		n := prefixLength(c, "infinity")
		if n != 3 && n != 8 {
			break
		}

		f = math.Inf(1)
		if negative {
			f = math.Inf(-1)
		}

		return f, c.Skip(n), true
	case 'N', 'n':
		if prefixLength(c, "nan") != 3 {
			break
		}

		f = math.NaN()
		if negative {
			f = math.Copysign(f, -1)
		}

		return f, c.Skip(3), true
	}

	return 0, start, false
}

// ReadDecimal reads the longest numeral at c into d:
//
//  numeral  = [ sign ] mantissa [ exponent ] .
//  mantissa = digits [ "." [ digits ] ] | "." digits .
//  exponent = ( "e" | "E" ) [ sign ] digits .
//
// A second decimal point ends the numeral. An exponent marker that is not
// followed by digits is left unread. On failure d is reset and end equals c.
func ReadDecimal(c Cursor, d *decimal.Decimal) (end Cursor, ok bool) {
	start := c

	d.Reset()
	d.Negative = readSign(&c)

	var digits, point bool

mantissa:
	for {
		b := c.Peek()

		switch {
		case isDigit(b):
			digits = true

			switch {
			case d.Count > 0 || b != '0':
				// Digits past the capacity are dropped but still
				// move the exponent when left of the point.
				d.Append(b - '0')
				if !point {
					d.AddExponent(1)
				}
			case point:
				// Leading zero of a fraction.
				d.AddExponent(-1)
			}
		case b == '.':
			if point {
				break mantissa
			}

			point = true
		default:
			break mantissa
		}

		c.Next()
	}

	if !digits {
		d.Reset()

		return start, false
	}

	if b := c.Peek(); b != 'e' && b != 'E' {
		return c, true
	}

	marker := c
	c.Next()

	negative := readSign(&c)
	if !isDigit(c.Peek()) {
		return marker, true
	}

	exp := 0
	for isDigit(c.Peek()) {
		exp = exp*10 + int(c.Peek()-'0')
		if exp > decimal.ClipExponent {
			exp = decimal.ClipExponent
		}

		c.Next()
	}

	if negative {
		exp = -exp
	}

	d.AddExponent(exp)

	return c, true
}

// Read reads a special value or a numeral at c and converts it to a float64.
// On failure end equals c.
func Read(c Cursor) (f float64, end Cursor, ok bool) {
	f, end, ok = ReadSpecial(c)
	if ok {
		return f, end, true
	}

	var d decimal.Decimal

	end, ok = ReadDecimal(c, &d)
	if !ok {
		return 0, c, false
	}

	return d.Float64(), end, true
}
