// Package decimal provides a bounded base 10 number and its conversion to
// float64.
//
// The equation for a decimal number is:
//
//  number = d[0].d[1]d[2]...d[count-1] * 10^exponent
//
// Where d is a sequence of at most 34 decimal digits, the first of which is
// non-zero, and exponent is the power of ten of the first digit. For example:
//
//  123.45   = 1.2345 * 10^2   (count = 5, exponent = 2)
//  0.00120  = 1.2 * 10^-3     (count = 2, exponent = -3)
//
// The exponent is clamped to ±1_000_000 which is far beyond the range of a
// float64. Digits beyond the capacity are dropped (truncation, not rounding).
//
// Conversion
//
// Float64 accumulates the digits into a double-double value, then scales it
// by powers of ten in chunks of 10^22 (the largest exactly representable
// power). Scaling stops early once the value overflows to infinity or
// underflows to zero.
//
// Encoding
//
// A decimal is laid out as a header byte, the digits packed two per byte, and
// finally the exponent:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-------------------------------|
//  | count (0..34)             | s | Header, s is the sign bit.
//  |---------------|---------------|
//  | d[0]          | d[1]          | (count + 1) / 2 bytes, an odd count
//  | ...           | ...           | leaves the last nibble zero.
//  |---------------|---------------|
//  | \|exponent\|              | s | 1 to 3 bytes, big-endian.
//  |-------------------------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// All integers in the format are encoded big-endian with a trailing sign bit
// (aka zigzag).
//
// Examples
//
// Zero (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 | 0 | No digits, positive.
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 | 1 | Exponent of -1.
//  |---------------|---------------|
//
// -12.5 (4 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 | 1 | Three digits, negative.
//  | 0 . 0 . 0 . 1 | 0 . 0 . 1 . 0 | Digits 1 and 2.
//  | 0 . 1 . 0 . 1 | 0 . 0 . 0 . 0 | Digit 5 and padding.
//  | 0 . 0 . 0 . 0 . 0 . 0 . 1 | 0 | Exponent of +1.
//  |---------------|---------------|
package decimal
