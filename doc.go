// Package strtod converts decimal text to the nearest float64.
//
// The accepted text is a C style floating point literal:
//
//  [+-] digits [. digits] [(e|E) [+-] digits]
//  [+-] (inf | infinity | nan)                   (any case)
//
// Either side of the decimal point may be empty, but not both. There is no
// whitespace skipping, no locale and no hexadecimal form; a dot is always the
// decimal separator.
//
// Parsing reads the longest valid prefix and reports where it stopped. What
// follows the number is left to the caller:
//
//  f, n, ok := strtod.ParseString("+123.45e-22 abc")
//  // f = 123.45e-22, n = 11, ok = true
//
// The only failure is the absence of any number at the start position.
//
// Accuracy
//
// Up to 34 significant digits are retained and combined in double-double
// arithmetic. Results up to 31 significant digits are within one ulp of the
// correctly rounded value and usually exact. Further digits are truncated.
//
// Concurrency
//
// All functions are pure and may be called concurrently. Parse, ParseAt and
// ParseInto do not allocate.
package strtod
