// Package scan recognizes floating point tokens in NUL terminated text.
//
// A token is either a special value or a decimal numeral:
//
//  token   = [ sign ] ( special | numeral ) .
//  sign    = "+" | "-" .
//  special = "inf" | "infinity" | "nan" .   (any case)
//  numeral = mantissa [ exponent ] .
//
// Scanning always takes the longest valid prefix and never fails because of
// what follows it:
//
//  | Input             | Token        | Stops at       |
//  |-------------------|--------------|----------------|
//  | "1984"            | 1984         | terminator     |
//  | "+123.45e-22 abc" | 123.45e-22   | " "            |
//  | ".99"             | 0.99         | terminator     |
//  | "500e"            | 500          | "e"            |
//  | "1.5.3"           | 1.5          | second "."     |
//  | "-Infinity!"      | -inf         | "!"            |
//  | "nanx"            | nan          | "x"            |
//  | "infinite"        | no token     |                |
//  | "aboba"           | no token     |                |
//  |-------------------|--------------|----------------|
//
// Leading zeros are consumed without taking a digit slot. Only the first
// 34 significant digits are kept; the rest are consumed and dropped.
package scan
