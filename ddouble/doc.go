// Package ddouble provides double-double arithmetic.
//
// A double-double value is the exact, unevaluated sum of two float64 values:
//
//  x = hi + lo
//
// where hi is x rounded to a float64 and lo carries the rounding error. This
// gives roughly 106 bits of significand, enough to accumulate 31 decimal
// digits and apply a power of ten scale without compounding rounding errors.
//
// Error Free Transformations
//
// The building blocks turn a single float64 operation into a rounded result
// and its exact error:
//
//  | Function        | Computes | Condition   |
//  |-----------------|----------|-------------|
//  | FastTwoSum      | a + b    | |a| >= |b|  |
//  | TwoSum          | a + b    | none        |
//  | TwoProduct      | a * b    | none (FMA)  |
//  | TwoProductSplit | a * b    | none        |
//  |-----------------|----------|-------------|
//
// Mixed Operations
//
// Double.Add, Double.Mul and Double.Div combine a double-double with a plain
// float64 and return a renormalized double-double. Values are immutable; every
// operation returns a new Double.
//
// Once a leading term overflows to infinity the correction term has no
// meaning. All operations then return Double{Hi: ±Inf} with Lo set to zero.
package ddouble
