package ddouble

import "math"

// Double is an unevaluated sum Hi + Lo. Under normal operation |Lo| is below
// one ulp of Hi. Once Hi overflows Lo is always zero.
type Double struct {
	Hi float64
	Lo float64
}

// Veltkamp split constants for a 53 bit mantissa.
const (
	// splitter is 2^(53 - 53/2) + 1.
	splitter = 134217729.0

	// splitLimit is 2^(1023 - 27). Above it splitter*a overflows.
	splitLimit = 6.69692879491417e+299

	// Scale factors 2^-28 and 2^28 used around an oversized split.
	splitDown = 3.7252902984619140625e-09
	splitUp   = 268435456.0
)

// FromFloat returns f with a zero correction term.
func FromFloat(f float64) Double {
	return Double{Hi: f}
}

// Float64 returns the leading term.
func (d Double) Float64() float64 {
	return d.Hi
}

// IsInf reports whether the leading term has overflowed.
func (d Double) IsInf() bool {
	return math.IsInf(d.Hi, 0)
}

// FastTwoSum returns a + b exactly as a rounded sum and its error. The
// result is only exact when |a| >= |b| (Dekker 1971).
func FastTwoSum(a, b float64) Double {
	hi := a + b
	if math.IsInf(hi, 0) {
		return Double{Hi: hi}
	}

	return Double{
		Hi: hi,
		Lo: b - (hi - a),
	}
}

// TwoSum returns a + b exactly as a rounded sum and its error for any a and
// b (Knuth).
func TwoSum(a, b float64) Double {
	hi := a + b
	if math.IsInf(hi, 0) {
		return Double{Hi: hi}
	}

	ah := hi - b
	bh := hi - ah

	return Double{
		Hi: hi,
		Lo: (a - ah) + (b - bh),
	}
}

// TwoProduct returns a * b exactly as a rounded product and its error.
func TwoProduct(a, b float64) Double {
	hi := a * b
	if math.IsInf(hi, 0) {
		return Double{Hi: hi}
	}

	return Double{
		Hi: hi,
		Lo: math.FMA(a, b, -hi),
	}
}

// Split divides a into two halves with at most 26 significant bits each such
// that hi + lo == a (Veltkamp). Magnitudes above 2^996 are scaled down by
// 2^28 before splitting and back up afterwards.
func Split(a float64) (hi, lo float64) {
	if a > splitLimit || a < -splitLimit {
		a *= splitDown

		t := splitter * a
		hi = t + (a - t)
		lo = a - hi

		return hi * splitUp, lo * splitUp
	}

	t := splitter * a
	hi = t + (a - t)

	return hi, a - hi
}

// TwoProductSplit is TwoProduct computed from Veltkamp halves (Dekker's
// mul12) instead of a fused multiply-add.
func TwoProductSplit(a, b float64) Double {
	hi := a * b
	if math.IsInf(hi, 0) {
		return Double{Hi: hi}
	}

	ah, al := Split(a)
	bh, bl := Split(b)

	err := hi - ah*bh
	err -= al * bh
	err -= ah * bl

	return Double{
		Hi: hi,
		Lo: al*bl - err,
	}
}

// Renormalize folds the correction term back into a canonical pair.
func (d Double) Renormalize() Double {
	return FastTwoSum(d.Hi, d.Lo)
}

// Add returns d + b (DWPlusFP).
func (d Double) Add(b float64) Double {
	s := TwoSum(d.Hi, b)
	if math.IsInf(s.Hi, 0) {
		return s
	}

	return FastTwoSum(s.Hi, s.Lo+d.Lo)
}

// Mul returns d * b (DWTimesFP1).
func (d Double) Mul(b float64) Double {
	p := TwoProduct(d.Hi, b)
	if math.IsInf(p.Hi, 0) {
		return p
	}

	s := FastTwoSum(p.Hi, d.Lo*b)

	return FastTwoSum(s.Hi, s.Lo+p.Lo)
}

// Div returns d / b (DWDivFP2). The approximate quotient is refined by the
// residual d - q*b divided by b.
func (d Double) Div(b float64) Double {
	q := d.Hi / b
	if math.IsInf(q, 0) {
		return Double{Hi: q}
	}

	p := TwoProduct(q, b)
	r := (d.Hi - p.Hi) - p.Lo

	return FastTwoSum(q, (r+d.Lo)/b)
}
