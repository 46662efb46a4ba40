package decimal

import (
	"math"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/strtod/ddouble"
)

// Error is the class of decimal errors.
var Error = errs.Class("decimal")

const (
	// MaxSignificantDigits is the number of decimal digits that uniquely
	// identify any float64.
	MaxSignificantDigits = 17

	// Capacity is the number of digits a Decimal retains.
	Capacity = 2 * MaxSignificantDigits

	// ClipExponent bounds the magnitude of Exponent.
	ClipExponent = 1_000_000
)

// Decimal is a bounded base 10 number:
//
//  number = ±0.d[0]d[1]...d[Count-1] * 10^(Exponent+1)
//
// Exponent is the power of ten of the first digit. A Decimal with Count == 0
// is zero regardless of Exponent.
type Decimal struct {
	Count    int
	Exponent int
	Negative bool
	Digits   [Capacity]uint8
}

// Reset clears d to zero with no digits seen.
func (d *Decimal) Reset() {
	*d = Decimal{Exponent: -1}
}

// IsZero reports whether no significant digit has been retained.
func (d *Decimal) IsZero() bool {
	return d.Count == 0
}

// Append adds a trailing digit. It returns false, and leaves d unchanged, when
// the decimal is already at capacity.
func (d *Decimal) Append(digit uint8) bool {
	if d.Count >= Capacity {
		return false
	}

	d.Digits[d.Count] = digit
	d.Count++

	return true
}

// AddExponent adds delta to Exponent, clamping the result to ±ClipExponent.
func (d *Decimal) AddExponent(delta int) {
	e := d.Exponent + delta

	switch {
	case e > ClipExponent:
		e = ClipExponent
	case e < -ClipExponent:
		e = -ClipExponent
	}

	d.Exponent = e
}

const (
	// lastExactPower is the largest n such that 10^n is exact in a float64.
	lastExactPower = 22

	// maxSafeHi is the largest accumulator for which x*10 + 9 stays below
	// 2^53 - 1.
	maxSafeHi = (1<<53 - 1 - 9) / 10
)

var powersOfTen = [lastExactPower + 1]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// Float64 returns the float64 nearest to d. Up to 31 significant digits the
// result is within one ulp of the correctly rounded value.
func (d *Decimal) Float64() float64 {
	if d.Count == 0 {
		if d.Negative {
			return math.Copysign(0, -1)
		}

		return 0
	}

	var n ddouble.Double

	for _, digit := range d.Digits[:d.Count] {
		if n.Hi <= maxSafeHi {
			n.Hi = n.Hi*10 + float64(digit)

			continue
		}

		n = n.Mul(10).Add(float64(digit))
	}

	// Power of ten of the last retained digit.
	exp := d.Exponent - d.Count + 1

	for exp > lastExactPower {
		n = n.Mul(powersOfTen[lastExactPower])
		if n.IsInf() {
			break
		}

		exp -= lastExactPower
	}

	if exp > 0 && !n.IsInf() {
		n = n.Mul(powersOfTen[exp])
	}

	for exp < -lastExactPower {
		n = n.Div(powersOfTen[lastExactPower])
		if n.Hi == 0 {
			break
		}

		exp += lastExactPower
	}

	if exp < 0 && n.Hi != 0 {
		n = n.Div(powersOfTen[-exp])
	}

	f := n.Renormalize().Float64()
	if d.Negative {
		f = -f
	}

	return f
}

// String returns d in scientific notation, e.g. "-1.25e-3".
func (d *Decimal) String() string {
	buf := make([]byte, 0, Capacity+16)

	if d.Negative {
		buf = append(buf, '-')
	}

	if d.Count == 0 {
		return string(append(buf, '0'))
	}

	buf = append(buf, '0'+d.Digits[0])
	if d.Count > 1 {
		buf = append(buf, '.')
		for _, digit := range d.Digits[1:d.Count] {
			buf = append(buf, '0'+digit)
		}
	}

	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(d.Exponent), 10)

	return string(buf)
}
