package decimal

import (
	"math/big"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	if d.Count < 0 || d.Count > Capacity {
		return nil, Error.New("invalid digit count: %d", d.Count)
	}

	if d.Exponent > ClipExponent || d.Exponent < -ClipExponent {
		return nil, Error.New("exponent out of range: %d", d.Exponent)
	}

	header := byte(d.Count) << 1
	if d.Negative {
		header |= 1
	}

	data = make([]byte, 0, 1+(d.Count+1)/2+3)
	data = append(data, header)

	for i := 0; i < d.Count; i += 2 {
		if d.Digits[i] > 9 {
			return nil, Error.New("invalid digit at %d: %d", i, d.Digits[i])
		}

		b := d.Digits[i] << 4
		if i+1 < d.Count {
			if d.Digits[i+1] > 9 {
				return nil, Error.New("invalid digit at %d: %d", i+1, d.Digits[i+1])
			}

			b |= d.Digits[i+1]
		}

		data = append(data, b)
	}

	e := big.NewInt(int64(d.Exponent))
	negative := e.Sign() < 0
	e.Abs(e)
	e.Lsh(e, 1)
	if negative {
		e.SetBit(e, 0, 1)
	}

	exp := e.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we desire
	// zero to be an actual zero byte.
	if len(exp) == 0 {
		exp = []byte{0}
	}

	return append(data, exp...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	count := int(data[0] >> 1)
	if count > Capacity {
		return Error.New("invalid digit count: %d", count)
	}

	packed := (count + 1) / 2
	exp := data[1:]
	if len(exp) <= packed {
		return Error.New("short data: %d bytes for %d digits", len(data), count)
	}
	exp, digits := exp[packed:], exp[:packed]

	// ClipExponent with its sign bit fits in three bytes.
	if len(exp) > 3 {
		return Error.New("exponent too large: %d bytes", len(exp))
	}

	var out Decimal
	out.Negative = data[0]&1 == 1

	for i := 0; i < count; i++ {
		nibble := digits[i/2] >> 4
		if i%2 == 1 {
			nibble = digits[i/2] & 0x0f
		}

		if nibble > 9 {
			return Error.New("invalid digit at %d: %d", i, nibble)
		}

		out.Append(nibble)
	}

	if count > 0 && out.Digits[0] == 0 {
		return Error.New("leading zero digit")
	}

	e := new(big.Int).SetBytes(exp)
	negative := e.Bit(0) == 1
	e.Rsh(e, 1)

	if e.Int64() > ClipExponent {
		return Error.New("exponent out of range: %d", e.Int64())
	}

	out.Exponent = int(e.Int64())
	if negative {
		out.Exponent = -out.Exponent
	}

	*d = out

	return nil
}
