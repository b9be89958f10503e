package softfloat

import (
	"fmt"
	"io"
)

// Decimal I/O layer, per spec.md §4.5: conversion between the binary
// Float and decimal text, built entirely out of the library's own
// arithmetic (never a host float) plus the precomputed power-of-ten
// and rounding tables populated in init.go.

// setPow10 sets f to 10^n for |n| <= 255, by binary decomposition over
// the precomputed power10/negPower10 tables (10^(2^k), k=0..7).
func (f *Float) setPow10(n int) *Float {
	f.SetInt(1)
	neg := n < 0
	u := n
	if neg {
		u = -n
	}
	for k := 0; k < 8 && u != 0; k++ {
		if u&1 != 0 {
			if neg {
				f.Mul(&negPower10[k])
			} else {
				f.Mul(&power10[k])
			}
		}
		u >>= 1
	}
	return f
}

// floor implements _floor: denormalize a copy to exponent 30 (so the
// mantissa becomes a plain integer) and return its low half. The
// caller must ensure the value fits in a 16-bit int; this performs no
// range check, matching spec.md §4.5.
func (f *Float) floor() int16 {
	var work Float
	work.Set(f)
	work.denormalize(30)
	return work.lsw
}

// ToString renders f with nDigits significant digits (clamped to
// [1,10]), implementing the eight-step algorithm of spec.md §4.5.
// Output is bit-exact: optional '-', one digit, '.', nDigits-1 more
// digits, 'e', a sign, and exactly three exponent digits; the
// sentinels render as "+inf." and "-inf.".
func (f *Float) ToString(nDigits int) string {
	if nDigits < 1 {
		nDigits = 1
	} else if nDigits > 10 {
		nDigits = 10
	}

	if f.isPosInfBits() {
		return "+inf."
	}
	if f.isNegInfBits() {
		return "-inf."
	}

	var buf []byte

	var work Float
	work.Set(f)

	neg := work.IsNeg()
	if neg {
		work.Neg()
		buf = append(buf, '-')
	}
	isZero := work.IsZero()

	// Step 3: estimate the decimal exponent from the binary one.
	var expGuess Float
	expGuess.SetInt(int(f.exp))
	expGuess.Mul(&log10_2)
	exp10 := int(expGuess.floor())

	// Step 4: scale into approximately [1, 10).
	var scale Float
	scale.Set(&work)
	var negExp Float
	negExp.setPow10(-exp10)
	scale.Mul(&negExp)

	var ten, tenth Float
	ten.SetInt(10)
	tenth.SetInt(1)
	tenth.DivInt(10)

	// Step 5: renormalize the bracket.
	if scale.CompareInt(10) >= 0 {
		scale.Mul(&tenth)
		exp10++
	} else if !isZero && scale.CompareInt(1) < 0 {
		scale.Mul(&ten)
		exp10--
	}

	// Step 6: round-half-up bias for the requested digit count.
	scale.Add(&rounding[nDigits-1])
	if scale.CompareInt(10) >= 0 {
		scale.Mul(&tenth)
		exp10++
	}

	// Step 7: emit digits.
	for i := 0; i < nDigits; i++ {
		d := int(scale.floor())
		if d < 0 {
			d = 0
		} else if d > 9 {
			d = 9
		}
		buf = append(buf, byte('0'+d))
		scale.SubInt(d)
		if i == 0 {
			buf = append(buf, '.')
		}
		scale.Mul(&ten)
	}

	// Step 8: emit the exponent.
	if isZero {
		exp10 = 0
	}
	sign := byte('+')
	if exp10 < 0 {
		sign = '-'
	}
	absExp := exp10
	if absExp < 0 {
		absExp = -absExp
	}
	buf = append(buf, 'e', sign)
	buf = append(buf, fmt.Sprintf("%03d", absExp)...)

	return string(buf)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// SetString parses "[+|-]digits[.digits][(E|e)[+|-]digits]", optionally
// preceded by whitespace, per spec.md §6's regex
// `\s*[+-]?\d*(\.\d*)?([eE][+-]?\d+)?`. A missing mantissa parses as
// zero. The exponent is clamped to [-160, 160]. Any character that
// does not fit the grammar silently terminates parsing; the value
// accumulated up to that point is returned with no error, matching
// spec.md §7's "parse failure is silent" contract. When Config.LaxSign
// is set (the default), a run of several leading signs is accepted and
// the last one wins; otherwise parsing stops at the second sign.
func (f *Float) SetString(s string) *Float {
	i, n := 0, len(s)
	for i < n && isSpaceByte(s[i]) {
		i++
	}

	neg := false
	sawSign := false
	for i < n && (s[i] == '+' || s[i] == '-') {
		if sawSign && !laxSign() {
			break
		}
		neg = s[i] == '-'
		sawSign = true
		i++
	}

	f.SetInt(0)

	for i < n && isDigit(s[i]) {
		f.MulInt(10)
		f.AddInt(int(s[i] - '0'))
		i++
	}

	if i < n && s[i] == '.' {
		i++
		var place Float
		place.SetInt(1)
		place.DivInt(10)
		for i < n && isDigit(s[i]) {
			var digit Float
			digit.SetInt(int(s[i] - '0'))
			digit.Mul(&place)
			f.Add(&digit)
			place.DivInt(10)
			i++
		}
	}

	if neg {
		f.Neg()
		f.normalize()
	}

	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		expNeg := false
		if j < n && (s[j] == '+' || s[j] == '-') {
			expNeg = s[j] == '-'
			j++
		}
		expVal, digits := 0, 0
		for j < n && isDigit(s[j]) {
			expVal = expVal*10 + int(s[j]-'0')
			j++
			digits++
		}
		if digits > 0 {
			if expNeg {
				expVal = -expVal
			}
			if expVal > 160 {
				expVal = 160
			} else if expVal < -160 {
				expVal = -160
			}
			var p Float
			p.setPow10(expVal)
			f.Mul(&p)
		}
	}

	return f
}

// Print writes f's decimal rendering to w, the character-stream sink
// spec.md §1 assumes the host provides.
func (f *Float) Print(w io.Writer, nDigits int) {
	io.WriteString(w, f.ToString(nDigits))
}

// String implements fmt.Stringer using the package's configured
// default digit count.
func (f *Float) String() string {
	return f.ToString(defaultDigits())
}

// MarshalText implements encoding.TextMarshaler, grounded on
// db47h/decimal's Decimal, which implements the same interface over
// its own arbitrary-precision toa/atof pair.
func (f *Float) MarshalText() ([]byte, error) {
	return []byte(f.ToString(defaultDigits())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Per SetString's
// contract, malformed text is never an error: parsing simply stops at
// the first unrecognized character.
func (f *Float) UnmarshalText(text []byte) error {
	f.SetString(string(text))
	return nil
}
