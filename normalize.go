package softfloat

// _normalize and _denormalize re-establish and exploit the canonical
// form of a Float: bit 31 of the mantissa differs from bit 30, except
// for zero and the rewritten max-negative value 0xC0000000. Every arithmetic method
// terminates with exactly one call to normalize on its receiver;
// invariants may be temporarily violated between intermediate steps.

const (
	mantZero    int32 = 0
	mantMaxNeg  int32 = -0x80000000 // 0x80000000 as int32
	mantCanon   int32 = -0x40000000 // 0xC0000000 as int32
	mantPosInf  int32 = 0x7FFFFFFF
	mantNegInf  int32 = -0x7FFFFFFF // 0x80000001 as int32
)

// normalize implements _normalize from spec.md §4.2.
func (f *Float) normalize() *Float {
	m := f.mantissa()

	// 1. Already canonical; only the range clamp of step 5 applies.
	if m == mantCanon {
		if f.exp > MaxExp {
			f.setMantissa(mantNegInf)
			f.exp = MaxExp
		} else if f.exp < MinExp {
			f.setMantissa(mantZero)
			f.exp = MinExp
		}
		return f
	}

	// 2. Zero.
	if m == mantZero {
		f.exp = MinExp
		return f
	}

	// 3. Shift left while the leading bit equals the sign bit.
	for {
		signBit := m < 0
		bit30 := m&0x40000000 != 0
		if signBit != bit30 {
			break
		}
		if f.exp <= MinExp {
			f.setMantissa(mantZero)
			f.exp = MinExp
			return f
		}
		m <<= 1
		f.exp--
	}
	f.setMantissa(m)

	// 4. Max-negative cannot be represented symmetrically.
	if f.mantIsMaxNeg() {
		if f.exp >= MaxExp {
			f.setMantissa(mantNegInf)
			f.exp = MaxExp
			return f
		}
		f.setMantissa(mantCanon)
		f.exp++
		return f
	}

	// 5. Range clamp.
	if f.exp < MinExp {
		f.setMantissa(mantZero)
		f.exp = MinExp
		return f
	}
	if f.exp > MaxExp {
		if m < 0 {
			f.setMantissa(mantNegInf)
		} else {
			f.setMantissa(mantPosInf)
		}
		f.exp = MaxExp
		return f
	}
	return f
}

// denormalize implements _denormalize(e) from spec.md §4.2: if e is
// larger than f's current exponent, arithmetic-shift the mantissa
// right by (e - f.exp) and adopt e; the guard/round bit shifted out is
// returned. Otherwise f is unchanged and 0 is returned.
func (f *Float) denormalize(e int16) int {
	if e <= f.exp {
		return 0
	}
	shift := int(e - f.exp)
	round := f.mantSRA(shift)
	f.exp = e
	return round
}

// isPosInfBits and isNegInfBits report whether f holds the exact bit
// pattern of the +inf or -inf sentinel, without requiring
// normalization first.
func (f *Float) isPosInfBits() bool {
	return f.exp == MaxExp && f.mantissa() == mantPosInf
}

func (f *Float) isNegInfBits() bool {
	return f.exp == MaxExp && f.mantissa() == mantNegInf
}
