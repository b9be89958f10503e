package softfloat

// This file implements the mantissa kernel: primitives over the 32-bit
// signed mantissa carried as two 16-bit halves (msw, lsw), per spec.md
// §4.1. Every operation here leaves f.exp untouched; carry and borrow
// detection is expressed in terms of the 16-bit halves rather than a
// native 32-bit carry flag, since the host this library models has
// none.

// mantAdd adds d's mantissa into f's mantissa modulo 2^32 and reports
// the carry out of bit 31. Carry is derived from the signed-compare
// rule in spec.md §4.1: if both high bits are set, there is a carry;
// if neither is set, there is none; otherwise carry depends on whether
// the low 15 bits overflow into the sign bit.
func (f *Float) mantAdd(d *Float) int {
	lsum := int32(uint16(f.lsw)) + int32(uint16(d.lsw))
	lowCarry := int16(lsum >> 16) // 0 or 1

	msum := int32(f.msw) + int32(d.msw) + int32(lowCarry)

	aHigh := f.msw < 0
	bHigh := d.msw < 0
	var carry int
	switch {
	case aHigh && bHigh:
		carry = 1
	case !aHigh && !bHigh:
		carry = 0
	default:
		// exactly one operand has its high bit set: carry out iff the
		// 15 low bits of the two high halves overflow the sign bit.
		lowA := f.msw & 0x7FFF
		lowB := d.msw & 0x7FFF
		if int32(lowA)+int32(lowB)+int32(lowCarry) >= (1 << 15) {
			carry = 1
		}
	}

	f.msw = int16(msum)
	f.lsw = int16(lsum)
	return carry
}

// mantAddInt adds the 32-bit value derived by sign-extending i into
// f's mantissa.
func (f *Float) mantAddInt(i int32) int {
	var d Float
	d.setMantissa(i)
	return f.mantAdd(&d)
}

// mantNeg negates f's mantissa via two's-complement: complement both
// halves, then add 1 with carry from lsw into msw. 0x80000000 negates
// to itself; callers normalizing the result handle that case.
func (f *Float) mantNeg() {
	f.msw = ^f.msw
	f.lsw = ^f.lsw
	if f.lsw == -1 { // ^lsw + 1 wraps to 0, carries into msw
		f.lsw = 0
		f.msw++
	} else {
		f.lsw++
	}
}

// mantSub subtracts d's mantissa from f's via negate-then-add.
func (f *Float) mantSub(d *Float) {
	var neg Float
	neg.Set(d)
	neg.mantNeg()
	f.mantAdd(&neg)
}

// mantSHL1 shifts f's mantissa left by one bit and returns the bit
// shifted out of bit 31.
func (f *Float) mantSHL1() int {
	out := 0
	if f.msw < 0 {
		out = 1
	}
	carry := int16(0)
	if f.lsw < 0 {
		carry = 1
	}
	f.msw = (f.msw << 1) | carry
	f.lsw = f.lsw << 1
	return out
}

// mantSHR1 shifts f's mantissa right by one bit, logically (the new
// bit 31 is cleared).
func (f *Float) mantSHR1() {
	carry := int16(f.msw & 1)
	f.msw = int16(uint16(f.msw) >> 1)
	f.lsw = int16(uint16(f.lsw)>>1) | (carry << 15)
}

// mantSRA arithmetically shifts f's mantissa right by n bits,
// sign-extending, and returns the last bit shifted out. n > 31
// saturates to all-0s or all-1s depending on sign.
func (f *Float) mantSRA(n int) int {
	if n <= 0 {
		return 0
	}
	m := f.mantissa()
	var out int
	if n > 31 {
		if m < 0 {
			f.setMantissa(-1)
			out = 1
		} else {
			f.setMantissa(0)
			out = 0
		}
		return out
	}
	out = int((m >> uint(n-1)) & 1)
	f.setMantissa(m >> uint(n))
	return out
}

// mantIsMaxNeg reports whether f's mantissa is exactly 0x80000000.
func (f *Float) mantIsMaxNeg() bool {
	return f.msw == -32768 && f.lsw == 0
}

// mantBit30 reports whether bit 30 of f's mantissa is set.
func (f *Float) mantBit30() bool {
	return f.msw&0x4000 != 0
}

// mantUCompare compares f and d's mantissas as unsigned 32-bit
// integers, returning -1, 0, or +1.
func (f *Float) mantUCompare(d *Float) int {
	a := uint32(f.mantissa())
	b := uint32(d.mantissa())
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// mantLongUmult performs an unsigned 31x31->62-bit multiply of f and
// m's mantissas via a left-to-right shift-and-add, per spec.md §4.1:
// 31 iterations shifting a 64-bit accumulator left by one, adding m
// whenever the current top mantissa bit (bit 30) of f is set, then
// shifting f itself left by one. After the loop, the top 30 bits of
// the product are left in f and the bottom 32 in m.
func (f *Float) mantLongUmult(m *Float) {
	var accHigh, accLow uint32
	work := *f
	for i := 0; i < 31; i++ {
		// shift 64-bit accumulator left by 1
		carry := accLow >> 31
		accLow <<= 1
		accHigh = (accHigh << 1) | carry

		if work.mantBit30() {
			mm := uint32(m.mantissa())
			sum := accLow + mm
			if sum < accLow {
				accHigh++
			}
			accLow = sum
		}
		work.mantSHL1()
	}
	f.setMantissa(int32(accHigh))
	m.setMantissa(int32(accLow))
}
