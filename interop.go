package softfloat

import (
	"strconv"

	ieeehalf "github.com/x448/float16"
)

// ToIEEEHalf renders f as a hardware-shaped IEEE 754 half-precision
// value. This is a lossy bridge: Float carries far more dynamic range
// (exp in [-512, 511]) and a wider mantissa than a half can hold, so
// values outside the half's representable range saturate to its
// infinities the same way this library's own overflow does. The
// conversion is routed through the library's own decimal renderer
// rather than any binary export, since this type has no native
// hardware-float representation to hand over directly.
//
// This wires github.com/x448/float16, a dependency the teacher
// repository's go.mod declared but never imported (see DESIGN.md);
// nothing else in this package needs a hardware float representation,
// but it is a natural interop point for callers that must hand a
// value to code expecting the IEEE format.
func (f *Float) ToIEEEHalf() ieeehalf.Float16 {
	if f.isPosInfBits() {
		return ieeehalf.Inf(1)
	}
	if f.isNegInfBits() {
		return ieeehalf.Inf(-1)
	}
	if f.IsZero() {
		return ieeehalf.Float16(0)
	}

	v, _ := strconv.ParseFloat(f.ToString(9), 32)
	return ieeehalf.Fromfloat32(float32(v))
}

// FromIEEEHalf builds a Float from a hardware IEEE half value, routed
// through SetString so the conversion only ever depends on the
// library's own decimal parser.
func FromIEEEHalf(h ieeehalf.Float16) *Float {
	f := New()
	v := h.Float32()
	return f.SetString(strconv.FormatFloat(float64(v), 'e', 9, 32))
}
