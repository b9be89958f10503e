package softfloat

// Comparison and sign tests, per spec.md §4.4.

// Compare returns -1, 0, or +1 according to whether f is less than,
// equal to, or greater than g. It computes f-g in a local scratch
// value and reads the sign, leaving both f and g unchanged.
func (f *Float) Compare(g *Float) int {
	var diff Float
	diff.Set(f)
	diff.Sub(g)

	switch {
	case diff.IsZero():
		return 0
	case diff.IsNeg():
		return -1
	default:
		return 1
	}
}

// CompareInt is Compare with i coerced to a Float first.
func (f *Float) CompareInt(i int) int {
	var tmp Float
	tmp.SetInt(i)
	return f.Compare(&tmp)
}

// IsZero reports whether f's mantissa is exactly zero in both halves.
func (f *Float) IsZero() bool {
	return f.msw == 0 && f.lsw == 0
}

// IsNeg reports whether f's mantissa is negative (msw < 0).
func (f *Float) IsNeg() bool {
	return f.msw < 0
}

// IsPos reports whether f is neither zero nor negative.
func (f *Float) IsPos() bool {
	return !f.IsZero() && !f.IsNeg()
}
