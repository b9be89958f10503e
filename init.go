package softfloat

// Module-wide singletons, populated once by init(): the three
// sentinels, the decimal bracketing constant, the power-of-ten /
// rounding tables used by the decimal I/O layer, and the shift-mask
// tables. None of
// these are ever mutated after init() runs; callers receive copies
// (see PosInf/NegInf in arithmetic.go) so there is nothing to alias.

var (
	zeroValue   Float
	posInfValue Float
	negInfValue Float

	// log10_2 approximates log10(2); it brackets the decimal exponent
	// estimate in toString. Baked in as a literal the same way the
	// original's precomputed constant table would have been: it is a
	// transcendental value no amount of the library's own integer
	// arithmetic can derive from first principles.
	log10_2 Float

	// power10[k] = 10^(2^k), negPower10[k] = 10^-(2^k), for k = 0..7,
	// covering |n| <= 255 by binary decomposition (setPow10).
	power10    [8]Float
	negPower10 [8]Float

	// rounding[k] = 0.5 * 10^-k, for k = 0..9: the round-half-up bias
	// added in toString before truncating to n_digits.
	rounding [10]Float

	// shrMaskH/L[n] hold the bottom-n-bits mask for a 32-bit word,
	// split across the high/low halves, for n = 0..30. Retained for
	// parity with spec.md's data model; nothing in the package or its
	// tests reads them. The kernel itself shifts natively (mantSRA) since Go's arithmetic shift
	// already gives the sign-extension and masking the original
	// int16-only host needed these tables to emulate by hand.
	shrMaskH [31]int16
	shrMaskL [31]int16
)

func init() {
	zeroValue = Float{0, 0, MinExp}
	posInfValue = Float{}
	posInfValue.setMantissa(mantPosInf)
	posInfValue.exp = MaxExp
	negInfValue = Float{}
	negInfValue.setMantissa(mantNegInf)
	negInfValue.exp = MaxExp

	initShiftMasks()
	initPowerTables()
	initRoundingTable()
	initLog10_2()
}

func initShiftMasks() {
	for n := 0; n <= 30; n++ {
		var lo, hi uint32
		if n >= 32 {
			lo, hi = 0xFFFF, 0xFFFF
		} else if n >= 16 {
			lo = 0xFFFF
			hi = uint32(1)<<uint(n-16) - 1
		} else {
			lo = uint32(1)<<uint(n) - 1
			hi = 0
		}
		shrMaskL[n] = int16(lo)
		shrMaskH[n] = int16(hi)
	}
}

// initPowerTables computes power10[k] = 10^(2^k) and negPower10[k] =
// 10^-(2^k) for k = 0..7 by repeated squaring, using only the
// library's own SetInt/Mul/Div, never a host float.
func initPowerTables() {
	var ten Float
	ten.SetInt(10)
	power10[0] = ten

	for k := 1; k < 8; k++ {
		var sq Float
		sq.Set(&power10[k-1])
		sq.Mul(&power10[k-1])
		power10[k] = sq
	}

	var one Float
	one.SetInt(1)
	for k := 0; k < 8; k++ {
		var inv Float
		inv.Set(&one)
		inv.Div(&power10[k])
		negPower10[k] = inv
	}
}

// initRoundingTable computes rounding[k] = 0.5 * 10^-k for k = 0..9.
func initRoundingTable() {
	var half Float
	half.SetInt(5)
	half.DivInt(10) // 0.5
	rounding[0] = half
	for k := 1; k < 10; k++ {
		var next Float
		next.Set(&rounding[k-1])
		next.DivInt(10)
		rounding[k] = next
	}
}

// initLog10_2 sets log10_2 to the 10-significant-digit decimal literal
// for log10(2), parsed through the library's own SetString so the
// constant enters the system the same way any other decimal value
// would.
func initLog10_2() {
	log10_2.SetString("3.010299957e-001")
}
