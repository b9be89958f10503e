package softfloat

// Arithmetic operations per spec.md §4.3. Every method here mutates
// and returns its receiver so calls can be chained. Add, Mul and Div
// end with a call to normalize, and the Int variants and Sqrt reach
// their result through those; Neg never normalizes, so Sub, which
// ends with a Neg, does not finish with a normalize call either.

// PosInf returns a copy of the +infinity sentinel. Because Float is a
// plain value type, there is nothing here for a caller to alias and
// mutate; the copy-on-return is automatic.
func PosInf() Float { return posInfValue }

// NegInf returns a copy of the -infinity sentinel.
func NegInf() Float { return negInfValue }

// Zero returns a copy of the numeric zero sentinel.
func Zero() Float { return zeroValue }

// Neg bitwise-complements the mantissa's two halves and adds one,
// matching spec.md §4.3. It deliberately does not normalize: 0x80000000
// negates to itself, and that state is unreachable through the public
// API since normalize() never leaves a Float there (see normalize.go).
// Sub relies on this raw behavior, bracketing Add between two Negs.
func (f *Float) Neg() *Float {
	f.mantNeg()
	return f
}

// Add sets f to f+g. Exponents are aligned by denormalizing whichever
// operand has the smaller exponent; g is copied first so the caller's
// argument is never mutated (this also makes f.Add(f) safe, even
// though it would otherwise alias).
func (f *Float) Add(g *Float) *Float {
	var gg Float
	gg.Set(g)

	var round int
	switch {
	case f.exp < gg.exp:
		round = f.denormalize(gg.exp)
	case gg.exp < f.exp:
		round = gg.denormalize(f.exp)
	}

	signF := f.msw < 0
	signG := gg.msw < 0

	f.mantAdd(&gg)
	if round != 0 {
		f.mantAddInt(1)
	}

	if signF == signG {
		resultSign := f.msw < 0
		if resultSign != signF {
			// magnitude overflow: shift right, restore the sign bit,
			// bump the exponent (or saturate if already at the top).
			f.mantSHR1()
			if signF {
				f.msw = int16(uint16(f.msw) | 0x8000)
			}
			if f.exp >= MaxExp {
				if signF {
					f.Set(&negInfValue)
				} else {
					f.Set(&posInfValue)
				}
				return f
			}
			f.exp++
		}
	}

	f.normalize()
	return f
}

// AddInt materializes i as a Float and delegates to Add.
func (f *Float) AddInt(i int) *Float {
	var tmp Float
	tmp.SetInt(i)
	return f.Add(&tmp)
}

// Sub sets f to f-g via neg/add/neg, which preserves the identity on
// zero exactly as spec.md §4.3 describes.
func (f *Float) Sub(g *Float) *Float {
	f.Neg()
	f.Add(g)
	f.Neg()
	return f
}

// SubInt materializes i as a Float and delegates to Sub.
func (f *Float) SubInt(i int) *Float {
	var tmp Float
	tmp.SetInt(i)
	return f.Sub(&tmp)
}

// Mul sets f to f*g. Operands are negated into local absolute-value
// copies, multiplied via the unsigned 31x31->62-bit kernel primitive,
// renormalized by at most one extra bit, rounded from the residue bit,
// and resigned.
func (f *Float) Mul(g *Float) *Float {
	signF := f.msw < 0
	signG := g.msw < 0
	resultNeg := signF != signG

	var a, b Float
	a.Set(f)
	if signF {
		a.mantNeg()
	}
	b.Set(g)
	if signG {
		b.mantNeg()
	}

	resultExp := a.exp + b.exp + 1

	low := b
	a.mantLongUmult(&low)

	lowOut := low.mantSHL1()
	a.setMantissa((a.mantissa() << 1) | int32(lowOut))

	if !a.mantBit30() {
		lowOut2 := low.mantSHL1()
		a.setMantissa((a.mantissa() << 1) | int32(lowOut2))
		resultExp--
	}

	if low.msw < 0 {
		a.mantAddInt(1)
		if a.msw < 0 {
			a.setMantissa(1 << 30) // 0x40000000
			resultExp++
		}
	}

	f.setMantissa(a.mantissa())
	f.exp = resultExp
	if resultNeg {
		f.mantNeg()
	}
	f.normalize()
	return f
}

// MulInt materializes i as a Float and delegates to Mul.
func (f *Float) MulInt(i int) *Float {
	var tmp Float
	tmp.SetInt(i)
	return f.Mul(&tmp)
}

// Div sets f to f/g, panicking with a DivideByZero-coded *Error if g
// is zero (spec.md §7: this is one of the library's two fatal,
// non-recoverable signals). The quotient is built one bit at a time
// by restoring long division over the unsigned magnitudes.
func (f *Float) Div(g *Float) *Float {
	if g.IsZero() {
		panic(&Error{Op: "div", Code: ErrDivideByZero, Msg: "division by zero"})
	}

	signF := f.msw < 0
	signG := g.msw < 0
	resultNeg := signF != signG

	var rem, div Float
	rem.Set(f)
	if signF {
		rem.mantNeg()
	}
	div.Set(g)
	if signG {
		div.mantNeg()
	}

	resultExp := f.exp

	if rem.mantUCompare(&div) < 0 {
		rem.mantSHL1()
		resultExp--
	}

	var quotient Float
	for i := 0; i < 31; i++ {
		quotient.mantSHL1()
		if rem.mantUCompare(&div) >= 0 {
			rem.mantSub(&div)
			quotient.mantAddInt(1)
		}
		rem.mantSHL1()
	}

	resultExp -= g.exp

	if rem.mantUCompare(&div) >= 0 {
		quotient.mantAddInt(1)
		if quotient.msw < 0 {
			quotient.setMantissa(1 << 30)
			resultExp++
		}
	}

	f.setMantissa(quotient.mantissa())
	f.exp = resultExp
	if resultNeg {
		f.mantNeg()
	}
	f.normalize()
	return f
}

// DivInt materializes i as a Float and delegates to Div.
func (f *Float) DivInt(i int) *Float {
	var tmp Float
	tmp.SetInt(i)
	return f.Div(&tmp)
}

// Sqrt sets f to sqrt(f), panicking with a SqrtOfNegative-coded *Error
// if f is negative. Zero is returned unchanged. Otherwise six Newton
// iterations of x <- (x + n/x)/2 run against an initial guess obtained
// by halving f's own exponent — a single shift, not a full divide,
// since exp is already a power-of-two register. Each "/2" inside the
// loop is likewise a single decrement of exp rather than a divide,
// since it is always exact.
func (f *Float) Sqrt() *Float {
	if f.IsNeg() {
		panic(&Error{Op: "sqrt", Code: ErrSqrtOfNegative, Msg: "square root of negative number"})
	}
	if f.IsZero() {
		return f
	}

	var n Float
	n.Set(f)

	var x Float
	x.Set(f)
	x.exp = x.exp >> 1

	for i := 0; i < 6; i++ {
		var quot Float
		quot.Set(&n)
		quot.Div(&x)
		x.Add(&quot)
		x.exp--
		x.normalize()
	}

	f.Set(&x)
	return f
}
