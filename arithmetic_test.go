package softfloat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"1 + 2", "1", "2", "3.00000e+000"},
		{"0.5 + 0.25", "0.5", "0.25", "7.50000e-001"},
		{"x + 0", "3.5", "0", "3.50000e+000"},
		{"0 + x", "0", "3.5", "3.50000e+000"},
		{"-1 + 1", "-1", "1", "0.00000e+000"},
		{"1.5 + -0.5", "1.5", "-0.5", "1.00000e+000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New().SetString(tt.a)
			b := New().SetString(tt.b)
			a.Add(b)
			require.Equal(t, tt.want, a.ToString(6))
		})
	}
}

func TestAddOverflowSaturatesToInfinity(t *testing.T) {
	a := New()
	a.setMantissa(mantPosInf)
	a.exp = MaxExp
	b := New().SetInt(1)
	a.Add(b)
	require.True(t, a.isPosInfBits())
}

func TestSub(t *testing.T) {
	a := New().SetString("5")
	b := New().SetString("3.5")
	a.Sub(b)
	require.Equal(t, "1.50000e+000", a.ToString(6))
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"2 * 3", "2", "3", "6.00000e+000"},
		{"neg * pos", "-2", "3", "-6.00000e+000"},
		{"neg * neg", "-2", "-3", "6.00000e+000"},
		{"fractional", "0.5", "0.5", "2.50000e-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New().SetString(tt.a)
			b := New().SetString(tt.b)
			a.Mul(b)
			require.Equal(t, tt.want, a.ToString(6))
		})
	}
}

func TestDiv(t *testing.T) {
	a := New().SetString("355")
	b := New().SetString("113")
	a.Div(b)
	require.Equal(t, "3.14159e+000", a.ToString(6))
}

func TestDivByZeroPanics(t *testing.T) {
	a := New().SetInt(1)
	zero := New().SetInt(0)

	require.PanicsWithValue(t, &Error{Op: "div", Code: ErrDivideByZero, Msg: "division by zero"}, func() {
		a.Div(zero)
	})
}

func TestSqrt(t *testing.T) {
	f := New().SetInt(2)
	f.Sqrt()
	require.Equal(t, "1.4142e+000", f.ToString(5))
}

func TestSqrtOfZeroIsZero(t *testing.T) {
	f := New().SetInt(0)
	f.Sqrt()
	require.True(t, f.IsZero())
}

func TestSqrtOfNegativePanics(t *testing.T) {
	f := New().SetInt(-4)
	require.PanicsWithValue(t, &Error{Op: "sqrt", Code: ErrSqrtOfNegative, Msg: "square root of negative number"}, func() {
		f.Sqrt()
	})
}

func TestNegTwiceIsIdentity(t *testing.T) {
	f := New().SetString("1.25")
	var want Float
	want.Set(f)
	f.Neg()
	f.Neg()
	require.Equal(t, want.ToString(6), f.ToString(6))
}

func TestSentinelsAreIndependentCopies(t *testing.T) {
	a := PosInf()
	b := PosInf()
	a.SetInt(0)
	require.True(t, b.isPosInfBits(), "mutating one PosInf() copy must not affect another")
}

func TestAddCommutative(t *testing.T) {
	a := New().SetString("1.7")
	b := New().SetString("-3.2")

	var ab, ba Float
	ab.Set(a)
	ab.Add(b)
	ba.Set(b)
	ba.Add(a)

	require.Equal(t, ab.ToString(6), ba.ToString(6))
}
