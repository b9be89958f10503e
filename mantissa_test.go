package softfloat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMantAddCarry(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int32
		want    int32
		wantOut int
	}{
		{"no carry", 1, 2, 3, 0},
		{"carries out of bit31", -1, 1, 0, 1},
		{"both negative", -2, -3, -5, 1},
		{"max positive plus one", 0x7FFFFFFF, 1, -0x80000000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f, g Float
			f.setMantissa(tt.a)
			g.setMantissa(tt.b)
			carry := f.mantAdd(&g)
			require.Equal(t, tt.want, f.mantissa())
			require.Equal(t, tt.wantOut, carry)
		})
	}
}

func TestMantNegRoundTrips(t *testing.T) {
	var f Float
	f.setMantissa(12345)
	f.mantNeg()
	require.Equal(t, int32(-12345), f.mantissa())
	f.mantNeg()
	require.Equal(t, int32(12345), f.mantissa())
}

func TestMantNegMaxNegativeIsFixedPoint(t *testing.T) {
	var f Float
	f.setMantissa(mantMaxNeg)
	f.mantNeg()
	require.Equal(t, mantMaxNeg, f.mantissa())
}

func TestMantSHL1ReportsOutgoingBit(t *testing.T) {
	var f Float
	f.setMantissa(int32(-1)) // all bits set
	out := f.mantSHL1()
	require.Equal(t, 1, out)
	require.Equal(t, int32(-2), f.mantissa())
}

func TestMantSHR1IsLogical(t *testing.T) {
	var f Float
	f.setMantissa(int32(-1)) // all bits set
	f.mantSHR1()
	require.Equal(t, int32(0x7FFFFFFF), f.mantissa())
}

func TestMantSRASaturatesBeyond31(t *testing.T) {
	var neg, pos Float
	neg.setMantissa(-5)
	out := neg.mantSRA(40)
	require.Equal(t, int32(-1), neg.mantissa())
	require.Equal(t, 1, out)

	pos.setMantissa(5)
	pos.mantSRA(40)
	require.Equal(t, int32(0), pos.mantissa())
}

func TestMantIsMaxNeg(t *testing.T) {
	var maxNeg, other Float
	maxNeg.setMantissa(mantMaxNeg)
	other.setMantissa(mantMaxNeg + 1)

	require.True(t, maxNeg.mantIsMaxNeg())
	require.False(t, other.mantIsMaxNeg())
}

func TestMantUCompare(t *testing.T) {
	var a, b Float
	a.setMantissa(1)
	b.setMantissa(-1) // 0xFFFFFFFF unsigned is much larger than 1
	require.Equal(t, -1, a.mantUCompare(&b))
	require.Equal(t, 1, b.mantUCompare(&a))
	require.Equal(t, 0, a.mantUCompare(&a))
}

func TestMantLongUmultSmallValues(t *testing.T) {
	var a, b Float
	a.setMantissa(6)
	b.setMantissa(7)
	a.mantLongUmult(&b)
	product := uint64(uint32(a.mantissa()))<<32 | uint64(uint32(b.mantissa()))
	require.Equal(t, uint64(42), product)
}
