package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntArithmetic(t *testing.T) {
	a := NewInt(7)
	b := NewInt(3)

	require.True(t, a.Add(b).Equal(NewInt(10)))
	require.True(t, a.Sub(b).Equal(NewInt(4)))
	require.True(t, a.GreaterOrEqual(b))
	require.False(t, b.GreaterOrEqual(a))
	require.Equal(t, 0, NewInt(0).Sign())
	require.Equal(t, 1, a.Sign())
	require.Equal(t, "7", a.String())
}

func TestFracCanonicalForm(t *testing.T) {
	a := NewFrac(2, 4)
	b := NewFrac(1, 2)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Key(), b.Key())
	require.Equal(t, "1/2", a.String())
}

func TestQuotientFrac(t *testing.T) {
	f := QuotientFrac(NewInt(1), NewInt(7))
	require.Equal(t, "1/7", f.String())
}

func TestQuotientFracDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		QuotientFrac(NewInt(1), NewInt(0))
	})
}

func TestFracFloorAndCeil(t *testing.T) {
	f := QuotientFrac(NewInt(7), NewInt(2)) // 3.5
	require.True(t, f.Floor().Equal(NewInt(3)))
	require.True(t, f.Ceil().Equal(NewInt(4)))

	exact := NewFrac(4, 2) // 2
	require.True(t, exact.Floor().Equal(NewInt(2)))
	require.True(t, exact.Ceil().Equal(NewInt(2)))
}

func TestFracMulIntAndDiv(t *testing.T) {
	tv := NewFrac(1, 3)
	weight := NewInt(9)
	require.True(t, tv.MulInt(weight).Equal(NewInt(3).Frac()))

	half := NewFrac(1, 2)
	require.True(t, half.Div(NewFrac(1, 4)).Equal(NewInt(2).Frac()))
}

func TestFracNumDen(t *testing.T) {
	f := NewFrac(6, 9) // reduces to 2/3
	require.True(t, f.Num().Equal(NewInt(2)))
	require.True(t, f.Den().Equal(NewInt(3)))
}
