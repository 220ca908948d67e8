package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// testGroup returns the tiny group p=23, q=11, g=6 used throughout the
// package's scenario tests.
func testGroup(t *testing.T) GqGroup {
	t.Helper()
	gr, err := NewGqGroup(big.NewInt(23), big.NewInt(11), big.NewInt(6))
	require.NoError(t, err)
	return gr
}

func TestNewGqGroupRejectsBadGenerator(t *testing.T) {
	_, err := NewGqGroup(big.NewInt(23), big.NewInt(11), big.NewInt(5))
	require.Error(t, err)
}

func TestNewGqGroupRejectsMismatchedPQ(t *testing.T) {
	_, err := NewGqGroup(big.NewInt(23), big.NewInt(7), big.NewInt(6))
	require.Error(t, err)
}

func TestGqElementMultiplyRequiresSameGroup(t *testing.T) {
	gr1 := testGroup(t)
	gr2, err := NewGqGroup(big.NewInt(167), big.NewInt(83), big.NewInt(2))
	require.NoError(t, err)

	a, err := NewGqElement(gr1, big.NewInt(6))
	require.NoError(t, err)
	b, err := NewGqElement(gr2, big.NewInt(2))
	require.NoError(t, err)

	_, err = a.Multiply(b)
	require.Error(t, err)
}

func TestGqElementExponentiate(t *testing.T) {
	gr := testGroup(t)
	base, err := NewGqElement(gr, big.NewInt(6))
	require.NoError(t, err)
	exp, err := NewZqElement(gr.ZqGroup(), big.NewInt(3))
	require.NoError(t, err)

	got, err := base.Exponentiate(exp)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(9), got.Value()) // 6^3 mod 23 == 9
}

func TestGqVectorMultiExponentiate(t *testing.T) {
	gr := testGroup(t)
	zq := gr.ZqGroup()

	g1, _ := NewGqElement(gr, big.NewInt(3))
	g2, _ := NewGqElement(gr, big.NewInt(4))
	vec, err := NewGqVector(gr, []GqElement{g1, g2})
	require.NoError(t, err)

	e1, _ := NewZqElement(zq, big.NewInt(2))
	e2, _ := NewZqElement(zq, big.NewInt(10))
	exps, err := NewZqVector(zq, []ZqElement{e1, e2})
	require.NoError(t, err)

	got, err := vec.MultiExponentiate(exps)
	require.NoError(t, err)
	// 3^2 * 4^10 mod 23 == com(a;0) part of the commitment package's
	// a=(2,10) scenario
	want := new(big.Int).Mod(new(big.Int).Mul(
		new(big.Int).Exp(big.NewInt(3), big.NewInt(2), big.NewInt(23)),
		new(big.Int).Exp(big.NewInt(4), big.NewInt(10), big.NewInt(23)),
	), big.NewInt(23))
	require.Equal(t, want, got.Value())
}

func TestZqElementNewRejectsOutOfRange(t *testing.T) {
	zq, err := NewZqGroup(big.NewInt(11))
	require.NoError(t, err)
	_, err = NewZqElement(zq, big.NewInt(11))
	require.Error(t, err)
	_, err = NewZqElement(zq, big.NewInt(-1))
	require.Error(t, err)
}

func TestZqMatrixRowColumnRoundTrip(t *testing.T) {
	zq, err := NewZqGroup(big.NewInt(11))
	require.NoError(t, err)
	mk := func(v int64) ZqElement { e, _ := NewZqElement(zq, big.NewInt(v)); return e }

	m, err := NewZqMatrixFromRows(zq, [][]ZqElement{
		{mk(1), mk(2), mk(3)},
		{mk(4), mk(5), mk(6)},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.NumRows())
	require.Equal(t, 3, m.NumColumns())
	require.True(t, m.GetColumn(1).Get(0).Equals(mk(2)))
	require.True(t, m.GetColumn(1).Get(1).Equals(mk(5)))
}
