package multiexparg

import (
	"math/big"
	"testing"

	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/stretchr/testify/require"
)

func testSetup(t *testing.T) (params.Public, group.ZqGroup) {
	t.Helper()
	gr, err := group.NewGqGroup(big.NewInt(23), big.NewInt(11), big.NewInt(6))
	require.NoError(t, err)
	zq := gr.ZqGroup()

	h, err := group.NewGqElement(gr, big.NewInt(2))
	require.NoError(t, err)
	g1, err := group.NewGqElement(gr, big.NewInt(3))
	require.NoError(t, err)
	g2, err := group.NewGqElement(gr, big.NewInt(4))
	require.NoError(t, err)
	ck, err := commitment.NewKey(h, []group.GqElement{g1, g2})
	require.NoError(t, err)

	pkElem, err := group.NewGqElement(gr, big.NewInt(8))
	require.NoError(t, err)
	pkVec, err := group.NewGqVector(gr, []group.GqElement{pkElem})
	require.NoError(t, err)
	pk, err := elgamal.NewPublicKey(pkVec)
	require.NoError(t, err)

	pp, err := params.New(gr, ck, pk)
	require.NoError(t, err)
	return pp, zq
}

func mkZq(t *testing.T, zq group.ZqGroup, v int64) group.ZqElement {
	t.Helper()
	e, err := group.NewZqElement(zq, big.NewInt(v))
	require.NoError(t, err)
	return e
}

func mkGq(t *testing.T, gr group.GqGroup, v int64) group.GqElement {
	t.Helper()
	e, err := group.NewGqElement(gr, big.NewInt(v))
	require.NoError(t, err)
	return e
}

// pool returns a generous FixedSampler: completeness only needs every drawn
// value to be a valid Zq element, not any particular value.
func pool(t *testing.T, zq group.ZqGroup, n int) *group.FixedSampler {
	t.Helper()
	elems := make([]group.ZqElement, n)
	for i := range elems {
		elems[i] = mkZq(t, zq, int64(2+i%8))
	}
	return &group.FixedSampler{Values: elems}
}

// buildScenario constructs a one-row (m=1) ciphertext matrix and a
// consistent witness/statement pair entirely through the library's own
// encryption and exponentiation primitives, so the target ciphertext is
// correct by construction rather than by hand arithmetic.
func buildScenario(t *testing.T, pp params.Public, zq group.ZqGroup) (Statement, Witness) {
	t.Helper()
	gr := pp.Group

	m1 := mkGq(t, gr, 9)
	m2 := mkGq(t, gr, 12)
	c11, err := elgamal.Encrypt([]group.GqElement{m1}, mkZq(t, zq, 3), pp.Pk)
	require.NoError(t, err)
	c12, err := elgamal.Encrypt([]group.GqElement{m2}, mkZq(t, zq, 4), pp.Pk)
	require.NoError(t, err)

	a1, a2 := mkZq(t, zq, 5), mkZq(t, zq, 6)
	aVec, err := group.NewZqVector(zq, []group.ZqElement{a1, a2})
	require.NoError(t, err)
	aMatrix, err := group.NewZqMatrixFromColumns(zq, [][]group.ZqElement{aVec.Slice()})
	require.NoError(t, err)

	rowExp, err := elgamal.GetCiphertextVectorExponentiation([]elgamal.Ciphertext{c11, c12}, aVec)
	require.NoError(t, err)
	rho := mkZq(t, zq, 7)
	blind, err := elgamal.EncryptNeutral(rho, pp.Pk)
	require.NoError(t, err)
	target, err := blind.Multiply(rowExp)
	require.NoError(t, err)

	r := mkZq(t, zq, 9)
	rVec, err := group.NewZqVector(zq, []group.ZqElement{r})
	require.NoError(t, err)
	cA, err := commitment.GetCommitmentMatrix(aMatrix, rVec, pp.Ck)
	require.NoError(t, err)

	st := Statement{CMatrix: [][]elgamal.Ciphertext{{c11, c12}}, C: target, CA: cA}
	w := Witness{A: aMatrix, R: rVec, Rho: rho}
	return st, w
}

func TestMultiExponentiationArgumentRoundTrip(t *testing.T) {
	pp, zq := testSetup(t)
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	st, w := buildScenario(t, pp, zq)
	sampler := pool(t, zq, 20)

	arg, err := Prove(pp, h, sampler, st, w)
	require.NoError(t, err)

	result, err := Verify(pp, h, st, arg)
	require.NoError(t, err)
	require.True(t, result.IsVerified(), result.Reason())
}

func TestMultiExponentiationArgumentRejectsWrongTarget(t *testing.T) {
	pp, zq := testSetup(t)
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	st, w := buildScenario(t, pp, zq)
	sampler := pool(t, zq, 20)

	arg, err := Prove(pp, h, sampler, st, w)
	require.NoError(t, err)

	wrongRho, err := elgamal.EncryptNeutral(mkZq(t, zq, 1), pp.Pk)
	require.NoError(t, err)
	tamperedC, err := wrongRho.Multiply(st.C)
	require.NoError(t, err)
	tamperedSt := Statement{CMatrix: st.CMatrix, C: tamperedC, CA: st.CA}

	result, err := Verify(pp, h, tamperedSt, arg)
	require.NoError(t, err)
	require.False(t, result.IsVerified())
}
