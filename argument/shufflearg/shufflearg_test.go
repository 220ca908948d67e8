package shufflearg

import (
	"math/big"
	"testing"

	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/shuffleop"
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
	g3, err := group.NewGqElement(gr, big.NewInt(9))
	require.NoError(t, err)
	g4, err := group.NewGqElement(gr, big.NewInt(13))
	require.NoError(t, err)
	g5, err := group.NewGqElement(gr, big.NewInt(16))
	require.NoError(t, err)
	ck, err := commitment.NewKey(h, []group.GqElement{g1, g2, g3, g4, g5})
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

// buildScenario draws an honest shuffle of two ciphertexts and wraps it as
// a Statement/Witness pair.
func buildScenario(t *testing.T, pp params.Public, zq group.ZqGroup) (Statement, Witness) {
	t.Helper()
	gr := pp.Group
	c1, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, 9)}, mkZq(t, zq, 3), pp.Pk)
	require.NoError(t, err)
	c2, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, 12)}, mkZq(t, zq, 4), pp.Pk)
	require.NoError(t, err)

	result, err := shuffleop.Shuffle(zq, pool(t, zq, 10), pp.Pk, []elgamal.Ciphertext{c1, c2})
	require.NoError(t, err)

	st, err := NewStatement([]elgamal.Ciphertext{c1, c2}, result.Shuffled)
	require.NoError(t, err)
	return st, Witness{Perm: result.Perm, Rho: result.Rho}
}

func TestShuffleArgumentRoundTrip(t *testing.T) {
	pp, zq := testSetup(t)
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	st, w := buildScenario(t, pp, zq)
	sampler := pool(t, zq, 120)

	arg, err := Prove(pp, h, sampler, st, w)
	require.NoError(t, err)

	result, err := Verify(pp, h, st, arg)
	require.NoError(t, err)
	require.True(t, result.IsVerified(), result.Reason())
}

func TestShuffleArgumentRejectsTamperedCA(t *testing.T) {
	pp, zq := testSetup(t)
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	st, w := buildScenario(t, pp, zq)
	sampler := pool(t, zq, 120)

	arg, err := Prove(pp, h, sampler, st, w)
	require.NoError(t, err)

	// Flip c_A[0] by folding in a nontrivial group element, simulating a
	// single corrupted byte in its serialized form.
	tampered := arg.CA.Get(0)
	bump, err := group.NewGqElement(pp.Group, big.NewInt(3))
	require.NoError(t, err)
	tampered, err = tampered.Multiply(bump)
	require.NoError(t, err)
	caElems := arg.CA.Slice()
	caElems[0] = tampered
	tamperedCA, err := group.NewGqVector(pp.Group, caElems)
	require.NoError(t, err)
	tamperedArg := Argument{CA: tamperedCA, CB: arg.CB, Product: arg.Product, MultiExp: arg.MultiExp}

	result, err := Verify(pp, h, st, tamperedArg)
	require.NoError(t, err)
	require.False(t, result.IsVerified())
}

func TestNewStatementDimensionMismatch(t *testing.T) {
	pp, zq := testSetup(t)
	gr := pp.Group

	c := make([]elgamal.Ciphertext, 5)
	cPrime5 := make([]elgamal.Ciphertext, 5)
	cPrime6 := make([]elgamal.Ciphertext, 6)
	for i := range c {
		enc, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, 9)}, mkZq(t, zq, int64(3+i)), pp.Pk)
		require.NoError(t, err)
		c[i] = enc
		cPrime5[i] = enc
	}
	for i := range cPrime6 {
		enc, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, 9)}, mkZq(t, zq, int64(3+i)), pp.Pk)
		require.NoError(t, err)
		cPrime6[i] = enc
	}

	_, err := NewStatement(c, cPrime5)
	require.NoError(t, err)

	_, err = NewStatement(c, cPrime6)
	require.Error(t, err)
	require.Contains(t, err.Error(), "same size")
}

// TestShuffleArgumentRoundTripOddSize exercises N=5, which matrixutil's
// dimension search can only factor as 1x5, i.e. the bare-SVPA path through
// the product sub-argument rather than the composed Hadamard+SVPA path.
func TestShuffleArgumentRoundTripOddSize(t *testing.T) {
	pp, zq := testSetup(t)
	gr := pp.Group
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	plaintexts := []int64{9, 12, 13, 16, 3}
	c := make([]elgamal.Ciphertext, len(plaintexts))
	for i, m := range plaintexts {
		enc, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, m)}, mkZq(t, zq, int64(3+i)), pp.Pk)
		require.NoError(t, err)
		c[i] = enc
	}

	sampler := pool(t, zq, 200)
	result, err := shuffleop.Shuffle(zq, sampler, pp.Pk, c)
	require.NoError(t, err)

	st, err := NewStatement(c, result.Shuffled)
	require.NoError(t, err)
	w := Witness{Perm: result.Perm, Rho: result.Rho}

	arg, err := Prove(pp, h, sampler, st, w)
	require.NoError(t, err)

	verifyResult, err := Verify(pp, h, st, arg)
	require.NoError(t, err)
	require.True(t, verifyResult.IsVerified(), verifyResult.Reason())
}
