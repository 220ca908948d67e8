package mixnet

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
	g3, err := group.NewGqElement(gr, big.NewInt(9))
	require.NoError(t, err)
	ck, err := commitment.NewKey(h, []group.GqElement{g1, g2, g3})
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

func pool(t *testing.T, zq group.ZqGroup, n int) *group.FixedSampler {
	t.Helper()
	elems := make([]group.ZqElement, n)
	for i := range elems {
		elems[i] = mkZq(t, zq, int64(2+i%8))
	}
	return &group.FixedSampler{Values: elems}
}

func TestShuffleThenVerifyAccepts(t *testing.T) {
	pp, zq := testSetup(t)
	gr := pp.Group
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	plaintexts := []int64{9, 12, 13}
	input := make([]elgamal.Ciphertext, len(plaintexts))
	for i, m := range plaintexts {
		c, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, m)}, mkZq(t, zq, int64(3+i)), pp.Pk)
		require.NoError(t, err)
		input[i] = c
	}

	sampler := pool(t, zq, 200)
	vs, err := Shuffle(pp, h, sampler, input)
	require.NoError(t, err)
	require.Len(t, vs.Shuffled, len(input))

	result, err := VerifyShuffle(pp, h, input, vs)
	require.NoError(t, err)
	require.True(t, result.IsVerified(), result.Reason())
}

func TestVerifyShuffleRejectsWrongInput(t *testing.T) {
	pp, zq := testSetup(t)
	gr := pp.Group
	h, err := transcript.NewTestService(zq, big.NewInt(1), big.NewInt(11))
	require.NoError(t, err)

	plaintexts := []int64{9, 12, 13}
	input := make([]elgamal.Ciphertext, len(plaintexts))
	for i, m := range plaintexts {
		c, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, m)}, mkZq(t, zq, int64(3+i)), pp.Pk)
		require.NoError(t, err)
		input[i] = c
	}

	sampler := pool(t, zq, 200)
	vs, err := Shuffle(pp, h, sampler, input)
	require.NoError(t, err)

	forged, err := elgamal.Encrypt([]group.GqElement{mkGq(t, gr, 2)}, mkZq(t, zq, 7), pp.Pk)
	require.NoError(t, err)
	wrongInput := append([]elgamal.Ciphertext{}, input...)
	wrongInput[0] = forged

	result, err := VerifyShuffle(pp, h, wrongInput, vs)
	require.NoError(t, err)
	require.False(t, result.IsVerified())
}
