package commitment

import (
	"math/big"
	"testing"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/stretchr/testify/require"
)

func testGroup(t *testing.T) group.GqGroup {
	t.Helper()
	gr, err := group.NewGqGroup(big.NewInt(23), big.NewInt(11), big.NewInt(6))
	require.NoError(t, err)
	return gr
}

// TestGetCommitmentScenario reproduces: group (23,11,6); a=(2,10); r=5;
// ck=(h=2, g_1=3, g_2=4); expected com = 3.
func TestGetCommitmentScenario(t *testing.T) {
	gr := testGroup(t)
	zq := gr.ZqGroup()

	h, err := group.NewGqElement(gr, big.NewInt(2))
	require.NoError(t, err)
	g1, err := group.NewGqElement(gr, big.NewInt(3))
	require.NoError(t, err)
	g2, err := group.NewGqElement(gr, big.NewInt(4))
	require.NoError(t, err)
	ck, err := NewKey(h, []group.GqElement{g1, g2})
	require.NoError(t, err)

	a1, _ := group.NewZqElement(zq, big.NewInt(2))
	a2, _ := group.NewZqElement(zq, big.NewInt(10))
	a, err := group.NewZqVector(zq, []group.ZqElement{a1, a2})
	require.NoError(t, err)
	r, err := group.NewZqElement(zq, big.NewInt(5))
	require.NoError(t, err)

	com, err := GetCommitment(a, r, ck)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(3), com.Value())
}

func TestGetCommitmentRejectsOversizedVector(t *testing.T) {
	gr := testGroup(t)
	zq := gr.ZqGroup()
	h, _ := group.NewGqElement(gr, big.NewInt(2))
	g1, _ := group.NewGqElement(gr, big.NewInt(3))
	ck, err := NewKey(h, []group.GqElement{g1})
	require.NoError(t, err)

	a1, _ := group.NewZqElement(zq, big.NewInt(2))
	a2, _ := group.NewZqElement(zq, big.NewInt(10))
	a, _ := group.NewZqVector(zq, []group.ZqElement{a1, a2})
	r, _ := group.NewZqElement(zq, big.NewInt(5))

	_, err = GetCommitment(a, r, ck)
	require.Error(t, err)
}

func TestGetCommitmentTruncatesMissingIndices(t *testing.T) {
	gr := testGroup(t)
	zq := gr.ZqGroup()
	h, _ := group.NewGqElement(gr, big.NewInt(2))
	g1, _ := group.NewGqElement(gr, big.NewInt(3))
	g2, _ := group.NewGqElement(gr, big.NewInt(4))
	ck, err := NewKey(h, []group.GqElement{g1, g2})
	require.NoError(t, err)

	a1, _ := group.NewZqElement(zq, big.NewInt(2))
	a, _ := group.NewZqVector(zq, []group.ZqElement{a1})
	r, _ := group.NewZqElement(zq, big.NewInt(5))

	short, err := GetCommitment(a, r, ck)
	require.NoError(t, err)

	truncated, err := ck.Truncate(1)
	require.NoError(t, err)
	full, err := GetCommitment(a, r, truncated)
	require.NoError(t, err)
	require.True(t, short.Equals(full))
}

func TestGetCommitmentMatrix(t *testing.T) {
	gr := testGroup(t)
	zq := gr.ZqGroup()
	h, _ := group.NewGqElement(gr, big.NewInt(2))
	g1, _ := group.NewGqElement(gr, big.NewInt(3))
	g2, _ := group.NewGqElement(gr, big.NewInt(4))
	ck, err := NewKey(h, []group.GqElement{g1, g2})
	require.NoError(t, err)

	mk := func(v int64) group.ZqElement { e, _ := group.NewZqElement(zq, big.NewInt(v)); return e }
	a, err := group.NewZqMatrixFromColumns(zq, [][]group.ZqElement{
		{mk(2), mk(10)},
		{mk(1), mk(1)},
	})
	require.NoError(t, err)
	r, err := group.NewZqVector(zq, []group.ZqElement{mk(5), mk(0)})
	require.NoError(t, err)

	coms, err := GetCommitmentMatrix(a, r, ck)
	require.NoError(t, err)
	require.Equal(t, 2, coms.Len())

	col0, err := GetCommitment(a.GetColumn(0), r.Get(0), ck)
	require.NoError(t, err)
	require.True(t, coms.Get(0).Equals(col0))
}

// TestGenVerifiableCommitmentKeyIsDeterministic pins the structural
// properties the rejection-sampling loop must guarantee: same (k, group)
// always yields the same key, every element is a non-identity, non-generator
// group member, and the key has the requested size.
func TestGenVerifiableCommitmentKeyIsDeterministic(t *testing.T) {
	gr := testGroup(t)
	ck1, err := GenVerifiableCommitmentKey(3, gr)
	require.NoError(t, err)
	ck2, err := GenVerifiableCommitmentKey(3, gr)
	require.NoError(t, err)

	require.Equal(t, ck1.Size(), ck2.Size())
	require.True(t, ck1.H().Equals(ck2.H()))
	for i := 0; i < ck1.Size(); i++ {
		require.True(t, ck1.G(i).Equals(ck2.G(i)))
		require.True(t, gr.IsGroupMember(ck1.G(i).Value()))
		require.NotEqual(t, big.NewInt(1), ck1.G(i).Value())
		require.NotEqual(t, gr.G(), ck1.G(i).Value())
	}
}

func TestGenVerifiableCommitmentKeyRejectsOutOfRangeK(t *testing.T) {
	gr := testGroup(t)
	_, err := GenVerifiableCommitmentKey(0, gr)
	require.Error(t, err)
	_, err = GenVerifiableCommitmentKey(9, gr) // q-3 = 8
	require.Error(t, err)
}
