package elgamal

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

func testPublicKey(t *testing.T, gr group.GqGroup, width int) PublicKey {
	t.Helper()
	elems := make([]group.GqElement, width)
	// small group members of order-11 subgroup generated by 6 mod 23:
	// {1,6,13,9,8,2,12,3,18,16,4}
	members := []int64{6, 13, 9}
	for i := 0; i < width; i++ {
		e, err := group.NewGqElement(gr, big.NewInt(members[i%len(members)]))
		require.NoError(t, err)
		elems[i] = e
	}
	vec, err := group.NewGqVector(gr, elems)
	require.NoError(t, err)
	pk, err := NewPublicKey(vec)
	require.NoError(t, err)
	return pk
}

func TestNeutralIsMultiplicativeIdentity(t *testing.T) {
	gr := testGroup(t)
	pk := testPublicKey(t, gr, 2)
	zq := gr.ZqGroup()
	rho, _ := group.NewZqElement(zq, big.NewInt(3))

	c, err := EncryptNeutral(rho, pk)
	require.NoError(t, err)

	neutral := Neutral(gr, 2)
	product, err := c.Multiply(neutral)
	require.NoError(t, err)
	require.True(t, product.Gamma().Equals(c.Gamma()))
}

func TestExponentiateThenMultiplyMatchesMultiExponentiation(t *testing.T) {
	gr := testGroup(t)
	pk := testPublicKey(t, gr, 2)
	zq := gr.ZqGroup()

	rho1, _ := group.NewZqElement(zq, big.NewInt(2))
	rho2, _ := group.NewZqElement(zq, big.NewInt(4))
	c1, err := EncryptNeutral(rho1, pk)
	require.NoError(t, err)
	c2, err := EncryptNeutral(rho2, pk)
	require.NoError(t, err)

	e1, _ := group.NewZqElement(zq, big.NewInt(5))
	e2, _ := group.NewZqElement(zq, big.NewInt(7))
	exps, err := group.NewZqVector(zq, []group.ZqElement{e1, e2})
	require.NoError(t, err)

	got, err := GetCiphertextVectorExponentiation([]Ciphertext{c1, c2}, exps)
	require.NoError(t, err)

	t1, err := c1.Exponentiate(e1)
	require.NoError(t, err)
	t2, err := c2.Exponentiate(e2)
	require.NoError(t, err)
	want, err := t1.Multiply(t2)
	require.NoError(t, err)

	require.True(t, got.Gamma().Equals(want.Gamma()))
}

func TestRerandomizePreservesWidth(t *testing.T) {
	gr := testGroup(t)
	pk := testPublicKey(t, gr, 2)
	zq := gr.ZqGroup()
	rho, _ := group.NewZqElement(zq, big.NewInt(1))

	c := Neutral(gr, 2)
	out, err := c.Rerandomize(rho, pk)
	require.NoError(t, err)
	require.Equal(t, 2, out.Width())
}
