// Package commitment implements the Pedersen-style commitment primitive used
// as the building block of every argument in this module: com(a, r; ck) =
// h^r * prod g_i^{a_i}.
package commitment

import (
	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// Key is a commitment key ck = (h, g_1, ..., g_k): k+1 non-identity,
// non-generator elements of a GqGroup, all sharing h's group.
type Key struct {
	h  group.GqElement
	gs []group.GqElement
}

// NewKey validates and wraps (h, gs) as a commitment key.
func NewKey(h group.GqElement, gs []group.GqElement) (Key, error) {
	gr := h.Group()
	for i, g := range gs {
		if !g.Group().Equals(gr) {
			return Key{}, group.InvalidArgument("g_%d belongs to a different group than h", i+1)
		}
	}
	cp := make([]group.GqElement, len(gs))
	copy(cp, gs)
	return Key{h: h, gs: cp}, nil
}

// Group returns the GqGroup this key's elements belong to.
func (k Key) Group() group.GqGroup { return k.h.Group() }

// Size returns k, the number of g_i elements (excluding h).
func (k Key) Size() int { return len(k.gs) }

// H returns the h component.
func (k Key) H() group.GqElement { return k.h }

// G returns the i-th g component (0-indexed).
func (k Key) G(i int) group.GqElement { return k.gs[i] }

// Truncate returns a new key keeping only the first n g components.
func (k Key) Truncate(n int) (Key, error) {
	if n < 0 || n > len(k.gs) {
		return Key{}, group.InvalidArgument("cannot truncate key of size %d to %d", len(k.gs), n)
	}
	return NewKey(k.h, k.gs[:n])
}

// GetCommitment computes com(a, r; ck) = h^r * prod_i g_i^{a_i}. It fails
// when |a| > |ck|-1, when a and r live in different Zq groups, or when ck's
// Gq group order differs from a's Zq group order. When |a| < k, missing
// indices are treated as zero exponent (equivalent to truncating ck).
func GetCommitment(a group.ZqVector, r group.ZqElement, ck Key) (group.GqElement, error) {
	if a.Len() > ck.Size() {
		return group.GqElement{}, group.InvalidArgument(
			"commitment vector of length %d exceeds key capacity %d", a.Len(), ck.Size())
	}
	if !a.Group().Equals(r.Group()) {
		return group.GqElement{}, group.InvalidArgument("a and r belong to different Zq groups")
	}
	if !a.Group().Equals(ck.Group().ZqGroup()) {
		return group.GqElement{}, group.InvalidArgument("ck's Gq group order does not match a's Zq group order")
	}

	acc, err := ck.h.Exponentiate(r)
	if err != nil {
		return group.GqElement{}, err
	}
	for i := 0; i < a.Len(); i++ {
		term, err := ck.gs[i].Exponentiate(a.Get(i))
		if err != nil {
			return group.GqElement{}, err
		}
		acc, err = acc.Multiply(term)
		if err != nil {
			return group.GqElement{}, err
		}
	}
	return acc, nil
}

// GetCommitmentMatrix computes the column-wise commitment of A: the j-th
// output element is GetCommitment(A's j-th column, r_j, ck). |r| must equal
// the number of columns of A.
func GetCommitmentMatrix(a group.ZqMatrix, r group.ZqVector, ck Key) (group.GqVector, error) {
	if a.NumColumns() != r.Len() {
		return group.GqVector{}, group.InvalidArgument(
			"matrix has %d columns but %d randomness values were supplied", a.NumColumns(), r.Len())
	}
	out := make([]group.GqElement, a.NumColumns())
	for j := 0; j < a.NumColumns(); j++ {
		c, err := GetCommitment(a.GetColumn(j), r.Get(j), ck)
		if err != nil {
			return group.GqVector{}, err
		}
		out[j] = c
	}
	return group.NewGqVector(ck.Group(), out)
}
