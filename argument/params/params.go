// Package params carries the public parameters every argument in the nested
// shuffle composition hashes into its Fiat-Shamir challenge: the group, the
// commitment key, and the ElGamal public key. Leaf arguments that do not
// algebraically need pk still fold it into the transcript so that a single
// proof's challenges are bound to the whole statement, not just the slice of
// it any one sub-argument touches.
package params

import (
	"github.com/Cipheritall/crypto-primitives-sub001/commitment"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// Public bundles the group, commitment key and public key shared read-only
// across a proof's sub-arguments.
type Public struct {
	Group group.GqGroup
	Ck    commitment.Key
	Pk    elgamal.PublicKey
}

// New validates that ck and pk belong to Group and wraps them.
func New(gr group.GqGroup, ck commitment.Key, pk elgamal.PublicKey) (Public, error) {
	if !ck.Group().Equals(gr) {
		return Public{}, group.InvalidArgument("commitment key belongs to a different Gq group")
	}
	if !pk.Group().Equals(gr) {
		return Public{}, group.InvalidArgument("public key belongs to a different Gq group")
	}
	return Public{Group: gr, Ck: ck, Pk: pk}, nil
}
