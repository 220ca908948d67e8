// Package shuffleop performs the actual mix: permuting and rerandomizing a
// vector of ElGamal ciphertexts. ShuffleArg proves, after the fact, that a
// shuffled vector produced by this package (or anything agreeing with it) is
// related to the input the way this package guarantees.
package shuffleop

import (
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/permutation"
)

// Result bundles the witness a shuffle's proof is built from alongside the
// shuffled ciphertexts themselves.
type Result struct {
	Shuffled []elgamal.Ciphertext
	Perm     permutation.Permutation
	Rho      group.ZqVector // length N, indexed like the input ciphertexts
}

// Shuffle draws a uniform permutation pi on {0,...,N-1} and a uniform
// rerandomization scalar rho_k per input ciphertext, and outputs
// C'_i = E(1; rho_{pi^-1(i)}) * C_{pi^-1(i)}: the ciphertext originally at
// the index that maps to i, rerandomized under that index's scalar.
func Shuffle(zq group.ZqGroup, sampler group.Sampler, pk elgamal.PublicKey, ciphertexts []elgamal.Ciphertext) (Result, error) {
	n := len(ciphertexts)
	if n == 0 {
		return Result{}, group.InvalidArgument("shuffle input must be non-empty")
	}

	perm, err := permutation.Random(n)
	if err != nil {
		return Result{}, err
	}

	rhoElems := make([]group.ZqElement, n)
	for k := range rhoElems {
		v, err := sampler.Next(zq)
		if err != nil {
			return Result{}, err
		}
		rhoElems[k] = v
	}
	rho, err := group.NewZqVector(zq, rhoElems)
	if err != nil {
		return Result{}, err
	}

	inv := perm.Inverse()
	shuffled := make([]elgamal.Ciphertext, n)
	for i := 0; i < n; i++ {
		k := inv.At(i)
		c, err := ciphertexts[k].Rerandomize(rho.Get(k), pk)
		if err != nil {
			return Result{}, err
		}
		shuffled[i] = c
	}

	return Result{Shuffled: shuffled, Perm: perm, Rho: rho}, nil
}
