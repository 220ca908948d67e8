// Package mixnet wires the shuffle primitive (shuffleop) to its proof
// (shufflearg) into the single entry point most callers need: produce a
// shuffled ciphertext vector together with a proof that it really is a
// shuffle of the input, and verify that bundle later without the witness.
package mixnet

import (
	"github.com/Cipheritall/crypto-primitives-sub001/argument/params"
	"github.com/Cipheritall/crypto-primitives-sub001/argument/shufflearg"
	"github.com/Cipheritall/crypto-primitives-sub001/elgamal"
	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/shuffleop"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
	"github.com/Cipheritall/crypto-primitives-sub001/verification"
)

// VerifiableShuffle bundles a shuffled ciphertext vector with the argument
// proving it was produced honestly from its input.
type VerifiableShuffle struct {
	Shuffled []elgamal.Ciphertext `json:"shuffledCiphertexts"`
	Argument shufflearg.Argument  `json:"shuffleArgument"`
}

// Shuffle draws a fresh permutation and rerandomization, applies it to
// ciphertexts, and proves the result is related to the input the way
// shuffleop.Shuffle guarantees.
func Shuffle(pp params.Public, h transcript.HashTranscript, sampler group.Sampler, ciphertexts []elgamal.Ciphertext) (VerifiableShuffle, error) {
	zq := pp.Group.ZqGroup()
	result, err := shuffleop.Shuffle(zq, sampler, pp.Pk, ciphertexts)
	if err != nil {
		return VerifiableShuffle{}, err
	}

	st, err := shufflearg.NewStatement(ciphertexts, result.Shuffled)
	if err != nil {
		return VerifiableShuffle{}, err
	}
	w := shufflearg.Witness{Perm: result.Perm, Rho: result.Rho}

	arg, err := shufflearg.Prove(pp, h, sampler, st, w)
	if err != nil {
		return VerifiableShuffle{}, err
	}

	return VerifiableShuffle{Shuffled: result.Shuffled, Argument: arg}, nil
}

// VerifyShuffle checks that vs.Shuffled is a shuffle of the given input
// ciphertexts, per vs.Argument.
func VerifyShuffle(pp params.Public, h transcript.HashTranscript, input []elgamal.Ciphertext, vs VerifiableShuffle) (verification.Result, error) {
	st, err := shufflearg.NewStatement(input, vs.Shuffled)
	if err != nil {
		return verification.Result{}, err
	}
	return shufflearg.Verify(pp, h, st, vs.Argument)
}
