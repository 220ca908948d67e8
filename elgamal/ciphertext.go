// Package elgamal implements the algebra of multi-recipient ElGamal
// ciphertexts over a GqGroup: componentwise multiplication, exponentiation,
// the neutral element, and rerandomization, plus encryption under a given
// public key. Key generation and decryption are treated as an external
// collaborator's concern and are not provided here.
package elgamal

import (
	"encoding/json"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// Ciphertext is a multi-recipient ElGamal ciphertext (gamma, phi_1, ...,
// phi_l): l+1 elements of a single GqGroup. l is the ciphertext's width.
type Ciphertext struct {
	gamma group.GqElement
	phis  group.GqVector
}

// NewCiphertext validates that gamma and every element of phis share a
// group and wraps them as a Ciphertext of width phis.Len().
func NewCiphertext(gamma group.GqElement, phis group.GqVector) (Ciphertext, error) {
	if !gamma.Group().Equals(phis.Group()) {
		return Ciphertext{}, group.InvalidArgument("gamma and phis belong to different Gq groups")
	}
	return Ciphertext{gamma: gamma, phis: phis}, nil
}

// Group returns the common GqGroup of this ciphertext.
func (c Ciphertext) Group() group.GqGroup { return c.gamma.Group() }

// MarshalJSON encodes the ciphertext as its (gamma, phis) pair.
func (c Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Gamma group.GqElement `json:"gamma"`
		Phis  group.GqVector  `json:"phis"`
	}{Gamma: c.gamma, Phis: c.phis})
}

// Width returns l, the number of phi components.
func (c Ciphertext) Width() int { return c.phis.Len() }

// Gamma returns the gamma component.
func (c Ciphertext) Gamma() group.GqElement { return c.gamma }

// Phi returns the i-th phi component (0-indexed).
func (c Ciphertext) Phi(i int) group.GqElement { return c.phis.Get(i) }

// Phis returns all phi components as a GqVector.
func (c Ciphertext) Phis() group.GqVector { return c.phis }

// Neutral returns the neutral ciphertext (1, 1, ..., 1) of the given width
// in group gr.
func Neutral(gr group.GqGroup, width int) Ciphertext {
	id := gr.Identity()
	phis := make([]group.GqElement, width)
	for i := range phis {
		phis[i] = id
	}
	v, _ := group.NewGqVector(gr, phis)
	return Ciphertext{gamma: id, phis: v}
}

func (c Ciphertext) requireCompatible(other Ciphertext) error {
	if !c.Group().Equals(other.Group()) {
		return group.InvalidArgument("ciphertexts belong to different Gq groups")
	}
	if c.Width() != other.Width() {
		return group.InvalidArgument("ciphertext width mismatch: %d vs %d", c.Width(), other.Width())
	}
	return nil
}

// Multiply returns the componentwise product of c and other.
func (c Ciphertext) Multiply(other Ciphertext) (Ciphertext, error) {
	if err := c.requireCompatible(other); err != nil {
		return Ciphertext{}, err
	}
	gamma, err := c.gamma.Multiply(other.gamma)
	if err != nil {
		return Ciphertext{}, err
	}
	phis, err := c.phis.Multiply(other.phis)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{gamma: gamma, phis: phis}, nil
}

// Exponentiate raises every component of c to exponent.
func (c Ciphertext) Exponentiate(exponent group.ZqElement) (Ciphertext, error) {
	gamma, err := c.gamma.Exponentiate(exponent)
	if err != nil {
		return Ciphertext{}, err
	}
	phis, err := c.phis.ExponentiateAll(exponent)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{gamma: gamma, phis: phis}, nil
}

// GetCiphertextVectorExponentiation computes prod_i ciphertexts[i]^{exponents[i]},
// the multi-exponentiation map used throughout the MultiExpArg and
// ShuffleArg. All ciphertexts must share a group and width.
func GetCiphertextVectorExponentiation(ciphertexts []Ciphertext, exponents group.ZqVector) (Ciphertext, error) {
	if len(ciphertexts) != exponents.Len() {
		return Ciphertext{}, group.InvalidArgument(
			"ciphertexts/exponents length mismatch: %d vs %d", len(ciphertexts), exponents.Len())
	}
	if len(ciphertexts) == 0 {
		return Ciphertext{}, group.InvalidArgument("cannot exponentiate an empty ciphertext vector")
	}
	gr := ciphertexts[0].Group()
	width := ciphertexts[0].Width()
	acc := Neutral(gr, width)
	for i, c := range ciphertexts {
		if err := acc.requireCompatible(c); err != nil {
			return Ciphertext{}, err
		}
		term, err := c.Exponentiate(exponents.Get(i))
		if err != nil {
			return Ciphertext{}, err
		}
		acc, err = acc.Multiply(term)
		if err != nil {
			return Ciphertext{}, err
		}
	}
	return acc, nil
}

// Rerandomize returns c * EncryptNeutral(rho, pk): the ciphertext c blinded
// by a fresh encryption of the plaintext-neutral message under randomness
// rho. This is the operation ShuffleOp applies to every input ciphertext.
func (c Ciphertext) Rerandomize(rho group.ZqElement, pk PublicKey) (Ciphertext, error) {
	blind, err := EncryptNeutral(rho, pk)
	if err != nil {
		return Ciphertext{}, err
	}
	return c.Multiply(blind)
}
