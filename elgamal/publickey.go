package elgamal

import "github.com/Cipheritall/crypto-primitives-sub001/group"

// PublicKey is pk = (pk_1, ..., pk_k): k non-identity elements of a GqGroup,
// one per ciphertext recipient slot. Key generation itself is an external
// collaborator's concern; this type only carries the public material the
// ciphertext algebra needs.
type PublicKey struct {
	elements group.GqVector
}

// NewPublicKey wraps elements as a PublicKey, rejecting any identity
// component.
func NewPublicKey(elements group.GqVector) (PublicKey, error) {
	id := elements.Group().Identity()
	for i := 0; i < elements.Len(); i++ {
		if elements.Get(i).Equals(id) {
			return PublicKey{}, group.InvalidArgument("public key element %d is the identity", i)
		}
	}
	return PublicKey{elements: elements}, nil
}

// Group returns the GqGroup of this public key.
func (pk PublicKey) Group() group.GqGroup { return pk.elements.Group() }

// Size returns k, the number of recipient slots.
func (pk PublicKey) Size() int { return pk.elements.Len() }

// Element returns the i-th public key component (0-indexed).
func (pk PublicKey) Element(i int) group.GqElement { return pk.elements.Get(i) }

// Encrypt computes E(messages; rho) = (g^rho, pk_1^rho*m_1, ..., pk_l^rho*m_l)
// for the first l=len(messages) recipient slots of pk.
func Encrypt(messages []group.GqElement, rho group.ZqElement, pk PublicKey) (Ciphertext, error) {
	if len(messages) > pk.Size() {
		return Ciphertext{}, group.InvalidArgument(
			"message width %d exceeds public key capacity %d", len(messages), pk.Size())
	}
	gr := pk.Group()
	gamma, err := gr.GeneratorElement().Exponentiate(rho)
	if err != nil {
		return Ciphertext{}, err
	}
	phis := make([]group.GqElement, len(messages))
	for i, m := range messages {
		if !m.Group().Equals(gr) {
			return Ciphertext{}, group.InvalidArgument("message %d belongs to a different Gq group", i)
		}
		blind, err := pk.Element(i).Exponentiate(rho)
		if err != nil {
			return Ciphertext{}, err
		}
		phi, err := blind.Multiply(m)
		if err != nil {
			return Ciphertext{}, err
		}
		phis[i] = phi
	}
	phiVec, err := group.NewGqVector(gr, phis)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{gamma: gamma, phis: phiVec}, nil
}

// EncryptNeutral computes E(1, ..., 1; rho) under the whole of pk, i.e. the
// encryption of the all-ones plaintext vector. This is the blinding
// ciphertext ShuffleOp and MultiExpArg multiply into the product.
func EncryptNeutral(rho group.ZqElement, pk PublicKey) (Ciphertext, error) {
	gr := pk.Group()
	ones := make([]group.GqElement, pk.Size())
	for i := range ones {
		ones[i] = gr.Identity()
	}
	return Encrypt(ones, rho, pk)
}
