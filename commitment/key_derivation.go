package commitment

import (
	"crypto/sha256"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
	"github.com/Cipheritall/crypto-primitives-sub001/transcript"
)

// commitmentKeyDomainTag is hashed into every candidate to domain-separate
// this derivation from other uses of SHA-256 within the module.
const commitmentKeyDomainTag = "commitmentKey"

// GenVerifiableCommitmentKey deterministically derives ck = (h, g_1, ..., g_k)
// for the given group via rejection sampling: each candidate hashes
// (p, q, g, "commitmentKey", counter), reduces mod p, and is accepted the
// first time it is non-identity, non-generator and a member of the
// order-q subgroup. Valid range for k is 1 <= k <= q-3.
func GenVerifiableCommitmentKey(k int, gr group.GqGroup) (Key, error) {
	qMinus3 := new(big.Int).Sub(gr.Q(), big.NewInt(3))
	if k < 1 || big.NewInt(int64(k)).Cmp(qMinus3) > 0 {
		return Key{}, group.InvalidArgument("k must be in [1, q-3], got k=%d", k)
	}

	elements := make([]group.GqElement, 0, k+1)
	counter := int64(0)
	for len(elements) < k+1 {
		candidate := hashToCandidate(gr, counter)
		counter++
		if candidate.Sign() == 0 {
			continue
		}
		if candidate.Cmp(big.NewInt(1)) == 0 {
			continue // identity
		}
		if candidate.Cmp(gr.G()) == 0 {
			continue // canonical generator
		}
		if !gr.IsGroupMember(candidate) {
			continue
		}
		elem, err := group.NewGqElement(gr, candidate)
		if err != nil {
			continue
		}
		elements = append(elements, elem)
	}

	return NewKey(elements[0], elements[1:])
}

// hashToCandidate computes SHA-256(encode(p) || encode(q) || encode(g) ||
// encode("commitmentKey") || encode(counter)) and reduces it modulo p.
func hashToCandidate(gr group.GqGroup, counter int64) *big.Int {
	h := sha256.New()
	values := []transcript.Hashable{
		transcript.NewInt(gr.P()),
		transcript.NewInt(gr.Q()),
		transcript.NewInt(gr.G()),
		transcript.Bytes(commitmentKeyDomainTag),
		transcript.NewInt(big.NewInt(counter)),
	}
	for _, v := range values {
		_, _ = h.Write(transcript.Encode(v))
	}
	digest := h.Sum(nil)
	n := new(big.Int).SetBytes(digest)
	n.Mod(n, gr.P())
	return n
}
