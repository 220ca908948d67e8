// Package transcript implements the recursive, domain-separated hash
// service used as this module's Fiat-Shamir transform. Every challenge the
// provers and verifiers derive is produced by hashing a canonically encoded
// transcript of typed values with HashTranscript.Recompute.
package transcript

import "math/big"

// tag bytes distinguish the three Hashable shapes in the encoded byte
// stream; they must never collide across implementations.
const (
	tagBytes byte = 0x00
	tagInt   byte = 0x01
	tagList  byte = 0x02
)

// Hashable is the capability-set sum type fed to the hash service: a value
// hashes itself either as raw bytes, as a signed integer, or as an ordered
// list of further Hashables.
type Hashable interface {
	encode() []byte
}

// Bytes wraps a raw byte string as a Hashable leaf.
type Bytes []byte

func (b Bytes) encode() []byte {
	out := make([]byte, 0, len(b)+1)
	out = append(out, tagBytes)
	out = append(out, b...)
	return out
}

// Int wraps a *big.Int as a Hashable leaf, encoded as signed big-endian
// two's complement with no leading sign-extension byte.
type Int struct {
	Value *big.Int
}

// NewInt builds an Int Hashable from v.
func NewInt(v *big.Int) Int { return Int{Value: v} }

func (i Int) encode() []byte {
	out := make([]byte, 0)
	out = append(out, tagInt)
	out = append(out, signedBigEndian(i.Value)...)
	return out
}

// signedBigEndian returns the minimal signed big-endian two's-complement
// encoding of v with no redundant leading sign-extension byte.
func signedBigEndian(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// Negative: two's complement over the minimal number of bytes that can
	// represent v with the sign bit set.
	abs := new(big.Int).Abs(v)
	nbits := new(big.Int).Sub(abs, big.NewInt(1)).BitLen()
	nbytes := nbits/8 + 1
	mod := new(big.Int).Lsh(big.NewInt(1), uint(nbytes*8))
	tc := new(big.Int).Add(mod, v)
	b := tc.Bytes()
	for len(b) < nbytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// List wraps an ordered sequence of Hashables as a single Hashable; order
// is significant.
type List []Hashable

func (l List) encode() []byte {
	out := make([]byte, 0)
	out = append(out, tagList)
	for _, h := range l {
		out = append(out, h.encode()...)
	}
	return out
}

// Encode exposes the canonical byte encoding of a Hashable for callers that
// need to reuse it outside of a HashTranscript.Recompute call (e.g. the
// verifiable commitment key's rejection-sampling loop).
func Encode(h Hashable) []byte {
	return h.encode()
}
