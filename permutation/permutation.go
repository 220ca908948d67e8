// Package permutation implements bijections on {0, ..., n-1}: the
// structural object a shuffle proof permutes ciphertexts and exponents
// through.
package permutation

import (
	"crypto/rand"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// Permutation is a bijection pi on {0, ..., n-1}, together with its inverse.
type Permutation struct {
	forward []int
	inverse []int
}

// New validates that p is a bijection on {0, ..., len(p)-1} and wraps it.
func New(p []int) (Permutation, error) {
	n := len(p)
	seen := make([]bool, n)
	inverse := make([]int, n)
	for k, v := range p {
		if v < 0 || v >= n {
			return Permutation{}, group.InvalidArgument("permutation value %d at index %d is out of range [0,%d)", v, k, n)
		}
		if seen[v] {
			return Permutation{}, group.InvalidArgument("permutation value %d is repeated", v)
		}
		seen[v] = true
		inverse[v] = k
	}
	forward := make([]int, n)
	copy(forward, p)
	return Permutation{forward: forward, inverse: inverse}, nil
}

// Random draws a uniform permutation on {0, ..., n-1} via Fisher-Yates,
// using crypto/rand as the entropy source.
func Random(n int) (Permutation, error) {
	if n <= 0 {
		return Permutation{}, group.InvalidArgument("permutation size must be positive, got %d", n)
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return Permutation{}, group.Internal(err)
		}
		jv := int(j.Int64())
		p[i], p[jv] = p[jv], p[i]
	}
	return New(p)
}

// Size returns n.
func (p Permutation) Size() int { return len(p.forward) }

// At returns pi(k).
func (p Permutation) At(k int) int { return p.forward[k] }

// InverseAt returns pi^-1(k).
func (p Permutation) InverseAt(k int) int { return p.inverse[k] }

// Inverse returns the inverse permutation pi^-1.
func (p Permutation) Inverse() Permutation {
	return Permutation{forward: append([]int(nil), p.inverse...), inverse: append([]int(nil), p.forward...)}
}

// Slice returns a defensive copy of the forward mapping.
func (p Permutation) Slice() []int {
	return append([]int(nil), p.forward...)
}
