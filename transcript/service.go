package transcript

import (
	"crypto/sha256"
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// Service derives Fiat-Shamir challenges by hashing a transcript of
// Hashable values down to an element of a fixed ZqGroup. The hash is
// SHA-256(encode(x_1) || encode(x_2) || ...), reduced modulo q. Production
// groups require bitlen(hash) < bitlen(q); construction rejects groups that
// cannot satisfy this (q must be at least 257 bits for SHA-256 output).
type Service struct {
	zq ZqGroup
}

// ZqGroup is a local alias to avoid importing group in every caller that
// only needs the Service type name.
type ZqGroup = group.ZqGroup

// New builds a hash service bound to zq. It rejects groups whose q is not
// strictly larger than the SHA-256 output domain, since otherwise the
// modular reduction would be heavily biased.
func New(zq ZqGroup) (*Service, error) {
	if !zq.IsValid() {
		return nil, group.MissingArgument("group")
	}
	if zq.Q().BitLen() <= 256 {
		return nil, group.InvalidArgument(
			"q must have bit length > 256 for the hash service to avoid modular bias, got %d", zq.Q().BitLen())
	}
	return &Service{zq: zq}, nil
}

// Recompute hashes the ordered sequence of Hashables and reduces the
// digest modulo q, returning the resulting Zq challenge.
func (s *Service) Recompute(values ...Hashable) (group.ZqElement, error) {
	h := sha256.New()
	for _, v := range values {
		if _, err := h.Write(Encode(v)); err != nil {
			return group.ZqElement{}, group.Internal(err)
		}
	}
	digest := h.Sum(nil)
	n := new(big.Int).SetBytes(digest)
	n.Mod(n, s.zq.Q())
	return group.NewZqElement(s.zq, n)
}

// TestService is an injectable hash transcript for small test groups, where
// q is far smaller than a SHA-256 digest. It bounds the reduced challenge
// to [lower, upper) by reducing modulo (upper-lower) and offsetting, which
// keeps tests repeatable without violating the small group's range.
type TestService struct {
	zq    ZqGroup
	lower *big.Int
	upper *big.Int
}

// NewTestService builds a TestService producing challenges in [lower, upper).
func NewTestService(zq ZqGroup, lower, upper *big.Int) (*TestService, error) {
	if !zq.IsValid() {
		return nil, group.MissingArgument("group")
	}
	if lower.Cmp(upper) >= 0 {
		return nil, group.InvalidArgument("lower bound must be < upper bound")
	}
	return &TestService{zq: zq, lower: new(big.Int).Set(lower), upper: new(big.Int).Set(upper)}, nil
}

// Recompute hashes values and bounds the result to [lower, upper).
func (s *TestService) Recompute(values ...Hashable) (group.ZqElement, error) {
	h := sha256.New()
	for _, v := range values {
		if _, err := h.Write(Encode(v)); err != nil {
			return group.ZqElement{}, group.Internal(err)
		}
	}
	digest := h.Sum(nil)
	n := new(big.Int).SetBytes(digest)
	span := new(big.Int).Sub(s.upper, s.lower)
	n.Mod(n, span)
	n.Add(n, s.lower)
	return group.NewZqElement(s.zq, n)
}
