package group

// Sampler abstracts the randomness source behind the various Prove
// functions: production code draws from crypto/rand via CryptoSampler,
// while tests can inject a FixedSampler to reproduce a pinned transcript.
type Sampler interface {
	Next(zq ZqGroup) (ZqElement, error)
}

// CryptoSampler draws uniform elements using a cryptographically strong RNG.
type CryptoSampler struct{}

// Next samples a uniform element of zq.
func (CryptoSampler) Next(zq ZqGroup) (ZqElement, error) {
	return zq.RandomElement()
}

// FixedSampler replays a predetermined sequence of elements, in order. It
// exists purely to make prover output reproducible in tests that pin an
// exact expected argument.
type FixedSampler struct {
	Values []ZqElement
	next   int
}

// Next returns the next value in Values. It errors if the sequence is
// exhausted.
func (s *FixedSampler) Next(_ ZqGroup) (ZqElement, error) {
	if s.next >= len(s.Values) {
		return ZqElement{}, Internal(InvalidArgument("fixed sampler exhausted after %d values", s.next))
	}
	v := s.Values[s.next]
	s.next++
	return v, nil
}
