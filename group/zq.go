package group

import (
	"crypto/rand"
	"math/big"
)

// ZqGroup is the exponent field Z/qZ associated with a GqGroup of order q.
type ZqGroup struct {
	q *big.Int
}

// NewZqGroup wraps q as an exponent field. q must be a positive integer.
func NewZqGroup(q *big.Int) (ZqGroup, error) {
	if q == nil {
		return ZqGroup{}, MissingArgument("q")
	}
	if q.Sign() <= 0 {
		return ZqGroup{}, InvalidArgument("q must be positive")
	}
	return ZqGroup{q: new(big.Int).Set(q)}, nil
}

// Q returns the field modulus.
func (z ZqGroup) Q() *big.Int { return z.q }

// IsValid reports whether this group was constructed.
func (z ZqGroup) IsValid() bool { return z.q != nil }

// Equals reports whether two Zq groups share the same modulus.
func (z ZqGroup) Equals(other ZqGroup) bool {
	return z.q != nil && other.q != nil && z.q.Cmp(other.q) == 0
}

// ZqElement is an integer in [0, q-1].
type ZqElement struct {
	group ZqGroup
	value *big.Int
}

// NewZqElement validates 0 <= value < q and wraps it.
func NewZqElement(z ZqGroup, value *big.Int) (ZqElement, error) {
	if !z.IsValid() {
		return ZqElement{}, MissingArgument("group")
	}
	if value == nil {
		return ZqElement{}, MissingArgument("value")
	}
	if value.Sign() < 0 || value.Cmp(z.q) >= 0 {
		return ZqElement{}, InvalidArgument("%s is not in [0, %s)", value, z.q)
	}
	return ZqElement{group: z, value: new(big.Int).Set(value)}, nil
}

// ZeroElement returns the additive identity 0.
func (z ZqGroup) ZeroElement() ZqElement {
	return ZqElement{group: z, value: big.NewInt(0)}
}

// OneElement returns the multiplicative identity 1.
func (z ZqGroup) OneElement() ZqElement {
	return ZqElement{group: z, value: big.NewInt(1)}
}

// RandomElement samples a uniform element of Z/qZ using a cryptographically
// strong random source.
func (z ZqGroup) RandomElement() (ZqElement, error) {
	v, err := rand.Int(rand.Reader, z.q)
	if err != nil {
		return ZqElement{}, Internal(err)
	}
	return ZqElement{group: z, value: v}, nil
}

// Group returns the ZqGroup this element belongs to.
func (e ZqElement) Group() ZqGroup { return e.group }

// Value returns the underlying big.Int (never mutate the result).
func (e ZqElement) Value() *big.Int { return e.value }

// MarshalJSON encodes the element as its decimal value; the group itself
// is shared context carried alongside, not repeated per element.
func (e ZqElement) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.value.String() + `"`), nil
}

// Equals reports value and group equality.
func (e ZqElement) Equals(other ZqElement) bool {
	return e.group.Equals(other.group) && e.value.Cmp(other.value) == 0
}

func (e ZqElement) requireSameGroup(other ZqElement) error {
	if !e.group.Equals(other.group) {
		return InvalidArgument("Zq group mismatch: q=%s vs q=%s", e.group.q, other.group.q)
	}
	return nil
}

// Add returns e + other (mod q).
func (e ZqElement) Add(other ZqElement) (ZqElement, error) {
	if err := e.requireSameGroup(other); err != nil {
		return ZqElement{}, err
	}
	v := new(big.Int).Add(e.value, other.value)
	v.Mod(v, e.group.q)
	return ZqElement{group: e.group, value: v}, nil
}

// Subtract returns e - other (mod q).
func (e ZqElement) Subtract(other ZqElement) (ZqElement, error) {
	if err := e.requireSameGroup(other); err != nil {
		return ZqElement{}, err
	}
	v := new(big.Int).Sub(e.value, other.value)
	v.Mod(v, e.group.q)
	return ZqElement{group: e.group, value: v}, nil
}

// Multiply returns e * other (mod q).
func (e ZqElement) Multiply(other ZqElement) (ZqElement, error) {
	if err := e.requireSameGroup(other); err != nil {
		return ZqElement{}, err
	}
	v := new(big.Int).Mul(e.value, other.value)
	v.Mod(v, e.group.q)
	return ZqElement{group: e.group, value: v}, nil
}

// Negate returns -e (mod q).
func (e ZqElement) Negate() ZqElement {
	v := new(big.Int).Neg(e.value)
	v.Mod(v, e.group.q)
	return ZqElement{group: e.group, value: v}
}

// Exponentiate returns e^k (mod q) for a plain non-negative int64 exponent.
func (e ZqElement) Exponentiate(k int64) ZqElement {
	v := new(big.Int).Exp(e.value, big.NewInt(k), e.group.q)
	return ZqElement{group: e.group, value: v}
}

// ElementFromInt64 wraps a plain int64, reduced mod q, as a ZqElement.
func ElementFromInt64(z ZqGroup, k int64) ZqElement {
	v := big.NewInt(k)
	v.Mod(v, z.q)
	return ZqElement{group: z, value: v}
}
