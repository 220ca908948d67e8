package group

import "math/big"

// GqGroup is the order-q subgroup of (Z/pZ)* where p = 2q+1 is a safe prime
// and q is prime. Elements are integers in [1, p-1] whose q-th power is 1.
type GqGroup struct {
	p *big.Int
	q *big.Int
	g *big.Int
}

// NewGqGroup validates p = 2q+1 and that g generates the order-q subgroup,
// then returns the group. g must satisfy g != 1 and g^q == 1 (mod p).
func NewGqGroup(p, q, g *big.Int) (GqGroup, error) {
	if p == nil || q == nil || g == nil {
		return GqGroup{}, MissingArgument("p, q, g")
	}
	twoQPlus1 := new(big.Int).Lsh(q, 1)
	twoQPlus1.Add(twoQPlus1, one)
	if twoQPlus1.Cmp(p) != 0 {
		return GqGroup{}, InvalidArgument("p must equal 2q+1, got p=%s q=%s", p, q)
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return GqGroup{}, InvalidArgument("generator must lie in [2, p-1]")
	}
	check := new(big.Int).Exp(g, q, p)
	if check.Cmp(one) != 0 {
		return GqGroup{}, InvalidArgument("g is not a generator of the order-q subgroup")
	}
	return GqGroup{p: new(big.Int).Set(p), q: new(big.Int).Set(q), g: new(big.Int).Set(g)}, nil
}

// P returns the safe prime modulus.
func (gr GqGroup) P() *big.Int { return gr.p }

// Q returns the subgroup order.
func (gr GqGroup) Q() *big.Int { return gr.q }

// G returns the canonical generator.
func (gr GqGroup) G() *big.Int { return gr.g }

// ZqGroup returns the exponent field associated with this group.
func (gr GqGroup) ZqGroup() ZqGroup { return ZqGroup{q: gr.q} }

// Equals reports whether two groups share identical parameters.
func (gr GqGroup) Equals(other GqGroup) bool {
	return gr.p != nil && other.p != nil &&
		gr.p.Cmp(other.p) == 0 && gr.q.Cmp(other.q) == 0 && gr.g.Cmp(other.g) == 0
}

// IsValid reports whether this group was constructed (non-zero value).
func (gr GqGroup) IsValid() bool { return gr.p != nil }

// IsGroupMember reports whether v is a member of the order-q subgroup:
// 1 <= v <= p-1 and v^q == 1 (mod p).
func (gr GqGroup) IsGroupMember(v *big.Int) bool {
	if v == nil || v.Sign() <= 0 || v.Cmp(gr.p) >= 0 {
		return false
	}
	return new(big.Int).Exp(v, gr.q, gr.p).Cmp(one) == 0
}

// GqElement is an element of a GqGroup.
type GqElement struct {
	group GqGroup
	value *big.Int
}

// NewGqElement validates that value is a member of group and wraps it.
func NewGqElement(gr GqGroup, value *big.Int) (GqElement, error) {
	if !gr.IsValid() {
		return GqElement{}, MissingArgument("group")
	}
	if value == nil {
		return GqElement{}, MissingArgument("value")
	}
	if !gr.IsGroupMember(value) {
		return GqElement{}, InvalidArgument("%s is not a member of the group", value)
	}
	return GqElement{group: gr, value: new(big.Int).Set(value)}, nil
}

// Identity returns the Gq identity element (1).
func (gr GqGroup) Identity() GqElement {
	return GqElement{group: gr, value: new(big.Int).Set(one)}
}

// GeneratorElement returns the canonical generator as a GqElement.
func (gr GqGroup) GeneratorElement() GqElement {
	return GqElement{group: gr, value: new(big.Int).Set(gr.g)}
}

// Group returns the GqGroup this element belongs to.
func (e GqElement) Group() GqGroup { return e.group }

// Value returns the underlying big.Int value (never mutate the result).
func (e GqElement) Value() *big.Int { return e.value }

// MarshalJSON encodes the element as its decimal value; the group itself
// is shared context carried alongside, not repeated per element.
func (e GqElement) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.value.String() + `"`), nil
}

// Equals reports value and group equality.
func (e GqElement) Equals(other GqElement) bool {
	return e.group.Equals(other.group) && e.value.Cmp(other.value) == 0
}

func (e GqElement) requireSameGroup(other GqElement) error {
	if !e.group.Equals(other.group) {
		return InvalidArgument("group mismatch: p=%s vs p=%s", e.group.p, other.group.p)
	}
	return nil
}

// Multiply returns e * other (mod p).
func (e GqElement) Multiply(other GqElement) (GqElement, error) {
	if err := e.requireSameGroup(other); err != nil {
		return GqElement{}, err
	}
	v := new(big.Int).Mul(e.value, other.value)
	v.Mod(v, e.group.p)
	return GqElement{group: e.group, value: v}, nil
}

// Invert returns the multiplicative inverse of e.
func (e GqElement) Invert() GqElement {
	v := new(big.Int).ModInverse(e.value, e.group.p)
	return GqElement{group: e.group, value: v}
}

// Exponentiate returns e^exponent (mod p). The exponent must live in this
// element's associated ZqGroup.
func (e GqElement) Exponentiate(exponent ZqElement) (GqElement, error) {
	if !e.group.ZqGroup().Equals(exponent.group) {
		return GqElement{}, InvalidArgument("exponent's Zq group does not match base's Gq group")
	}
	v := new(big.Int).Exp(e.value, exponent.value, e.group.p)
	return GqElement{group: e.group, value: v}, nil
}

var one = big.NewInt(1)
