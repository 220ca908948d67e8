package group

import "encoding/json"

// ZqVector is an immutable, group-tagged sequence of ZqElement. Iteration
// order is significant: indices carry algebraic meaning throughout the
// arguments built on top of this package.
type ZqVector struct {
	group ZqGroup
	elems []ZqElement
}

// NewZqVector builds a vector from elems, all of which must share group.
// An empty vector is permitted but the caller must still supply group
// explicitly (there is no way to infer it from zero elements).
func NewZqVector(group ZqGroup, elems []ZqElement) (ZqVector, error) {
	if !group.IsValid() {
		return ZqVector{}, MissingArgument("group")
	}
	for i, e := range elems {
		if !e.group.Equals(group) {
			return ZqVector{}, InvalidArgument("element %d belongs to a different Zq group", i)
		}
	}
	cp := make([]ZqElement, len(elems))
	copy(cp, elems)
	return ZqVector{group: group, elems: cp}, nil
}

// Group returns the common Zq group of this vector.
func (v ZqVector) Group() ZqGroup { return v.group }

// Len returns the number of elements.
func (v ZqVector) Len() int { return len(v.elems) }

// Get returns the i-th element.
func (v ZqVector) Get(i int) ZqElement { return v.elems[i] }

// Slice returns a defensive copy of the underlying elements.
func (v ZqVector) Slice() []ZqElement {
	cp := make([]ZqElement, len(v.elems))
	copy(cp, v.elems)
	return cp
}

// MarshalJSON encodes the vector as a plain array of its elements.
func (v ZqVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elems)
}

// Append returns a new vector with value appended.
func (v ZqVector) Append(value ZqElement) (ZqVector, error) {
	if !value.group.Equals(v.group) {
		return ZqVector{}, InvalidArgument("appended element belongs to a different Zq group")
	}
	return NewZqVector(v.group, append(v.Slice(), value))
}

// Prepend returns a new vector with value inserted at index 0.
func (v ZqVector) Prepend(value ZqElement) (ZqVector, error) {
	if !value.group.Equals(v.group) {
		return ZqVector{}, InvalidArgument("prepended element belongs to a different Zq group")
	}
	elems := make([]ZqElement, 0, v.Len()+1)
	elems = append(elems, value)
	elems = append(elems, v.elems...)
	return NewZqVector(v.group, elems)
}

// Add returns the elementwise sum of v and other.
func (v ZqVector) Add(other ZqVector) (ZqVector, error) {
	if v.Len() != other.Len() {
		return ZqVector{}, InvalidArgument("vector length mismatch: %d vs %d", v.Len(), other.Len())
	}
	out := make([]ZqElement, v.Len())
	for i := range v.elems {
		s, err := v.elems[i].Add(other.elems[i])
		if err != nil {
			return ZqVector{}, err
		}
		out[i] = s
	}
	return NewZqVector(v.group, out)
}

// ScalarMultiply returns v with every element multiplied by scalar.
func (v ZqVector) ScalarMultiply(scalar ZqElement) (ZqVector, error) {
	out := make([]ZqElement, v.Len())
	for i := range v.elems {
		p, err := v.elems[i].Multiply(scalar)
		if err != nil {
			return ZqVector{}, err
		}
		out[i] = p
	}
	return NewZqVector(v.group, out)
}

// Sum folds the vector with Add, returning 0 for an empty vector.
func (v ZqVector) Sum() ZqElement {
	acc := v.group.ZeroElement()
	for _, e := range v.elems {
		acc, _ = acc.Add(e)
	}
	return acc
}

// Product folds the vector with Multiply, returning 1 for an empty vector.
func (v ZqVector) Product() ZqElement {
	acc := v.group.OneElement()
	for _, e := range v.elems {
		acc, _ = acc.Multiply(e)
	}
	return acc
}

// Hadamard returns the elementwise product of v and other.
func (v ZqVector) Hadamard(other ZqVector) (ZqVector, error) {
	if v.Len() != other.Len() {
		return ZqVector{}, InvalidArgument("vector length mismatch: %d vs %d", v.Len(), other.Len())
	}
	out := make([]ZqElement, v.Len())
	for i := range v.elems {
		p, err := v.elems[i].Multiply(other.elems[i])
		if err != nil {
			return ZqVector{}, err
		}
		out[i] = p
	}
	return NewZqVector(v.group, out)
}

// InnerProduct computes sum_i v_i * other_i.
func (v ZqVector) InnerProduct(other ZqVector) (ZqElement, error) {
	h, err := v.Hadamard(other)
	if err != nil {
		return ZqElement{}, err
	}
	return h.Sum(), nil
}

// ZeroVector returns the length-n vector of zero elements in group.
func ZeroVector(group ZqGroup, n int) ZqVector {
	elems := make([]ZqElement, n)
	zero := group.ZeroElement()
	for i := range elems {
		elems[i] = zero
	}
	v, _ := NewZqVector(group, elems)
	return v
}

// GqVector is an immutable, group-tagged sequence of GqElement.
type GqVector struct {
	group GqGroup
	elems []GqElement
}

// NewGqVector builds a vector from elems, all of which must share group.
func NewGqVector(group GqGroup, elems []GqElement) (GqVector, error) {
	if !group.IsValid() {
		return GqVector{}, MissingArgument("group")
	}
	for i, e := range elems {
		if !e.group.Equals(group) {
			return GqVector{}, InvalidArgument("element %d belongs to a different Gq group", i)
		}
	}
	cp := make([]GqElement, len(elems))
	copy(cp, elems)
	return GqVector{group: group, elems: cp}, nil
}

// Group returns the common Gq group of this vector.
func (v GqVector) Group() GqGroup { return v.group }

// Len returns the number of elements.
func (v GqVector) Len() int { return len(v.elems) }

// Get returns the i-th element.
func (v GqVector) Get(i int) GqElement { return v.elems[i] }

// Slice returns a defensive copy of the underlying elements.
func (v GqVector) Slice() []GqElement {
	cp := make([]GqElement, len(v.elems))
	copy(cp, v.elems)
	return cp
}

// MarshalJSON encodes the vector as a plain array of its elements.
func (v GqVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.elems)
}

// Multiply returns the elementwise product of v and other.
func (v GqVector) Multiply(other GqVector) (GqVector, error) {
	if v.Len() != other.Len() {
		return GqVector{}, InvalidArgument("vector length mismatch: %d vs %d", v.Len(), other.Len())
	}
	out := make([]GqElement, v.Len())
	for i := range v.elems {
		p, err := v.elems[i].Multiply(other.elems[i])
		if err != nil {
			return GqVector{}, err
		}
		out[i] = p
	}
	return NewGqVector(v.group, out)
}

// ExponentiateAll raises every element to exponent.
func (v GqVector) ExponentiateAll(exponent ZqElement) (GqVector, error) {
	out := make([]GqElement, v.Len())
	for i := range v.elems {
		p, err := v.elems[i].Exponentiate(exponent)
		if err != nil {
			return GqVector{}, err
		}
		out[i] = p
	}
	return NewGqVector(v.group, out)
}

// MultiExponentiate computes prod_i v_i^{exponents_i}, the workhorse
// operation used throughout the commitment and multi-exponentiation logic.
func (v GqVector) MultiExponentiate(exponents ZqVector) (GqElement, error) {
	if v.Len() != exponents.Len() {
		return GqElement{}, InvalidArgument("vector/exponents length mismatch: %d vs %d", v.Len(), exponents.Len())
	}
	acc := v.group.Identity()
	for i := range v.elems {
		term, err := v.elems[i].Exponentiate(exponents.elems[i])
		if err != nil {
			return GqElement{}, err
		}
		acc, err = acc.Multiply(term)
		if err != nil {
			return GqElement{}, err
		}
	}
	return acc, nil
}

// Product folds the vector with Multiply, returning the identity for an
// empty vector.
func (v GqVector) Product() GqElement {
	acc := v.group.Identity()
	for _, e := range v.elems {
		acc, _ = acc.Multiply(e)
	}
	return acc
}
