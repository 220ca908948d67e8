package transcript

import "github.com/Cipheritall/crypto-primitives-sub001/group"

// HashTranscript is the common interface implemented by Service and
// TestService: derive the next Fiat-Shamir challenge from an ordered
// transcript of public values.
type HashTranscript interface {
	Recompute(values ...Hashable) (group.ZqElement, error)
}

var (
	_ HashTranscript = (*Service)(nil)
	_ HashTranscript = (*TestService)(nil)
)

// GqElements converts a slice of group.GqElement into a List Hashable.
func GqElements(es ...group.GqElement) Hashable {
	list := make(List, len(es))
	for i, e := range es {
		list[i] = NewInt(e.Value())
	}
	return list
}

// ZqElements converts a slice of group.ZqElement into a List Hashable.
func ZqElements(es ...group.ZqElement) Hashable {
	list := make(List, len(es))
	for i, e := range es {
		list[i] = NewInt(e.Value())
	}
	return list
}
