package commitment

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// keyCacheSize bounds the number of distinct (group, k) verifiable
// commitment keys kept warm; derivation is deterministic, so eviction only
// costs a repeat of the rejection-sampling loop, never correctness.
const keyCacheSize = 64

// KeyCache memoizes GenVerifiableCommitmentKey by (p, q, g, k), since the
// underlying rejection-sampling loop is the most expensive step on a cold
// start path that is otherwise pure.
type KeyCache struct {
	cache *lru.Cache[string, Key]
}

// NewKeyCache builds an empty cache.
func NewKeyCache() (*KeyCache, error) {
	c, err := lru.New[string, Key](keyCacheSize)
	if err != nil {
		return nil, group.Internal(err)
	}
	return &KeyCache{cache: c}, nil
}

func cacheKey(k int, gr group.GqGroup) string {
	return fmt.Sprintf("%s|%s|%s|%d", gr.P(), gr.Q(), gr.G(), k)
}

// Get returns the cached key for (k, gr), deriving and storing it on a
// cache miss.
func (kc *KeyCache) Get(k int, gr group.GqGroup) (Key, error) {
	ck := cacheKey(k, gr)
	if v, ok := kc.cache.Get(ck); ok {
		return v, nil
	}
	key, err := GenVerifiableCommitmentKey(k, gr)
	if err != nil {
		return Key{}, err
	}
	kc.cache.Add(ck, key)
	return key, nil
}
