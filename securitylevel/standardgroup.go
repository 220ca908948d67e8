package securitylevel

import (
	"math/big"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// rfc3526Group14P is the 2048-bit MODP safe prime from RFC 3526 Group 14:
// p = 2q+1 with q prime. 4 generates the order-q subgroup for every safe
// prime (it is a quadratic residue), so it serves as the canonical
// generator here.
const rfc3526Group14P = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD" +
	"129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519" +
	"B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7" +
	"EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F" +
	"24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361C5" +
	"5D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9E" +
	"D529077096966D670C354E4ABC9804F1746C08CA18217C32905E46" +
	"2E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C" +
	"9DE2BCBF6955817183995497CEA956AE515D2261898FA051015728E" +
	"5A8AACAA68FFFFFFFFFFFFFFFF"

// DefaultGroup returns the standardized safe-prime group backing Level
// Default (2048-bit). There is no equivalent baked-in group for Extended:
// callers targeting that level must supply their own audited 3072-bit safe
// prime via group.NewGqGroup.
func DefaultGroup() (group.GqGroup, error) {
	p, ok := new(big.Int).SetString(rfc3526Group14P, 16)
	if !ok {
		return group.GqGroup{}, group.Internal(nil)
	}
	q := new(big.Int).Rsh(p, 1)
	g := big.NewInt(4)
	return group.NewGqGroup(p, q, g)
}
