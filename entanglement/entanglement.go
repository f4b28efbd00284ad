package entanglement

import (
	"io"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/oracle"
)

// Split3 produces three 32-byte shares K1, K2, K3 with K1^K2^K3 = k, by
// sampling K1 and K2 uniformly and solving for K3.
func Split3(k [32]byte, rng io.Reader) (k1, k2, k3 [32]byte, err error) {
	b1, err := oracle.RandBytes(rng, 32)
	if err != nil {
		return k1, k2, k3, common.Wrap(err, "entanglement.Split3")
	}
	b2, err := oracle.RandBytes(rng, 32)
	if err != nil {
		return k1, k2, k3, common.Wrap(err, "entanglement.Split3")
	}
	copy(k1[:], b1)
	copy(k2[:], b2)
	for i := range k3 {
		k3[i] = k[i] ^ k1[i] ^ k2[i]
	}
	return k1, k2, k3, nil
}

// Combine3 recovers k = K1^K2^K3.
func Combine3(k1, k2, k3 [32]byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = k1[i] ^ k2[i] ^ k3[i]
	}
	return out
}

// Bind computes the composite key binding hash over the three
// serialized sub-public-keys, per spec.md §3/§4.4.
func Bind(slssPK, tddPK, egrwPK []byte) [32]byte {
	return oracle.Sha3_256([]byte(common.DSTBind), slssPK, tddPK, egrwPK)
}

// Commit computes commit(m, r) = SHA3-256("MOSAIC-COMMIT" || r || m) for
// 32 bytes of randomness r.
func Commit(m, r []byte) [32]byte {
	return oracle.Sha3_256([]byte(common.DSTCommit), r, m)
}

// Open recomputes Commit(m, r) and compares it to commitment in constant
// time.
func Open(commitment [32]byte, m, r []byte) bool {
	got := Commit(m, r)
	return oracle.ConstantTimeEqBytes(commitment[:], got[:])
}
