package kmosaic

import (
	"encoding/binary"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/oracle"
)

// DeriveSubSeed derives a context-bound, 32-byte sub-seed from a kMOSAIC
// secret key's master seed via iterated, domain-separated SHAKE256, one
// round per path component. This lets one kMOSAIC identity derive many
// per-application sub-identities (e.g. one keypair per device, per
// session) without handing out masterSeed itself - an auxiliary
// key-management utility in the spirit of hierarchical key derivation,
// not named in spec.md but a natural supplement to it (see DESIGN.md).
// An empty path runs no rounds and returns masterSeed itself.
func DeriveSubSeed(masterSeed []byte, path []uint32) []byte {
	cur := masterSeed
	for _, idx := range path {
		idxBuf := make([]byte, 4)
		binary.BigEndian.PutUint32(idxBuf, idx)
		cur = oracle.Shake256(common.SeedSize, []byte(common.DSTDerive), cur, idxBuf)
	}
	return cur
}
