package kmosaic

import (
	"io"

	"github.com/kmosaic/kmosaic/entanglement"
)

// SplitSharedSecret splits a 32-byte KEM shared secret (Encapsulate's or
// Decapsulate's K) into three XOR shares, so no single custodian who holds
// one share can recover K alone - spec.md §3's composite-key entanglement
// idea applied to the output secret rather than the key material itself.
// CombineSharedSecret recovers K once all three shares are available.
func SplitSharedSecret(k [32]byte, rng io.Reader) (k1, k2, k3 [32]byte, err error) {
	return entanglement.Split3(k, rng)
}

// CombineSharedSecret recovers k = k1^k2^k3 from the three shares
// SplitSharedSecret produced.
func CombineSharedSecret(k1, k2, k3 [32]byte) [32]byte {
	return entanglement.Combine3(k1, k2, k3)
}

// CommitShare lets a custodian commit to a share now and reveal it later,
// so a recipient collecting shares from several custodians over time
// doesn't have to trust that a share wasn't swapped between commit and
// reveal. r must be 32 bytes of fresh randomness kept alongside the
// commitment until OpenShare is called.
func CommitShare(share [32]byte, r []byte) [32]byte {
	return entanglement.Commit(share[:], r)
}

// OpenShare verifies that share, r opens commitment, per CommitShare.
func OpenShare(commitment [32]byte, share [32]byte, r []byte) bool {
	return entanglement.Open(commitment, share[:], r)
}
