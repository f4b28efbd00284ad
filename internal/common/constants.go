package common

import "fmt"

// Domain separation tags used across the entanglement, KEM, and signature
// layers. Keeping them in one place avoids accidental collisions between
// hash contexts that must never be confused with one another.
const (
	DSTBind      = "MOSAIC-BIND"
	DSTCommit    = "MOSAIC-COMMIT"
	DSTNIZK      = "MOSAIC-NIZK"
	DSTKEMRand   = "MOSAIC-KEM-R"
	DSTKEMKey    = "MOSAIC-KEM-K"
	DSTKEMReject = "MOSAIC-KEM-REJ"
	DSTSigChal   = "MOSAIC-SIG-C"
	DSTSigSub1   = "MOSAIC-SIG-C1"
	DSTSigSub2   = "MOSAIC-SIG-C2"
	DSTSigSub3   = "MOSAIC-SIG-C3"
	DSTDerive    = "MOSAIC-DERIVE"
)

// SeedSize is the byte length of every high-entropy seed accepted by the
// library: public SLSS matrix seeds, composite secret-key seeds, and
// per-scheme randomness seeds.
const SeedSize = 32

// SizeMismatch panics with a descriptive message. It is used exclusively
// for internal arithmetic invariants (vector/matrix dimension mismatches)
// that indicate a programmer error, never for caller-supplied input - per
// spec.md §7, SizeMismatch is a panic, not a returned error.
func SizeMismatch(context string, want, got int) {
	panic(fmt.Sprintf("kmosaic: size mismatch in %s: want %d, got %d", context, want, got))
}
