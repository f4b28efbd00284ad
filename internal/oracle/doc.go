// Package oracle wraps the primitive cryptographic oracles that spec.md §1
// treats as abstract dependencies of the core: secure randomness, the
// SHAKE256 extendable-output function, and SHA3-256. Concrete
// implementations come from golang.org/x/crypto/sha3 and crypto/rand. The
// one other package that uses sha3 directly is internal/sample, whose
// ExpandMatrix reads a SHAKE256 stream to expand public matrices.
//
// This package also hosts the constant-time comparison/selection helpers
// and the secret-buffer zeroization routines required by spec.md §5.
package oracle
