package oracle

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/sha3"
)

// RandBytes draws n bytes from rng, or from crypto/rand.Reader if rng is
// nil. This is the rand_bytes(n) -> bytes oracle of spec.md §1.
func RandBytes(rng io.Reader, n int) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DefaultRand returns rng, or crypto/rand.Reader if rng is nil - the same
// fallback RandBytes applies internally, exposed for callers that resolve
// a possibly-nil randomness source before handing it to a sampler that
// doesn't do its own nil check (e.g. internal/sample's rejection samplers,
// which call io.ReadFull directly).
func DefaultRand(rng io.Reader) io.Reader {
	if rng == nil {
		return rand.Reader
	}
	return rng
}

// Shake256 is the shake256(input, out_len) -> bytes oracle of spec.md §1.
// Multiple input segments may be passed; they are absorbed in order, so
// callers build domain-separated inputs as e.g.
// Shake256(outLen, []byte(dst), a, b, c).
func Shake256(outLen int, segments ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, s := range segments {
		_, _ = h.Write(s)
	}
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}

// Sha3_256 is the sha3_256(input) -> 32 bytes oracle of spec.md §1.
func Sha3_256(segments ...[]byte) [32]byte {
	h := sha3.New256()
	for _, s := range segments {
		_, _ = h.Write(s)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DeterministicReader returns an io.Reader streaming SHAKE256(dst || seed)
// output, turning a fixed seed into a reusable randomness source. KeyGen
// uses this to derive each sub-scheme's keypair from a sub-seed split out
// of the composite secret key's master seed, and Encapsulate uses it to
// derive per-scheme ciphertext randomness from mu, per spec.md §4.4/§4.5.
func DeterministicReader(dst string, seed []byte) io.Reader {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(dst))
	_, _ = h.Write(seed)
	return h
}
