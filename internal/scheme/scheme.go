package scheme

import "io"

// Scheme is the common shape KeyGen/Encrypt/Decrypt implemented by the
// slss, tdd, and egrw packages. PK, SK, and CT are each package's own
// concrete key and ciphertext types; there is no dynamic dispatch here,
// just a shared generic contract that documents the parallel structure
// between the three siblings and lets the root kmosaic package write one
// set of composition helpers against it.
type Scheme[PK any, SK any, CT any] interface {
	KeyGen(rng io.Reader) (PK, SK, error)
	Encrypt(pk PK, mu []byte, rng io.Reader) (CT, error)
	Decrypt(sk SK, ct CT) ([]byte, error)
}
