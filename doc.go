// Package kmosaic implements the kMOSAIC post-quantum construction: three
// independent hard-problem schemes (SLSS, TDD, EGRW) entangled behind one
// composite public/secret key, composed into an IND-CCA2 key encapsulation
// mechanism via a Fujisaki-Okamoto transform with implicit rejection, and
// into a multi-witness Fiat-Shamir signature scheme.
//
// The package is stateless and single-threaded per call: every exported
// operation (GenerateKeyPair, Encapsulate, Decapsulate, Sign, Verify) runs
// as one atomic unit against caller-supplied randomness. There is no
// formal security proof behind the composition; see DESIGN.md for the
// open design decisions this implementation makes where the distilled
// specification leaves a choice unresolved.
package kmosaic
