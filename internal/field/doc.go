// Package field implements modular arithmetic in Z_q for a runtime
// modulus, plus vectors and matrices over it. It is the arithmetic
// kernel layer 2 of spec.md §2: every scalar in SLSS and TDD, and the
// EGRW commitment vectors mod p, reduce through the helpers here
// (SL(2, Z_p) matrix products use internal/sl2's own reduction).
//
// Unlike the teacher's elliptic-curve field arithmetic (generated by
// gnark-crypto for a fixed curve modulus), kMOSAIC's three problems each
// run over a different runtime-chosen prime, so this package takes the
// modulus as an explicit *big.Int rather than baking it into a type.
package field
