// Package slss implements the Sparse Lattice Subset Sum encryption
// scheme: an LWE-style public key A·s + e with a sparse ternary secret
// s, per spec.md §4.1.
package slss
