// Package tdd implements the Tensor Decomposition Distinguishing
// encryption scheme: a public rank-r tensor T = Sum a_i⊗b_i⊗c_i + E,
// with bit-by-bit encryption via masked tensor contractions, per
// spec.md §4.2.
package tdd
