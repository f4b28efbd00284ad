// Package tensor implements the 3-dimensional Z_q tensors TDD is built on:
// rank-r construction T = Σ a_i⊗b_i⊗c_i + E, and the contraction used by
// TDD.Encrypt to fold a tensor against two vectors into a scalar per
// output coordinate.
package tensor
