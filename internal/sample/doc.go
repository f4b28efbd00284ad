// Package sample implements the sampling layer of spec.md §2: uniform
// Z_q sampling with rejection, centered discrete Gaussian sampling,
// sparse ternary sampling, seed-expanded deterministic sampling of
// public matrices, and the seed-entropy heuristic of spec.md §7/§8.
package sample
