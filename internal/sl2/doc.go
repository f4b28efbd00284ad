// Package sl2 implements the group SL(2, Z_p) of 2x2 integer matrices mod
// p with determinant 1, its Cayley graph over a fixed generating set, and
// canonical byte encoding of group elements. This is the arithmetic
// kernel layer 2 component EGRW is built on (spec.md §4.3).
package sl2
