package kmosaic

import (
	"math/big"

	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/sl2"
)

// VecSub returns (a - b) mod q, element-wise, with every result in
// [0, q) - spec.md §4.6's vecSub(a, b, q).
func VecSub(a, b field.Vector) field.Vector {
	return a.Sub(b)
}

// CheckNorm reports whether every coordinate of v, under its centered
// representative in (-q/2, q/2], has absolute value at most beta -
// spec.md §4.6's checkNorm(v, beta, q).
func CheckNorm(v field.Vector, beta *big.Int) bool {
	return v.CheckNorm(beta)
}

// CombineWalks computes the positional combination z[j] = (a[j] +
// c*b[j]) mod |G| used by the signature protocol's EGRW response -
// spec.md §4.6's combineWalks(a, b, c).
func CombineWalks(a, b []int, c int) []int {
	return sl2.CombineWalks(a, b, c)
}
