package field

import "math/big"

// Reduce returns x mod q, normalized into [0, q).
func Reduce(x, q *big.Int) *big.Int {
	r := new(big.Int).Mod(x, q)
	return r
}

// Add returns (a + b) mod q.
func Add(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return Reduce(r, q)
}

// Sub returns (a - b) mod q, normalized into [0, q).
func Sub(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return Reduce(r, q)
}

// Mul returns (a * b) mod q.
func Mul(a, b, q *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return Reduce(r, q)
}

// Neg returns (-a) mod q, normalized into [0, q).
func Neg(a, q *big.Int) *big.Int {
	r := new(big.Int).Neg(a)
	return Reduce(r, q)
}

// Inverse returns the modular inverse of a mod q, where q is prime, via
// Fermat's little theorem a^(q-2) mod q.
func Inverse(a, q *big.Int) *big.Int {
	exp := new(big.Int).Sub(q, big.NewInt(2))
	return new(big.Int).Exp(a, exp, q)
}

// Centered returns the signed representative of x mod q in the range
// (-q/2, q/2], used whenever a coordinate is interpreted as signed noise
// (SLSS decoding, norm checks on signature responses).
func Centered(x, q *big.Int) *big.Int {
	r := Reduce(x, q)
	half := new(big.Int).Rsh(q, 1)
	if r.Cmp(half) > 0 {
		r.Sub(r, q)
	}
	return r
}

// AbsCentered returns |Centered(x, q)|, i.e. min(x mod q, q - x mod q).
// This is exactly the quantity checkNorm (spec.md §4.6) thresholds
// against beta.
func AbsCentered(x, q *big.Int) *big.Int {
	r := Reduce(x, q)
	comp := new(big.Int).Sub(q, r)
	if comp.Cmp(r) < 0 {
		return comp
	}
	return r
}

// AddInto sets dst = (a + b) mod q, writing into dst's own storage
// instead of allocating a fresh big.Int the way Add does. It exists so a
// pooled accumulator (field.Matrix.MulVec's hot inner loop) can reduce a
// whole row without a per-term allocation.
func AddInto(dst, a, b, q *big.Int) {
	dst.Add(a, b)
	dst.Mod(dst, q)
}

// ElemWidth returns the whole-byte width needed to hold any value in
// [0, q) - the same fixed-width convention sl2.Encode uses for SL(2, Z_p)
// elements. field.Vector is shared across moduli ranging from SLSS/TDD's
// small q (a handful of bits) up to EGRW's p (up to 2^61-1 at MOS_256), so
// the wire width must scale with q rather than assume every coordinate
// fits in a fixed-size word.
func ElemWidth(q *big.Int) int {
	return (q.BitLen() + 7) / 8
}
