package sl2

import (
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
)

// Element is a 2x2 matrix [[A,B],[C,D]] over Z_p with determinant 1.
type Element struct {
	A, B, C, D *big.Int
}

// Identity returns the group identity.
func Identity() Element {
	return Element{big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)}
}

func mulMod(p, a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, p)
}

func addMod(p, a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, p)
}

// Mul computes x*y mod p as 2x2 matrix multiplication.
func Mul(p *big.Int, x, y Element) Element {
	return Element{
		A: addMod(p, mulMod(p, x.A, y.A), mulMod(p, x.B, y.C)),
		B: addMod(p, mulMod(p, x.A, y.B), mulMod(p, x.B, y.D)),
		C: addMod(p, mulMod(p, x.C, y.A), mulMod(p, x.D, y.C)),
		D: addMod(p, mulMod(p, x.C, y.B), mulMod(p, x.D, y.D)),
	}
}

// Determinant returns (A*D - B*C) mod p, which must equal 1 for any
// valid element.
func Determinant(p *big.Int, e Element) *big.Int {
	ad := mulMod(p, e.A, e.D)
	bc := mulMod(p, e.B, e.C)
	r := new(big.Int).Sub(ad, bc)
	return r.Mod(r, p)
}

// Valid reports whether e has determinant 1 mod p, the SL(2, Z_p)
// membership invariant.
func Valid(p *big.Int, e Element) bool {
	return Determinant(p, e).Cmp(big.NewInt(1)) == 0
}

// Equal reports component-wise equality.
func (e Element) Equal(o Element) bool {
	return e.A.Cmp(o.A) == 0 && e.B.Cmp(o.B) == 0 && e.C.Cmp(o.C) == 0 && e.D.Cmp(o.D) == 0
}

// Generators returns the fixed 4-element generating set G used for every
// EGRW walk: the classic S and T generators of the modular group
// SL(2, Z) and their inverses, reduced mod p.
//
//	T    = [[1,1],[0,1]]      T^-1 = [[1,-1],[0,1]]
//	S    = [[0,-1],[1,0]]     S^-1 = [[0,1],[-1,0]]
//
// S and T generate all of SL(2, Z), and the reduction map SL(2, Z) ->
// SL(2, Z_p) is surjective for every prime p, so {T, T^-1, S, S^-1}
// generates SL(2, Z_p) and its Cayley graph is connected. Whether that
// graph meets the Ramanujan spectral bound spec.md §4.3 invokes is a
// separate, harder number-theoretic question (the LPS construction
// answers it for a specifically chosen auxiliary prime degree); this
// minimal 4-generator set is the pragmatic, fully elementary choice and
// the expander-quality claim is not independently verified here - see
// DESIGN.md's Open Question entry.
func Generators(p *big.Int) [4]Element {
	one := big.NewInt(1)
	zero := big.NewInt(0)
	negOne := new(big.Int).Sub(p, one)
	return [4]Element{
		{one, one, zero, one},       // T
		{one, negOne, zero, one},    // T^-1
		{zero, negOne, one, zero},   // S
		{zero, one, negOne, zero},   // S^-1
	}
}

// Walk computes start * g_{word[0]} * g_{word[1]} * ... * g_{word[k-1]}
// over the generating set returned by Generators.
func Walk(p *big.Int, start Element, word []int) Element {
	g := Generators(p)
	cur := start
	for _, idx := range word {
		cur = Mul(p, cur, g[idx])
	}
	return cur
}

// CombineWalks computes the positional combination z[j] = (a[j] + c*b[j])
// mod |G| used by the signature protocol's response z_3 = combineWalks(y3,
// walk, c3): a blinding prefix a combined with the secret walk b under
// challenge c, reduced modulo the generator count so the result indexes
// back into Generators.
func CombineWalks(a, b []int, c int) []int {
	if len(a) != len(b) {
		common.SizeMismatch("sl2.CombineWalks", len(a), len(b))
	}
	out := make([]int, len(a))
	for j := range a {
		out[j] = ((a[j]+c*b[j])%4 + 4) % 4
	}
	return out
}

// byteWidth returns the whole-byte width needed to hold any value in
// [0, p).
func byteWidth(p *big.Int) int {
	return (p.BitLen() + 7) / 8
}

// Encode serializes e as four big-endian, byteWidth(p)-byte integers in
// order A, B, C, D - the canonical SL(2, Z_p) encoding of spec.md §4.3
// and §6.
func Encode(p *big.Int, e Element) []byte {
	w := byteWidth(p)
	out := make([]byte, 0, 4*w)
	out = append(out, padded(e.A, w)...)
	out = append(out, padded(e.B, w)...)
	out = append(out, padded(e.C, w)...)
	out = append(out, padded(e.D, w)...)
	return out
}

func padded(x *big.Int, w int) []byte {
	b := x.Bytes()
	if len(b) > w {
		b = b[len(b)-w:]
	}
	out := make([]byte, w)
	copy(out[w-len(b):], b)
	return out
}

// Decode parses a canonical SL(2, Z_p) element, validating that every
// component is in range and that the determinant invariant holds. A
// malformed or out-of-group encoding is exactly the "invalid SL2
// element" case of spec.md §7's SerializationError.
func Decode(p *big.Int, data []byte) (Element, error) {
	w := byteWidth(p)
	if len(data) < 4*w {
		return Element{}, common.ErrSerialization
	}
	a := new(big.Int).SetBytes(data[0*w : 1*w])
	b := new(big.Int).SetBytes(data[1*w : 2*w])
	c := new(big.Int).SetBytes(data[2*w : 3*w])
	d := new(big.Int).SetBytes(data[3*w : 4*w])
	for _, v := range []*big.Int{a, b, c, d} {
		if v.Cmp(p) >= 0 {
			return Element{}, common.ErrSerialization
		}
	}
	e := Element{a, b, c, d}
	if !Valid(p, e) {
		return Element{}, common.ErrSerialization
	}
	return e, nil
}

// EncodedSize returns the byte length Encode produces for modulus p.
func EncodedSize(p *big.Int) int {
	return 4 * byteWidth(p)
}
