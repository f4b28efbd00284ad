package field

import (
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
)

// Vector is a fixed-length vector of Z_q elements.
type Vector struct {
	Q      *big.Int
	Values []*big.Int
}

// NewVector builds a Vector of the given length with every entry zero.
func NewVector(q *big.Int, n int) Vector {
	vs := make([]*big.Int, n)
	for i := range vs {
		vs[i] = big.NewInt(0)
	}
	return Vector{Q: q, Values: vs}
}

// Len returns the vector's dimension.
func (v Vector) Len() int { return len(v.Values) }

// CheckNorm reports whether every coordinate's centered absolute value
// is at most beta, the infinity-norm bound spec.md §4.6 rejects a
// signature response against.
func (v Vector) CheckNorm(beta *big.Int) bool {
	for _, x := range v.Values {
		if AbsCentered(x, v.Q).Cmp(beta) > 0 {
			return false
		}
	}
	return true
}

// Add returns v + w mod q, element-wise.
func (v Vector) Add(w Vector) Vector {
	if v.Len() != w.Len() {
		common.SizeMismatch("field.Vector.Add", v.Len(), w.Len())
	}
	out := NewVector(v.Q, v.Len())
	for i := range v.Values {
		out.Values[i] = Add(v.Values[i], w.Values[i], v.Q)
	}
	return out
}

// Sub returns v - w mod q, element-wise.
func (v Vector) Sub(w Vector) Vector {
	if v.Len() != w.Len() {
		common.SizeMismatch("field.Vector.Sub", v.Len(), w.Len())
	}
	out := NewVector(v.Q, v.Len())
	for i := range v.Values {
		out.Values[i] = Sub(v.Values[i], w.Values[i], v.Q)
	}
	return out
}

// ScalarMul returns c*v mod q, element-wise.
func (v Vector) ScalarMul(c *big.Int) Vector {
	out := NewVector(v.Q, v.Len())
	for i := range v.Values {
		out.Values[i] = Mul(v.Values[i], c, v.Q)
	}
	return out
}

// Dot returns the inner product <v, w> mod q.
func (v Vector) Dot(w Vector) *big.Int {
	if v.Len() != w.Len() {
		common.SizeMismatch("field.Vector.Dot", v.Len(), w.Len())
	}
	acc := big.NewInt(0)
	for i := range v.Values {
		acc = Add(acc, Mul(v.Values[i], w.Values[i], v.Q), v.Q)
	}
	return acc
}

// Zeroize overwrites every element of v with zero in place. It is meant
// for ephemeral vectors (a rejected Sign attempt's blinding vectors, a
// Decapsulate scratch value) whose backing big.Int digits would otherwise
// linger on the heap after the vector goes out of scope - it does not, by
// itself, guarantee the runtime never moved or copied those digits
// earlier, the same best-effort caveat oracle.Zeroize carries.
func (v Vector) Zeroize() {
	for _, x := range v.Values {
		if x != nil {
			x.SetInt64(0)
		}
	}
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	out := NewVector(v.Q, v.Len())
	for i, x := range v.Values {
		out.Values[i] = new(big.Int).Set(x)
	}
	return out
}

// Bytes serializes v as a sequence of ElemWidth(v.Q)-byte little-endian
// words, one per element, wide enough to hold any value mod v.Q without
// truncation (spec.md §6's "32-bit little-endian" scalar encoding sized
// to the modulus actually in play, the same way sl2.Encode sizes its
// words to byteWidth(p) instead of a fixed width).
func (v Vector) Bytes() []byte {
	w := ElemWidth(v.Q)
	out := make([]byte, 0, w*v.Len())
	for _, x := range v.Values {
		out = append(out, littleEndianWord(x, w)...)
	}
	return out
}

// ElemByteLen returns the per-element wire width ParseVector expects for
// modulus q, so callers computing field offsets around a serialized
// Vector don't have to hardcode a word size.
func ElemByteLen(q *big.Int) int {
	return ElemWidth(q)
}

// ParseVector parses n little-endian, ElemWidth(q)-byte words from data
// into a Vector mod q.
func ParseVector(data []byte, q *big.Int, n int) (Vector, error) {
	w := ElemWidth(q)
	if len(data) < w*n {
		return Vector{}, common.ErrSerialization
	}
	out := NewVector(q, n)
	for i := 0; i < n; i++ {
		out.Values[i] = fromLittleEndianWord(data[w*i : w*i+w])
	}
	return out, nil
}

func littleEndianWord(x *big.Int, w int) []byte {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(w*8))
	v := new(big.Int).Mod(x, mod)
	out := make([]byte, w)
	for i := 0; i < w; i++ {
		b := new(big.Int).And(v, big.NewInt(0xff))
		out[i] = byte(b.Uint64())
		v.Rsh(v, 8)
	}
	return out
}

func fromLittleEndianWord(b []byte) *big.Int {
	out := new(big.Int)
	for i := len(b) - 1; i >= 0; i-- {
		out.Lsh(out, 8)
		out.Or(out, big.NewInt(int64(b[i])))
	}
	return out
}
