package sample

import (
	"io"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
)

// SparseTernary is a vector in {-1, 0, +1}^N with exactly W nonzero
// entries - the sparse secret/ephemeral vectors SLSS.KeyGen and
// SLSS.Encrypt sample (spec.md §3, §4.1). The nonzero support is tracked
// as a compact bitset rather than a dense []int8, which is the shape a
// serialized sparse secret key would actually want to take (support
// bitmask + sign bits, instead of N full bytes of mostly zero).
type SparseTernary struct {
	N       int
	W       int
	Support *bitset.BitSet // bit i set iff entry i is nonzero
	Signs   *bitset.BitSet // meaningful only where Support is set; 1 = -1, 0 = +1
}

// SampleSparseTernary draws a uniformly random support of exactly w
// positions out of n (via rejection sampling on position draws) and an
// independent uniform sign for each.
func SampleSparseTernary(rng io.Reader, n, w int) (*SparseTernary, error) {
	if w > n {
		panic("sample: sparse weight exceeds vector length")
	}
	support := bitset.New(uint(n))
	signs := bitset.New(uint(n))
	nBig := big.NewInt(int64(n))

	chosen := 0
	for chosen < w {
		pos, err := Uniform(rng, nBig)
		if err != nil {
			return nil, err
		}
		p := uint(pos.Int64())
		if support.Test(p) {
			continue
		}
		support.Set(p)
		bit, err := uniformUint64(rng, 2)
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			signs.Set(p)
		}
		chosen++
	}
	return &SparseTernary{N: n, W: w, Support: support, Signs: signs}, nil
}

// ToVector materializes the sparse vector as a dense field.Vector mod q,
// with -1 represented as q-1.
func (s *SparseTernary) ToVector(q *big.Int) field.Vector {
	v := field.NewVector(q, s.N)
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	for i := 0; i < s.N; i++ {
		if !s.Support.Test(uint(i)) {
			continue
		}
		if s.Signs.Test(uint(i)) {
			v.Values[i] = new(big.Int).Set(qMinus1)
		} else {
			v.Values[i] = big.NewInt(1)
		}
	}
	return v
}

// Bytes serializes the sparse vector as support bitset bytes followed by
// sign bitset bytes, each ceil(N/8) bytes long, packing bit i into byte
// i/8 at offset i%8.
func (s *SparseTernary) Bytes() []byte {
	pack := func(bs *bitset.BitSet) []byte {
		out := make([]byte, (s.N+7)/8)
		for i := 0; i < s.N; i++ {
			if bs.Test(uint(i)) {
				out[i/8] |= 1 << uint(i%8)
			}
		}
		return out
	}
	out := make([]byte, 0, 2*((s.N+7)/8))
	out = append(out, pack(s.Support)...)
	out = append(out, pack(s.Signs)...)
	return out
}

// ParseSparseTernary parses the format Bytes produces for an n-length,
// w-weight sparse vector.
func ParseSparseTernary(data []byte, n, w int) (*SparseTernary, error) {
	byteLen := (n + 7) / 8
	if len(data) < 2*byteLen {
		return nil, common.ErrSerialization
	}
	unpack := func(b []byte) *bitset.BitSet {
		bs := bitset.New(uint(n))
		for i := 0; i < n; i++ {
			if b[i/8]&(1<<uint(i%8)) != 0 {
				bs.Set(uint(i))
			}
		}
		return bs
	}
	support := unpack(data[:byteLen])
	signs := unpack(data[byteLen : 2*byteLen])
	return &SparseTernary{N: n, W: w, Support: support, Signs: signs}, nil
}
