package tensor

import (
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
)

// Bytes serializes t as N*N*N little-endian 32-bit words in flat index
// order, the direct (uncompressed) encoding of a TDD public tensor.
func (t Tensor) Bytes() []byte {
	out := make([]byte, 0, 4*len(t.Entries))
	for _, x := range t.Entries {
		v := new(big.Int).Mod(x, big.NewInt(1<<32))
		u := v.Uint64()
		out = append(out, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
	}
	return out
}

// Parse parses the format Bytes produces for an n x n x n tensor mod q.
func Parse(data []byte, q *big.Int, n int) (Tensor, error) {
	need := n * n * n
	if len(data) < 4*need {
		return Tensor{}, common.ErrSerialization
	}
	t := New(q, n)
	for i := 0; i < need; i++ {
		b := data[4*i : 4*i+4]
		u := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24
		t.Entries[i] = new(big.Int).SetUint64(u)
	}
	return t, nil
}
