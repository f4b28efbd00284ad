package tensor

import (
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/pool"
)

// Tensor is an N x N x N array over Z_q, stored flat in
// i*N*N + j*N + l order.
type Tensor struct {
	Q       *big.Int
	N       int
	Entries []*big.Int
}

// New builds an all-zero N x N x N tensor.
func New(q *big.Int, n int) Tensor {
	e := make([]*big.Int, n*n*n)
	for i := range e {
		e[i] = big.NewInt(0)
	}
	return Tensor{Q: q, N: n, Entries: e}
}

func (t Tensor) idx(i, j, l int) int { return i*t.N*t.N + j*t.N + l }

// At returns T[i,j,l].
func (t Tensor) At(i, j, l int) *big.Int { return t.Entries[t.idx(i, j, l)] }

// Set assigns T[i,j,l].
func (t Tensor) Set(i, j, l int, v *big.Int) { t.Entries[t.idx(i, j, l)] = v }

// AddOuter adds the rank-1 outer product a⊗b⊗c to t in place, i.e.
// T[i,j,l] += a_i*b_j*c_l mod q, for one factor triple of the rank-r sum
// Σ a_i⊗b_i⊗c_i that defines a TDD public key.
func (t Tensor) AddOuter(a, b, c field.Vector) {
	if a.Len() != t.N || b.Len() != t.N || c.Len() != t.N {
		common.SizeMismatch("tensor.AddOuter", t.N, a.Len())
	}
	ab := pool.DefaultSlice.Get(t.N)
	defer pool.DefaultSlice.Put(ab)
	for i := 0; i < t.N; i++ {
		ab = ab[:0]
		for j := 0; j < t.N; j++ {
			ab = append(ab, field.Mul(a.Values[i], b.Values[j], t.Q))
		}
		for j := 0; j < t.N; j++ {
			for l := 0; l < t.N; l++ {
				term := field.Mul(ab[j], c.Values[l], t.Q)
				cur := t.At(i, j, l)
				t.Set(i, j, l, field.Add(cur, term, t.Q))
			}
		}
	}
}

// AddEntrywiseNoise adds noise() to every entry of t in place. The
// TDD keypair's public tensor is T = Σ a_i⊗b_i⊗c_i + E, with E supplied
// entrywise by a Gaussian sampler in the tdd package.
func (t Tensor) AddEntrywiseNoise(noise func() *big.Int) {
	for idx, v := range t.Entries {
		t.Entries[idx] = field.Add(v, noise(), t.Q)
	}
}

// ContractXY folds t against x and y over its first two indices,
// returning the length-N vector v with v_l = Σ_{i,j} T[i,j,l]·x_i·y_j,
// the shared intermediate behind every κ_k in TDD.Encrypt.
func (t Tensor) ContractXY(x, y field.Vector) field.Vector {
	if x.Len() != t.N || y.Len() != t.N {
		common.SizeMismatch("tensor.ContractXY", t.N, x.Len())
	}
	out := field.NewVector(t.Q, t.N)
	for l := 0; l < t.N; l++ {
		acc := big.NewInt(0)
		for i := 0; i < t.N; i++ {
			for j := 0; j < t.N; j++ {
				term := field.Mul(field.Mul(t.At(i, j, l), x.Values[i], t.Q), y.Values[j], t.Q)
				acc = field.Add(acc, term, t.Q)
			}
		}
		out.Values[l] = acc
	}
	return out
}

// Contract computes κ = Σ_{i,j,l} T[i,j,l]·x_i·y_j·u_l mod q for one
// masking vector u, by dotting ContractXY(x, y) against u.
func Contract(t Tensor, x, y, u field.Vector) *big.Int {
	return t.ContractXY(x, y).Dot(u)
}
