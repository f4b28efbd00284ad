package field

import (
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/pool"
)

// Matrix is an M x N matrix over Z_q stored row-major.
type Matrix struct {
	Q       *big.Int
	Rows    int
	Cols    int
	Entries []*big.Int // length Rows*Cols, row-major
}

// NewMatrix builds an all-zero Rows x Cols matrix.
func NewMatrix(q *big.Int, rows, cols int) Matrix {
	e := make([]*big.Int, rows*cols)
	for i := range e {
		e[i] = big.NewInt(0)
	}
	return Matrix{Q: q, Rows: rows, Cols: cols, Entries: e}
}

// At returns the (i, j) entry.
func (m Matrix) At(i, j int) *big.Int {
	return m.Entries[i*m.Cols+j]
}

// Set assigns the (i, j) entry.
func (m Matrix) Set(i, j int, v *big.Int) {
	m.Entries[i*m.Cols+j] = v
}

// MulVec computes A*x mod q for x of length Cols, returning a vector of
// length Rows. This is the A·s (+ A·r) step of SLSS.
func (m Matrix) MulVec(x Vector) Vector {
	if x.Len() != m.Cols {
		common.SizeMismatch("field.Matrix.MulVec", m.Cols, x.Len())
	}
	out := NewVector(m.Q, m.Rows)
	acc := pool.DefaultBigInt.Get()
	term := pool.DefaultBigInt.Get()
	defer pool.DefaultBigInt.Put(acc)
	defer pool.DefaultBigInt.Put(term)
	for i := 0; i < m.Rows; i++ {
		acc.SetInt64(0)
		for j := 0; j < m.Cols; j++ {
			term.Mul(m.At(i, j), x.Values[j])
			term.Mod(term, m.Q)
			AddInto(acc, acc, term, m.Q)
		}
		out.Values[i] = new(big.Int).Set(acc)
	}
	return out
}

// MulVecTranspose computes A^T * x mod q for x of length Rows, returning
// a vector of length Cols. This is the A^T·r step of SLSS.Encrypt.
func (m Matrix) MulVecTranspose(x Vector) Vector {
	if x.Len() != m.Rows {
		common.SizeMismatch("field.Matrix.MulVecTranspose", m.Rows, x.Len())
	}
	out := NewVector(m.Q, m.Cols)
	acc := pool.DefaultBigInt.Get()
	term := pool.DefaultBigInt.Get()
	defer pool.DefaultBigInt.Put(acc)
	defer pool.DefaultBigInt.Put(term)
	for j := 0; j < m.Cols; j++ {
		acc.SetInt64(0)
		for i := 0; i < m.Rows; i++ {
			term.Mul(m.At(i, j), x.Values[i])
			term.Mod(term, m.Q)
			AddInto(acc, acc, term, m.Q)
		}
		out.Values[j] = new(big.Int).Set(acc)
	}
	return out
}
