package sample

import (
	"io"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/field"
)

// Uniform draws a uniformly random value in [0, q) from rng via rejection
// sampling, generalizing the teacher's ConstantTimeRandom (bbs/utils.go)
// from a fixed curve order to an arbitrary modulus.
func Uniform(rng io.Reader, q *big.Int) (*big.Int, error) {
	byteLen := (q.BitLen() + 7) / 8
	bits := q.BitLen() % 8
	mask := byte(0xFF)
	if bits > 0 {
		mask = byte((1 << bits) - 1)
	}
	buf := make([]byte, byteLen)
	result := new(big.Int)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		result.SetBytes(buf)
		if result.Cmp(q) < 0 {
			return result, nil
		}
	}
}

// UniformVector draws n independent Uniform(rng, q) values.
func UniformVector(rng io.Reader, q *big.Int, n int) (field.Vector, error) {
	v := field.NewVector(q, n)
	for i := 0; i < n; i++ {
		x, err := Uniform(rng, q)
		if err != nil {
			return field.Vector{}, err
		}
		v.Values[i] = x
	}
	return v, nil
}

// UniformMatrix draws a rows x cols matrix of independent Uniform(rng, q)
// entries.
func UniformMatrix(rng io.Reader, q *big.Int, rows, cols int) (field.Matrix, error) {
	m := field.NewMatrix(q, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, err := Uniform(rng, q)
			if err != nil {
				return field.Matrix{}, err
			}
			m.Set(i, j, x)
		}
	}
	return m, nil
}
