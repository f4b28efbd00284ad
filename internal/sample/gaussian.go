package sample

import (
	"encoding/binary"
	"io"
	"math"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/field"
)

// tailCutSigmas bounds the discrete Gaussian's support to ±tailCutSigmas*σ,
// beyond which the rejection sampler below would reject essentially every
// draw anyway. spec.md §1 disclaims formal-proof security for the whole
// construction; this sampler is a practical rejection sampler, not a
// provably-correct one (no Karney/CDT-style bias elimination).
const tailCutSigmas = 8.0

// Gaussian draws one sample from the discrete Gaussian over Z centered at
// 0 with standard deviation sigma, via rejection sampling: draw x
// uniformly from the truncated support, accept with probability
// exp(-x^2 / (2*sigma^2)).
func Gaussian(rng io.Reader, sigma float64) (*big.Int, error) {
	tailCut := int64(math.Ceil(tailCutSigmas * sigma))
	span := 2*tailCut + 1
	for {
		u, err := uniformUint64(rng, uint64(span))
		if err != nil {
			return nil, err
		}
		x := int64(u) - tailCut
		prob := math.Exp(-float64(x*x) / (2 * sigma * sigma))
		coin, err := uniformFloat64(rng)
		if err != nil {
			return nil, err
		}
		if coin <= prob {
			return big.NewInt(x), nil
		}
	}
}

// GaussianVector draws n independent Gaussian(rng, sigma) samples.
func GaussianVector(rng io.Reader, sigma float64, n int, q *big.Int) (field.Vector, error) {
	v := field.NewVector(q, n)
	for i := 0; i < n; i++ {
		x, err := Gaussian(rng, sigma)
		if err != nil {
			return field.Vector{}, err
		}
		v.Values[i] = x
	}
	return v, nil
}

// uniformUint64 draws a value uniform in [0, bound) via rejection
// sampling over 8-byte reads.
func uniformUint64(rng io.Reader, bound uint64) (uint64, error) {
	if bound == 0 {
		return 0, nil
	}
	limit := (math.MaxUint64 / bound) * bound
	buf := make([]byte, 8)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint64(buf)
		if v < limit {
			return v % bound, nil
		}
	}
}

// uniformFloat64 draws a value uniform in [0, 1) with 53 bits of
// precision from 8 random bytes.
func uniformFloat64(rng io.Reader) (float64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(buf) >> 11 // top 53 bits
	return float64(v) / float64(1<<53), nil
}
