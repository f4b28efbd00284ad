package pool

import (
	"math/big"
	"sync"
)

// BigIntPool recycles *big.Int scratch values used while reducing
// modular sums inside the arithmetic kernel.
type BigIntPool struct {
	pool sync.Pool
}

// NewBigIntPool creates a pool of zero-valued big.Int scratch values.
func NewBigIntPool() *BigIntPool {
	return &BigIntPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(big.Int)
			},
		},
	}
}

// Get returns a big.Int reset to zero.
func (p *BigIntPool) Get() *big.Int {
	return p.pool.Get().(*big.Int).SetInt64(0)
}

// Put returns a big.Int to the pool. v must not be retained by the caller
// afterward, since its backing words may be reused by a future Get.
func (p *BigIntPool) Put(v *big.Int) {
	if v != nil {
		p.pool.Put(v)
	}
}

// SlicePool recycles []*big.Int slices, e.g. the per-row coordinate buffer
// tensor.Tensor.AddOuter uses during TDD key generation.
type SlicePool struct {
	pool sync.Pool
}

// NewSlicePool creates a pool of []*big.Int slices.
func NewSlicePool() *SlicePool {
	return &SlicePool{
		pool: sync.Pool{
			New: func() interface{} {
				return make([]*big.Int, 0, DefaultSliceCapacity)
			},
		},
	}
}

// Get returns a slice with length 0 and at least the requested capacity.
func (p *SlicePool) Get(capacity int) []*big.Int {
	s := p.pool.Get().([]*big.Int)
	if cap(s) < capacity {
		return make([]*big.Int, 0, capacity)
	}
	return s[:0]
}

// Put returns a slice to the pool.
func (p *SlicePool) Put(s []*big.Int) {
	if s != nil {
		p.pool.Put(s) //nolint:staticcheck // pooled slice reused by Get
	}
}

// Default pools shared process-wide, mirroring the teacher's single
// defaultPool singleton.
var (
	DefaultBigInt = NewBigIntPool()
	DefaultSlice  = NewSlicePool()
)
