package sample

import (
	"fmt"
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/sha3"

	"github.com/kmosaic/kmosaic/internal/field"
)

// matrixCacheSize bounds the LRU cache of expanded SLSS matrices. A
// seed-compressed public key (spec.md §9 design note) re-expands its
// matrix A on every load; caching the last few expansions avoids paying
// that cost repeatedly when the same public key is used for a burst of
// operations.
const matrixCacheSize = 64

var (
	matrixCache     *lru.Cache
	matrixCacheOnce sync.Once
)

func getMatrixCache() *lru.Cache {
	matrixCacheOnce.Do(func() {
		c, err := lru.New(matrixCacheSize)
		if err != nil {
			panic(fmt.Sprintf("sample: failed to create matrix cache: %v", err))
		}
		matrixCache = c
	})
	return matrixCache
}

// seedXOF wraps a SHAKE256 extendable-output function seeded with dst and
// seed, exposing it as an io.Reader of unbounded deterministic pseudorandom
// output for the uniform samplers in this package to consume.
func seedXOF(dst string, seed []byte) sha3.ShakeHash {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(dst))
	_, _ = h.Write(seed)
	return h
}

// ExpandMatrix deterministically expands a 32-byte public seed into a
// rows x cols matrix over Z_q via SHAKE256, per SLSS.KeyGen's "sample
// matrix A ... by deterministic expansion of a 32-byte public seed"
// (spec.md §4.1). Results are cached by (seed, rows, cols, q).
func ExpandMatrix(seed []byte, rows, cols int, q *big.Int) (field.Matrix, error) {
	key := fmt.Sprintf("%x:%d:%d:%s", seed, rows, cols, q.String())
	cache := getMatrixCache()
	if v, ok := cache.Get(key); ok {
		return v.(field.Matrix), nil
	}
	xof := seedXOF("MOSAIC-SLSS-A", seed)
	m, err := UniformMatrix(xof, q, rows, cols)
	if err != nil {
		return field.Matrix{}, err
	}
	cache.Add(key, m)
	return m, nil
}
