package sample

import "github.com/kmosaic/kmosaic/internal/common"

// maxRejectedPeriod is the largest repetition period ValidateSeedEntropy
// rejects, per spec.md §7/§8: "period-≤-4 repetitions".
const maxRejectedPeriod = 4

// minDistinctBytes is the minimum number of distinct byte values a seed
// must contain.
const minDistinctBytes = 8

// ValidateSeedEntropy rejects a seed shorter than common.SeedSize bytes,
// or one that fails the entropy heuristic of spec.md §7: all-identical
// bytes, a stride-1 arithmetic run (ascending or descending), a
// repetition with period <= 4, or fewer than 8 distinct byte values.
// This is advisory: it catches gross non-randomness in caller-supplied
// seeds, not a substitute for drawing seeds from a real CSPRNG.
func ValidateSeedEntropy(seed []byte) error {
	if len(seed) < common.SeedSize {
		return common.ErrInsufficientEntropy
	}
	if allIdentical(seed) {
		return common.ErrInsufficientEntropy
	}
	if isStride1Run(seed) {
		return common.ErrInsufficientEntropy
	}
	if hasShortPeriod(seed, maxRejectedPeriod) {
		return common.ErrInsufficientEntropy
	}
	if distinctByteCount(seed) < minDistinctBytes {
		return common.ErrInsufficientEntropy
	}
	return nil
}

func allIdentical(seed []byte) bool {
	for _, b := range seed[1:] {
		if b != seed[0] {
			return false
		}
	}
	return true
}

func isStride1Run(seed []byte) bool {
	ascending, descending := true, true
	for i := 1; i < len(seed); i++ {
		if seed[i] != seed[i-1]+1 {
			ascending = false
		}
		if seed[i] != seed[i-1]-1 {
			descending = false
		}
	}
	return ascending || descending
}

func hasShortPeriod(seed []byte, maxPeriod int) bool {
	for p := 1; p <= maxPeriod; p++ {
		if periodHolds(seed, p) {
			return true
		}
	}
	return false
}

func periodHolds(seed []byte, p int) bool {
	for i := p; i < len(seed); i++ {
		if seed[i] != seed[i-p] {
			return false
		}
	}
	return true
}

func distinctByteCount(seed []byte) int {
	var seen [256]bool
	count := 0
	for _, b := range seed {
		if !seen[b] {
			seen[b] = true
			count++
		}
	}
	return count
}
