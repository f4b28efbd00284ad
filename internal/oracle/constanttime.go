package oracle

import (
	"crypto/subtle"
	"math/big"
)

// ConstantTimeEqBytes reports whether a and b are equal using a
// constant-time comparison. Unequal lengths are themselves treated as
// unequal without short-circuiting on length (subtle.ConstantTimeCompare
// already runs in time independent of content once lengths are known;
// lengths of the buffers compared here are always fixed by the caller's
// protocol, never secret-dependent).
func ConstantTimeEqBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ConstantTimeSelectBytes returns a if cond is true, b otherwise,
// touching both slices unconditionally. a and b must have equal length.
func ConstantTimeSelectBytes(cond bool, a, b []byte) []byte {
	if len(a) != len(b) {
		panic("oracle: ConstantTimeSelectBytes requires equal-length inputs")
	}
	out := make([]byte, len(a))
	c := 0
	if cond {
		c = 1
	}
	subtle.ConstantTimeCopy(1-c, out, b)
	subtle.ConstantTimeCopy(c, out, a)
	return out
}

// ConstantTimeEqInt compares two big.Int values for equality without a
// data-dependent early return, ported from the teacher's
// ConstantTimeEq/ConstantTimeCompare pair in bbs/utils.go and generalized
// beyond curve-order scalars.
func ConstantTimeEqInt(a, b *big.Int) bool {
	diff := new(big.Int).Xor(a, b)
	return diff.Sign() == 0
}
