// Package pool provides object pooling for the big.Int values and
// []*big.Int buffers that the arithmetic kernel allocates in hot loops
// (field.Matrix.MulVec/MulVecTranspose and tensor.Tensor.AddOuter).
//
// This mirrors the object-pooling discipline the teacher BBS+ library
// applies to its elliptic-curve points, adapted here to the plain
// math/big values the lattice and tensor arithmetic run on. Objects are
// zero-valued on Get and are not assumed to retain any particular
// capacity guarantee beyond what sync.Pool already provides.
//
// This is an internal package not intended for direct use by applications.
package pool

// DefaultSliceCapacity is the starting capacity for pooled slices of
// *big.Int, sized for the smallest MOS_128 vector (TDD's n=16).
const DefaultSliceCapacity = 16
