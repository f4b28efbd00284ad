package params

import (
	"math"
	"math/big"

	"github.com/blang/semver"

	"github.com/kmosaic/kmosaic/internal/common"
)

// SecurityLevel selects a complete kMOSAIC parameter set.
type SecurityLevel int

const (
	// MOS_128 targets a 128-bit classical/quantum security level and is
	// the default level (spec.md §6).
	MOS_128 SecurityLevel = iota
	// MOS_256 targets a 256-bit security level.
	MOS_256
)

func (l SecurityLevel) String() string {
	switch l {
	case MOS_128:
		return "MOS_128"
	case MOS_256:
		return "MOS_256"
	default:
		return "MOS_UNKNOWN"
	}
}

// Tag returns the level's serialized tag byte used by
// serialize_public_key's level_tag field (spec.md §6).
func (l SecurityLevel) Tag() byte {
	switch l {
	case MOS_128:
		return 0x01
	case MOS_256:
		return 0x02
	default:
		return 0x00
	}
}

// LevelFromTag inverts SecurityLevel.Tag.
func LevelFromTag(tag byte) (SecurityLevel, error) {
	switch tag {
	case 0x01:
		return MOS_128, nil
	case 0x02:
		return MOS_256, nil
	default:
		return 0, common.ErrSerialization
	}
}

// SLSSParams are the Sparse Lattice Subset Sum parameters of spec.md §3.
type SLSSParams struct {
	N     int      // secret vector dimension
	M     int      // ciphertext/matrix row dimension
	Q     *big.Int // modulus (prime)
	W     int      // sparse weight
	Sigma float64  // Gaussian stddev
	Beta  *big.Int // norm bound, ~2*sigma*sqrt(N)
}

// TDDParams are the Tensor Decomposition Distinguishing parameters.
type TDDParams struct {
	N int      // tensor side length
	Q *big.Int // modulus
	R int      // rank
}

// EGRWParams are the Expander Graph Random Walk parameters.
type EGRWParams struct {
	P *big.Int // SL(2, Z_p) prime
	K int      // walk length
}

// Params is the complete parameter set for one SecurityLevel.
type Params struct {
	Level   SecurityLevel
	SLSS    SLSSParams
	TDD     TDDParams
	EGRW    EGRWParams
	Version semver.Version
}

// ProtocolVersion is the current kMOSAIC wire-format version, embedded
// nowhere in the spec.md wire layout directly but checked by this
// package against Params.Version so a future parameter-set revision is
// detected rather than silently misinterpreted as today's format.
var ProtocolVersion = semver.MustParse("1.0.0")

func mustPrime(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("params: invalid modulus literal " + s)
	}
	return n
}

func sparseBeta(sigma float64, n int) *big.Int {
	beta := 2 * sigma * math.Sqrt(float64(n))
	return big.NewInt(int64(math.Ceil(beta)))
}

// mersenne31 is 2^31 - 1.
var mersenne31 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 31), big.NewInt(1))

// mersenne61 is 2^61 - 1.
var mersenne61 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))

var table = map[SecurityLevel]Params{
	MOS_128: {
		Level: MOS_128,
		SLSS: SLSSParams{
			N: 512, M: 384, Q: mustPrime("7681"), W: 64, Sigma: 3.0,
			Beta: sparseBeta(3.0, 512),
		},
		TDD:     TDDParams{N: 16, Q: mustPrime("7681"), R: 4},
		EGRW:    EGRWParams{P: mersenne31, K: 64},
		Version: ProtocolVersion,
	},
	MOS_256: {
		Level: MOS_256,
		SLSS: SLSSParams{
			N: 1024, M: 768, Q: mustPrime("12289"), W: 96, Sigma: 3.0,
			Beta: sparseBeta(3.0, 1024),
		},
		TDD:     TDDParams{N: 24, Q: mustPrime("12289"), R: 6},
		EGRW:    EGRWParams{P: mersenne61, K: 128},
		Version: ProtocolVersion,
	},
}

// For returns the Params record for level, or ErrInvalidParams if level is
// not one of the closed enum values.
func For(level SecurityLevel) (Params, error) {
	p, ok := table[level]
	if !ok {
		return Params{}, common.ErrInvalidParams
	}
	return p, nil
}

// Default returns the default parameter set, MOS_128 per spec.md §6.
func Default() Params {
	p, _ := For(MOS_128)
	return p
}

// Validate checks dimension and modulus consistency, raising
// ErrInvalidParams for anything that would make the arithmetic kernel's
// size invariants (enforced elsewhere via common.SizeMismatch panics)
// unreachable from caller-supplied data.
func (p Params) Validate() error {
	if p.SLSS.N <= 0 || p.SLSS.M <= 0 || p.SLSS.W <= 0 || p.SLSS.W > p.SLSS.N {
		return common.ErrInvalidParams
	}
	if p.SLSS.Q == nil || p.SLSS.Q.Sign() <= 0 {
		return common.ErrInvalidParams
	}
	if p.TDD.N <= 0 || p.TDD.R <= 0 || p.TDD.Q == nil || p.TDD.Q.Sign() <= 0 {
		return common.ErrInvalidParams
	}
	if p.EGRW.P == nil || p.EGRW.P.Sign() <= 0 || p.EGRW.K <= 0 {
		return common.ErrInvalidParams
	}
	if !p.Version.EQ(ProtocolVersion) {
		return common.ErrInvalidParams
	}
	return nil
}
