package slss

import (
	"io"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/oracle"
	"github.com/kmosaic/kmosaic/internal/sample"
	"github.com/kmosaic/kmosaic/params"
)

// PublicKey is the SLSS public key. A is stored compressed as a 32-byte
// seed and re-expanded on demand via sample.ExpandMatrix, per the
// seed-compressed stance spec.md §9 leaves to the implementer (see
// DESIGN.md).
type PublicKey struct {
	Seed []byte
	M, N int
	Q    *big.Int
	T    field.Vector

	// T0 = A*s mod q, without the Gaussian error e. It exists solely so
	// the multi-witness signature's SLSS sub-proof (kmosaic.Sign/Verify)
	// has a noise-free linear target: the encryption public key t=A*s+e
	// can't serve as a Schnorr-style commitment, since the verifier's
	// recomputed A*z-c*t differs from the prover's A*y by c*e, which
	// generally isn't zero. See DESIGN.md.
	T0 field.Vector
}

// A re-expands the public matrix from Seed.
func (pk PublicKey) A() (field.Matrix, error) {
	return sample.ExpandMatrix(pk.Seed, pk.M, pk.N, pk.Q)
}

// SecretKey is the SLSS secret key: the sparse ternary vector s and the
// Gaussian error e used at KeyGen time.
type SecretKey struct {
	S *sample.SparseTernary
	E field.Vector
}

// Ciphertext is an SLSS encryption (u, v) of a bit string.
type Ciphertext struct {
	U field.Vector
	V field.Vector
}

// KeyGen samples A (via a fresh public seed), a sparse ternary secret s,
// a Gaussian error e, and sets t = A*s + e mod q.
func KeyGen(p params.SLSSParams, rng io.Reader) (PublicKey, SecretKey, error) {
	seed, err := oracle.RandBytes(rng, common.SeedSize)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "slss.KeyGen: seed")
	}
	a, err := sample.ExpandMatrix(seed, p.M, p.N, p.Q)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "slss.KeyGen: expand A")
	}
	s, err := sample.SampleSparseTernary(rng, p.N, p.W)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "slss.KeyGen: sample s")
	}
	e, err := sample.GaussianVector(rng, p.Sigma, p.M, p.Q)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "slss.KeyGen: sample e")
	}
	sVec := s.ToVector(p.Q)
	t0 := a.MulVec(sVec)
	t := t0.Add(e)
	pk := PublicKey{Seed: seed, M: p.M, N: p.N, Q: p.Q, T: t, T0: t0}
	sk := SecretKey{S: s, E: e}
	return pk, sk, nil
}

// Encrypt encodes mu bit-by-bit: u = A^T*r + e1 mod q, v_i = (t.r) + e2_i
// + floor(q/2)*mu_i mod q, for a fresh sparse ternary r.
func Encrypt(p params.SLSSParams, pk PublicKey, mu []byte, rng io.Reader) (Ciphertext, error) {
	a, err := pk.A()
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "slss.Encrypt: expand A")
	}
	r, err := sample.SampleSparseTernary(rng, p.M, p.W)
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "slss.Encrypt: sample r")
	}
	rVec := r.ToVector(p.Q)
	e1, err := sample.GaussianVector(rng, p.Sigma, p.N, p.Q)
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "slss.Encrypt: sample e1")
	}
	bits := common.BytesToBits(mu)
	e2, err := sample.GaussianVector(rng, p.Sigma, len(bits), p.Q)
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "slss.Encrypt: sample e2")
	}

	u := a.MulVecTranspose(rVec).Add(e1)

	tr := pk.T.Dot(rVec)
	half := new(big.Int).Rsh(p.Q, 1)
	v := field.NewVector(p.Q, len(bits))
	for i, bit := range bits {
		val := field.Add(tr, e2.Values[i], p.Q)
		if bit == 1 {
			val = field.Add(val, half, p.Q)
		}
		v.Values[i] = val
	}
	return Ciphertext{U: u, V: v}, nil
}

// Decrypt recovers mu by computing w_i = v_i - <s, u> mod q for every
// coordinate and thresholding against the centered distance to
// floor(q/2), per spec.md §4.1.
func Decrypt(p params.SLSSParams, sk SecretKey, ct Ciphertext) ([]byte, error) {
	sDot := sk.S.ToVector(p.Q).Dot(ct.U)
	half := new(big.Int).Rsh(p.Q, 1)
	bits := make([]int, ct.V.Len())
	for i, vi := range ct.V.Values {
		w := field.Sub(vi, sDot, p.Q)
		distZero := field.AbsCentered(w, p.Q)
		distHalf := field.AbsCentered(field.Sub(w, half, p.Q), p.Q)
		if distHalf.Cmp(distZero) < 0 {
			bits[i] = 1
		}
	}
	return common.BitsToBytes(bits), nil
}

// Scheme adapts the package-level KeyGen/Encrypt/Decrypt functions to
// the internal/scheme.Scheme[PublicKey, SecretKey, Ciphertext] trait.
type Scheme struct {
	P params.SLSSParams
}

func (s Scheme) KeyGen(rng io.Reader) (PublicKey, SecretKey, error) {
	return KeyGen(s.P, rng)
}

func (s Scheme) Encrypt(pk PublicKey, mu []byte, rng io.Reader) (Ciphertext, error) {
	return Encrypt(s.P, pk, mu, rng)
}

func (s Scheme) Decrypt(sk SecretKey, ct Ciphertext) ([]byte, error) {
	return Decrypt(s.P, sk, ct)
}
