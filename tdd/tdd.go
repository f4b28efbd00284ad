package tdd

import (
	"io"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/oracle"
	"github.com/kmosaic/kmosaic/internal/sample"
	"github.com/kmosaic/kmosaic/internal/tensor"
	"github.com/kmosaic/kmosaic/params"
)

// noiseSigma is the Gaussian width used for the entrywise noise E added
// to the public tensor. spec.md §3's table only tabulates SLSS's sigma;
// TDD's "E is entry-wise Gaussian_σ" reuses the same value at both
// security levels.
const noiseSigma = 3.0

// PublicKey is the TDD public key: the rank-r-plus-noise tensor T, plus a
// linear commitment used by the multi-witness signature scheme.
type PublicKey struct {
	T tensor.Tensor

	// ASeed/Commitment give the signature scheme (kmosaic.Sign/Verify) a
	// sound, noise-free witness to the first rank-1 factor triple: a
	// fresh public matrix A (expanded from ASeed) and Commitment = A*a_0
	// mod q. Proving knowledge of the full factor decomposition via a
	// direct Sigma-protocol over T runs into the trilinearity of the
	// outer product (the blinded reveal leaves cross-terms the verifier
	// can't cancel, see DESIGN.md); committing to a single factor vector
	// linearly sidesteps that, at the cost of only binding the signature
	// to a_0 rather than the whole decomposition.
	ASeed      []byte
	Commitment field.Vector
}

// SecretKey is the rank-r factor decomposition (a_i, b_i, c_i).
type SecretKey struct {
	A, B, C []field.Vector
}

// sparseEncryptWeight bounds the nonzero-entry count used for TDD's
// per-encryption blinding vectors x, y and per-bit masks u_k. Keeping
// these sparse (rather than fully uniform) bounds the magnitude of the
// noise E's contribution to each contraction: a uniform vector would
// multiply E by an unrelated uniform field element, re-randomizing it
// across all of Z_q and making the q/4 threshold decode in Decrypt
// unreliable. See DESIGN.md.
func sparseEncryptWeight(n int) int {
	w := n / 3
	if w < 2 {
		w = 2
	}
	if w > n {
		w = n
	}
	return w
}

// Ciphertext is a TDD encryption: blinding vectors x, y, one masking
// vector u_k per message bit, and the masked scalars c_k.
type Ciphertext struct {
	X, Y field.Vector
	U    []field.Vector
	C    []*big.Int
}

func gaussianNoise(rng io.Reader) func() *big.Int {
	return func() *big.Int {
		x, err := sample.Gaussian(rng, noiseSigma)
		if err != nil {
			panic(err)
		}
		return x
	}
}

// KeyGen samples r factor triples uniformly and forms T = Sum a_i⊗b_i⊗c_i
// + E.
func KeyGen(p params.TDDParams, rng io.Reader) (PublicKey, SecretKey, error) {
	a := make([]field.Vector, p.R)
	b := make([]field.Vector, p.R)
	c := make([]field.Vector, p.R)
	for i := 0; i < p.R; i++ {
		var err error
		a[i], err = sample.UniformVector(rng, p.Q, p.N)
		if err != nil {
			return PublicKey{}, SecretKey{}, common.Wrap(err, "tdd.KeyGen: sample a")
		}
		b[i], err = sample.UniformVector(rng, p.Q, p.N)
		if err != nil {
			return PublicKey{}, SecretKey{}, common.Wrap(err, "tdd.KeyGen: sample b")
		}
		c[i], err = sample.UniformVector(rng, p.Q, p.N)
		if err != nil {
			return PublicKey{}, SecretKey{}, common.Wrap(err, "tdd.KeyGen: sample c")
		}
	}
	t := tensor.New(p.Q, p.N)
	for i := 0; i < p.R; i++ {
		t.AddOuter(a[i], b[i], c[i])
	}
	t.AddEntrywiseNoise(gaussianNoise(rng))

	aSeed, err := oracle.RandBytes(rng, common.SeedSize)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "tdd.KeyGen: commitment seed")
	}
	aMat, err := sample.ExpandMatrix(aSeed, p.N, p.N, p.Q)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "tdd.KeyGen: expand commitment matrix")
	}
	commitment := aMat.MulVec(a[0])

	return PublicKey{T: t, ASeed: aSeed, Commitment: commitment}, SecretKey{A: a, B: b, C: c}, nil
}

// Encrypt masks mu bit-by-bit into tensor contractions against fresh
// blinding vectors x, y and independent masking vectors u_k.
func Encrypt(p params.TDDParams, pk PublicKey, mu []byte, rng io.Reader) (Ciphertext, error) {
	weight := sparseEncryptWeight(p.N)
	xs, err := sample.SampleSparseTernary(rng, p.N, weight)
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "tdd.Encrypt: sample x")
	}
	ys, err := sample.SampleSparseTernary(rng, p.N, weight)
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "tdd.Encrypt: sample y")
	}
	x := xs.ToVector(p.Q)
	y := ys.ToVector(p.Q)
	bits := common.BytesToBits(mu)
	us := make([]field.Vector, len(bits))
	cs := make([]*big.Int, len(bits))
	half := new(big.Int).Rsh(p.Q, 1)
	for k, bit := range bits {
		us_, err := sample.SampleSparseTernary(rng, p.N, weight)
		if err != nil {
			return Ciphertext{}, common.Wrap(err, "tdd.Encrypt: sample u_k")
		}
		u := us_.ToVector(p.Q)
		kappa := tensor.Contract(pk.T, x, y, u)
		if bit == 1 {
			kappa = field.Add(kappa, half, p.Q)
		}
		us[k] = u
		cs[k] = kappa
	}
	return Ciphertext{X: x, Y: y, U: us, C: cs}, nil
}

// Decrypt recovers mu exactly (up to the noise E folded into the public
// tensor, which the low-rank recomputation below never touches) via
// Sum_i (a_i.x)(b_i.y)(c_i.u_k) for each bit position k.
func Decrypt(p params.TDDParams, sk SecretKey, ct Ciphertext) ([]byte, error) {
	half := new(big.Int).Rsh(p.Q, 1)
	bits := make([]int, len(ct.C))
	for k, ck := range ct.C {
		acc := big.NewInt(0)
		for i := range sk.A {
			ax := sk.A[i].Dot(ct.X)
			by := sk.B[i].Dot(ct.Y)
			cu := sk.C[i].Dot(ct.U[k])
			term := field.Mul(field.Mul(ax, by, p.Q), cu, p.Q)
			acc = field.Add(acc, term, p.Q)
		}
		w := field.Sub(ck, acc, p.Q)
		distZero := field.AbsCentered(w, p.Q)
		distHalf := field.AbsCentered(field.Sub(w, half, p.Q), p.Q)
		if distHalf.Cmp(distZero) < 0 {
			bits[k] = 1
		}
	}
	return common.BitsToBytes(bits), nil
}

// Scheme adapts the package-level functions to the internal/scheme.Scheme
// trait.
type Scheme struct {
	P params.TDDParams
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
