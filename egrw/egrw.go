package egrw

import (
	"io"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/oracle"
	"github.com/kmosaic/kmosaic/internal/sample"
	"github.com/kmosaic/kmosaic/internal/sl2"
	"github.com/kmosaic/kmosaic/params"
)

// PublicKey is the EGRW public key: the start and end vertices of the
// secret walk in SL(2, Z_p), plus a linear commitment to the walk used
// by the multi-witness signature scheme.
type PublicKey struct {
	VStart, VEnd sl2.Element

	// ASeed/Commitment give kmosaic.Sign/Verify a sound witness to the
	// secret walk: a fresh public matrix A over Z_p (expanded from
	// ASeed) and Commitment = A*walkVec mod p, where walkVec embeds the
	// walk's generator indices as field elements. A Sigma-protocol
	// verification directly over SL(2, Z_p) group elements would need
	// index addition mod 4 (CombineWalks) to correspond to exponentiation
	// in the group, which only holds if the four generators are powers
	// of a single element - i.e. a cyclic subgroup, which would destroy
	// the expander's mixing property the scheme's hardness relies on.
	// This commitment sidesteps that tension; see DESIGN.md.
	ASeed      []byte
	Commitment field.Vector
}

// SecretKey is the secret walk word, plus the start vertex needed to
// re-derive VEnd at decrypt time (spec.md §4.3: "recompute the same
// shared-secret derivation using the secret walk to align paths").
type SecretKey struct {
	Walk   []int
	VStart sl2.Element
}

// Ciphertext is an EGRW encryption: the commitment path vertex v_mid and
// the message masked with a hash of the shared group element.
type Ciphertext struct {
	VMid sl2.Element
	C    []byte
}

var generatorCount = big.NewInt(4)

func randomWord(rng io.Reader, k int) ([]int, error) {
	out := make([]int, k)
	for i := 0; i < k; i++ {
		v, err := sample.Uniform(rng, generatorCount)
		if err != nil {
			return nil, err
		}
		out[i] = int(v.Int64())
	}
	return out, nil
}

// WalkVector embeds a walk's generator indices (each in [0, 4)) as a
// field.Vector mod q, for use in the signature scheme's linear
// commitment to a walk.
func WalkVector(walk []int, q *big.Int) field.Vector {
	v := field.NewVector(q, len(walk))
	for i, idx := range walk {
		v.Values[i] = big.NewInt(int64(idx))
	}
	return v
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i%len(b)]
	}
	return out
}

// KeyGen samples a mixing word to derive a pseudo-uniform start vertex
// from the group identity, then a secret walk word w, and sets
// v_end = v_start . g_w1 . g_w2 . ... . g_wk.
func KeyGen(p params.EGRWParams, rng io.Reader) (PublicKey, SecretKey, error) {
	mixWord, err := randomWord(rng, p.K)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "egrw.KeyGen: mix word")
	}
	vStart := sl2.Walk(p.P, sl2.Identity(), mixWord)

	walk, err := randomWord(rng, p.K)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "egrw.KeyGen: walk")
	}
	vEnd := sl2.Walk(p.P, vStart, walk)

	aSeed, err := oracle.RandBytes(rng, common.SeedSize)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "egrw.KeyGen: commitment seed")
	}
	aMat, err := sample.ExpandMatrix(aSeed, p.K, p.K, p.P)
	if err != nil {
		return PublicKey{}, SecretKey{}, common.Wrap(err, "egrw.KeyGen: expand commitment matrix")
	}
	commitment := aMat.MulVec(WalkVector(walk, p.P))

	return PublicKey{VStart: vStart, VEnd: vEnd, ASeed: aSeed, Commitment: commitment},
		SecretKey{Walk: walk, VStart: vStart}, nil
}

// Encrypt samples a fresh commitment walk w', derives v_mid = v_start .
// g_w'1 ... g_w'k, and masks mu with SHAKE256 of the canonical encoding
// of v_mid . v_end.
func Encrypt(p params.EGRWParams, pk PublicKey, mu []byte, rng io.Reader) (Ciphertext, error) {
	wPrime, err := randomWord(rng, p.K)
	if err != nil {
		return Ciphertext{}, common.Wrap(err, "egrw.Encrypt: commitment walk")
	}
	vMid := sl2.Walk(p.P, pk.VStart, wPrime)
	combined := sl2.Mul(p.P, vMid, pk.VEnd)
	keystream := oracle.Shake256(len(mu), []byte("MOSAIC-EGRW-MASK"), sl2.Encode(p.P, combined))
	return Ciphertext{VMid: vMid, C: xorBytes(mu, keystream)}, nil
}

// Decrypt re-derives v_end from the secret walk and v_start, recomputes
// the same shared group element, and unmasks mu.
func Decrypt(p params.EGRWParams, sk SecretKey, ct Ciphertext) ([]byte, error) {
	vEnd := sl2.Walk(p.P, sk.VStart, sk.Walk)
	combined := sl2.Mul(p.P, ct.VMid, vEnd)
	keystream := oracle.Shake256(len(ct.C), []byte("MOSAIC-EGRW-MASK"), sl2.Encode(p.P, combined))
	return xorBytes(ct.C, keystream), nil
}

// Scheme adapts the package-level functions to the internal/scheme.Scheme
// trait.
type Scheme struct {
	P params.EGRWParams
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
