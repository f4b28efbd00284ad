package kmosaic

import (
	"io"
	"math/big"
	"time"

	"github.com/kmosaic/kmosaic/egrw"
	"github.com/kmosaic/kmosaic/entanglement"
	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/oracle"
	"github.com/kmosaic/kmosaic/internal/sample"
	"github.com/kmosaic/kmosaic/params"
	"github.com/kmosaic/kmosaic/pkg/klog"
	"github.com/kmosaic/kmosaic/slss"
	"github.com/kmosaic/kmosaic/tdd"
)

// Ciphertext is the composite KEM ciphertext of spec.md §3: one
// ciphertext per sub-scheme plus the NIZK proof that all three
// encapsulate the same message.
type Ciphertext struct {
	C1    slss.Ciphertext
	C2    tdd.Ciphertext
	C3    egrw.Ciphertext
	Proof entanglement.Proof
}

// coreBytes serializes the three sub-ciphertexts without the proof, the
// binding input to the NIZK challenge in spec.md §4.4.
func (ct Ciphertext) coreBytes(p params.Params) []byte {
	out := make([]byte, 0)
	out = append(out, ct.C1.Bytes()...)
	out = append(out, ct.C2.Bytes()...)
	out = append(out, ct.C3.Bytes(p.EGRW.P)...)
	return out
}

func deriveSubCiphertexts(p params.Params, pk PublicKey, mu []byte) (slss.Ciphertext, tdd.Ciphertext, egrw.Ciphertext, error) {
	randBuf := oracle.Shake256(96, []byte(common.DSTKEMRand), mu, pk.Binding[:])
	rSLSS, rTDD, rEGRW := randBuf[0:32], randBuf[32:64], randBuf[64:96]

	// Each DeterministicReader absorbs its slice into a SHAKE256 sponge at
	// construction time and keeps no reference to it afterward, so randBuf
	// can be zeroized as soon as all three readers exist.
	slssRng := oracle.DeterministicReader(common.DSTKEMRand+"-SLSS", rSLSS)
	tddRng := oracle.DeterministicReader(common.DSTKEMRand+"-TDD", rTDD)
	egrwRng := oracle.DeterministicReader(common.DSTKEMRand+"-EGRW", rEGRW)
	oracle.Zeroize(randBuf)

	c1, err := slss.Encrypt(p.SLSS, pk.SLSSPK, mu, slssRng)
	if err != nil {
		return slss.Ciphertext{}, tdd.Ciphertext{}, egrw.Ciphertext{}, common.Wrap(err, "kmosaic: encrypt slss")
	}
	c2, err := tdd.Encrypt(p.TDD, pk.TDDPK, mu, tddRng)
	if err != nil {
		return slss.Ciphertext{}, tdd.Ciphertext{}, egrw.Ciphertext{}, common.Wrap(err, "kmosaic: encrypt tdd")
	}
	c3, err := egrw.Encrypt(p.EGRW, pk.EGRWPK, mu, egrwRng)
	if err != nil {
		return slss.Ciphertext{}, tdd.Ciphertext{}, egrw.Ciphertext{}, common.Wrap(err, "kmosaic: encrypt egrw")
	}
	return c1, c2, c3, nil
}

// encapsulateCore implements the Encapsulate algorithm of spec.md §4.5
// steps 2-6, parameterized on mu so both Encapsulate and
// EncapsulateDeterministic share one path - the derandomized FO-transform
// base encryption deriving all per-scheme randomness from mu rather than
// from a fresh rng draw is exactly what makes EncapsulateDeterministic
// well-defined.
func encapsulateCore(p params.Params, pk PublicKey, mu []byte) (Ciphertext, [32]byte, error) {
	c1, c2, c3, err := deriveSubCiphertexts(p, pk, mu)
	if err != nil {
		return Ciphertext{}, [32]byte{}, err
	}

	partial := Ciphertext{C1: c1, C2: c2, C3: c3}
	coreBytes := partial.coreBytes(p)

	proofSeed := oracle.Shake256(common.SeedSize, []byte(common.DSTKEMRand+"-NIZK"), mu, pk.Binding[:])
	proofRng := oracle.DeterministicReader(common.DSTKEMRand+"-NIZK2", proofSeed)
	muInt := new(big.Int).SetBytes(mu)
	proof, err := entanglement.ProveConsistency(p.SLSS.Q, p.TDD.Q, p.EGRW.P, pk.Binding, coreBytes, muInt, proofRng)
	if err != nil {
		return Ciphertext{}, [32]byte{}, common.Wrap(err, "kmosaic: nizk proof")
	}

	ct := Ciphertext{C1: c1, C2: c2, C3: c3, Proof: proof}
	ctBytes := ct.Bytes(p)
	var k [32]byte
	copy(k[:], oracle.Shake256(32, []byte(common.DSTKEMKey), mu, ctBytes, pk.Binding[:]))
	return ct, k, nil
}

// Encapsulate draws a fresh 32-byte message mu, validates its entropy,
// and runs the FO-transform encapsulation of spec.md §4.5.
func Encapsulate(pk PublicKey, rng io.Reader) (Ciphertext, [32]byte, error) {
	start := time.Now()
	p, err := params.For(pk.Level)
	if err != nil {
		return Ciphertext{}, [32]byte{}, err
	}
	mu, err := oracle.RandBytes(rng, common.SeedSize)
	if err != nil {
		return Ciphertext{}, [32]byte{}, common.Wrap(err, "kmosaic.Encapsulate: mu")
	}
	if err := sample.ValidateSeedEntropy(mu); err != nil {
		oracle.Zeroize(mu)
		klog.Operation("Encapsulate", pk.Level.Tag(), start, "insufficient_entropy")
		return Ciphertext{}, [32]byte{}, err
	}
	// mu is freshly drawn and owned entirely by this call - unlike
	// EncapsulateDeterministic's caller-supplied mu, it is safe to zeroize
	// once encapsulateCore has folded it into ct and k.
	ct, k, err := encapsulateCore(p, pk, mu)
	oracle.Zeroize(mu)
	if err != nil {
		klog.Operation("Encapsulate", pk.Level.Tag(), start, "error")
		return Ciphertext{}, [32]byte{}, err
	}
	klog.Operation("Encapsulate", pk.Level.Tag(), start, "ok")
	return ct, k, nil
}

// EncapsulateDeterministic skips the initial rand_bytes(32) draw,
// encapsulating the caller-supplied mu directly. Two invocations with the
// same (pk, mu) produce bit-identical ciphertexts and shared secrets,
// since encapsulateCore derives every random choice from mu.
func EncapsulateDeterministic(pk PublicKey, mu []byte) (Ciphertext, [32]byte, error) {
	if len(mu) != common.SeedSize {
		return Ciphertext{}, [32]byte{}, common.ErrInvalidParams
	}
	p, err := params.For(pk.Level)
	if err != nil {
		return Ciphertext{}, [32]byte{}, err
	}
	return encapsulateCore(p, pk, mu)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Decapsulate implements spec.md §4.5's branch-free FO-transform
// decapsulation. It never reports the kind of failure: an invalid
// ciphertext silently yields deterministic-but-unpredictable
// pseudorandom output derived from sk.Seed instead of an error, so the
// caller cannot distinguish implicit rejection from success by timing or
// return shape.
func Decapsulate(sk SecretKey, pk PublicKey, ct Ciphertext) [32]byte {
	start := time.Now()
	p, err := params.For(pk.Level)
	if err != nil {
		// An invalid level can only arise from a corrupted in-memory
		// PublicKey, not from ciphertext content; fall back to the default
		// parameter set rather than surfacing the error, so implicit
		// rejection's "never report the kind of failure" contract extends
		// even to a malformed key.
		p = params.Default()
	}

	binding := recomputeBinding(p, pk.SLSSPK, pk.TDDPK, pk.EGRWPK)
	bindingOK := oracle.ConstantTimeEqBytes(binding[:], pk.Binding[:])

	mu1, err1 := slss.Decrypt(p.SLSS, sk.SLSSSK, ct.C1)
	mu2, err2 := tdd.Decrypt(p.TDD, sk.TDDSK, ct.C2)
	mu3, err3 := egrw.Decrypt(p.EGRW, sk.EGRWSK, ct.C3)
	decryptOK := err1 == nil && err2 == nil && err3 == nil
	mu := mu1
	if !decryptOK {
		mu = make([]byte, common.SeedSize)
	}
	agree12 := oracle.ConstantTimeEqBytes(mu1, mu2)
	agree23 := oracle.ConstantTimeEqBytes(mu2, mu3)
	agreeOK := boolToInt(decryptOK)&boolToInt(agree12)&boolToInt(agree23) == 1

	coreBytes := ct.coreBytes(p)
	proofOK := entanglement.VerifyConsistency(p.SLSS.Q, p.TDD.Q, p.EGRW.P, pk.Binding, coreBytes, new(big.Int).SetBytes(mu), ct.Proof)

	c1p, c2p, c3p, reErr := deriveSubCiphertexts(p, pk, mu)
	// reErr can only come from a failing deterministic reader, never from
	// ciphertext content; the three comparisons themselves always all run.
	matchOK := reErr == nil
	if matchOK {
		match1 := oracle.ConstantTimeEqBytes(ct.C1.Bytes(), c1p.Bytes())
		match2 := oracle.ConstantTimeEqBytes(ct.C2.Bytes(), c2p.Bytes())
		match3 := oracle.ConstantTimeEqBytes(ct.C3.Bytes(p.EGRW.P), c3p.Bytes(p.EGRW.P))
		matchOK = boolToInt(match1)&boolToInt(match2)&boolToInt(match3) == 1
	}

	rejectedFlag := boolToInt(!bindingOK) | boolToInt(!agreeOK) | boolToInt(!proofOK) | boolToInt(!matchOK)
	rejected := rejectedFlag != 0

	ctBytes := ct.Bytes(p)
	kOK := oracle.Shake256(32, []byte(common.DSTKEMKey), mu, ctBytes, pk.Binding[:])
	kRej := oracle.Shake256(32, []byte(common.DSTKEMReject), sk.Seed, ctBytes)

	var k [32]byte
	copy(k[:], oracle.ConstantTimeSelectBytes(!rejected, kOK, kRej))
	// Both candidates are always zeroized, win or lose, so the cleanup
	// itself carries no timing signal about which one was selected. sk.Seed
	// is not among them - it is long-lived secret-key material the caller
	// needs for every future Decapsulate call, not per-call scratch.
	oracle.ZeroizeAll(mu, kOK, kRej)
	// The same event shape logs on every path - "ok" is never correlated
	// with a distinguishable outcome string, so the log stream itself
	// carries no signal about which branch executed.
	klog.Operation("Decapsulate", pk.Level.Tag(), start, "ok")
	return k
}
