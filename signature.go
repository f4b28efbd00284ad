package kmosaic

import (
	"io"
	"math/big"
	"time"

	"github.com/kmosaic/kmosaic/egrw"
	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/oracle"
	"github.com/kmosaic/kmosaic/internal/sample"
	"github.com/kmosaic/kmosaic/params"
	"github.com/kmosaic/kmosaic/pkg/config"
	"github.com/kmosaic/kmosaic/pkg/klog"
)

// Signature is the composite multi-witness signature of spec.md §3: a
// commitment and challenge hash plus one response vector per sub-scheme
// witness (SLSS's secret s, TDD's first factor vector a_0, EGRW's secret
// walk).
type Signature struct {
	Commitment [32]byte
	Challenge  [32]byte
	Z1         field.Vector // SLSS response: y1 + c1*s mod q
	Z2         field.Vector // TDD response: y2 + c2*a_0 mod q
	Z3         field.Vector // EGRW response: y3 + c3*walkVec mod p
}

// subChallenge derives a deterministic scalar mod q from the 32-byte
// challenge hash, domain-separated per sub-scheme so the three responses
// can never be confused with one another even when two moduli collide.
func subChallenge(dst string, challenge [32]byte, q *big.Int) (*big.Int, error) {
	return sample.Uniform(oracle.DeterministicReader(dst, challenge[:]), q)
}

type sigCommitments struct {
	w1, w2, w3 field.Vector
}

func commitmentHash(c sigCommitments) [32]byte {
	return oracle.Sha3_256([]byte(common.DSTSigChal+"-COMMIT"), c.w1.Bytes(), c.w2.Bytes(), c.w3.Bytes())
}

// Sign implements the multi-witness Fiat-Shamir signature protocol of
// spec.md §4.6. The TDD and EGRW witnesses are proven via the linear
// commitments kept in pk.TDDPK/pk.EGRWPK (see those packages' PublicKey
// doc comments and DESIGN.md for why the literally-specified tensor and
// walk responses cannot be verified with a sound linear check); only the
// SLSS response z1 is norm-rejected, since it is the only response
// where the witness is a short vector whose blinding must hide it.
func Sign(sk SecretKey, pk PublicKey, m []byte, rng io.Reader, cfg config.Config) (Signature, error) {
	start := time.Now()
	cfg = cfg.Resolved()
	// An explicit rng always wins; a caller that wants every Sign call to
	// draw from one configured source instead can leave rng nil and set
	// cfg.RandSource once.
	if rng == nil {
		rng = cfg.RandSource
	}
	rng = oracle.DefaultRand(rng)
	p, err := params.For(pk.Level)
	if err != nil {
		return Signature{}, err
	}

	aSLSS, err := pk.SLSSPK.A()
	if err != nil {
		return Signature{}, common.Wrap(err, "kmosaic.Sign: expand slss A")
	}
	aTDD, err := sample.ExpandMatrix(pk.TDDPK.ASeed, p.TDD.N, p.TDD.N, p.TDD.Q)
	if err != nil {
		return Signature{}, common.Wrap(err, "kmosaic.Sign: expand tdd A")
	}
	aEGRW, err := sample.ExpandMatrix(pk.EGRWPK.ASeed, p.EGRW.K, p.EGRW.K, p.EGRW.P)
	if err != nil {
		return Signature{}, common.Wrap(err, "kmosaic.Sign: expand egrw A")
	}

	sVec := sk.SLSSSK.S.ToVector(p.SLSS.Q)
	a0 := sk.TDDSK.A[0]
	walkVec := egrw.WalkVector(sk.EGRWSK.Walk, p.EGRW.P)

	for attempt := 0; attempt < cfg.MaxRejectionRetries; attempt++ {
		y1, err := sample.UniformVector(rng, p.SLSS.Q, p.SLSS.N)
		if err != nil {
			return Signature{}, common.Wrap(err, "kmosaic.Sign: sample y1")
		}
		y2, err := sample.UniformVector(rng, p.TDD.Q, p.TDD.N)
		if err != nil {
			return Signature{}, common.Wrap(err, "kmosaic.Sign: sample y2")
		}
		y3, err := sample.UniformVector(rng, p.EGRW.P, p.EGRW.K)
		if err != nil {
			return Signature{}, common.Wrap(err, "kmosaic.Sign: sample y3")
		}

		w1 := aSLSS.MulVec(y1)
		w2 := aTDD.MulVec(y2)
		w3 := aEGRW.MulVec(y3)

		challenge := oracle.Sha3_256([]byte(common.DSTSigChal), pk.Binding[:], w1.Bytes(), w2.Bytes(), w3.Bytes(), m)

		c1, err := subChallenge(common.DSTSigSub1, challenge, p.SLSS.Q)
		if err != nil {
			return Signature{}, common.Wrap(err, "kmosaic.Sign: sub-challenge c1")
		}
		c2, err := subChallenge(common.DSTSigSub2, challenge, p.TDD.Q)
		if err != nil {
			return Signature{}, common.Wrap(err, "kmosaic.Sign: sub-challenge c2")
		}
		c3, err := subChallenge(common.DSTSigSub3, challenge, p.EGRW.P)
		if err != nil {
			return Signature{}, common.Wrap(err, "kmosaic.Sign: sub-challenge c3")
		}

		z1 := y1.Add(sVec.ScalarMul(c1))
		z2 := y2.Add(a0.ScalarMul(c2))
		z3 := y3.Add(walkVec.ScalarMul(c3))

		if !z1.CheckNorm(p.SLSS.Beta) {
			y1.Zeroize()
			y2.Zeroize()
			y3.Zeroize()
			continue
		}

		y1.Zeroize()
		y2.Zeroize()
		y3.Zeroize()

		sig := Signature{
			Commitment: commitmentHash(sigCommitments{w1, w2, w3}),
			Challenge:  challenge,
			Z1:         z1, Z2: z2, Z3: z3,
		}
		padSign(cfg, start)
		klog.Fields("Sign", pk.Level.Tag(), start, "ok", map[string]interface{}{
			"attempts": attempt + 1,
			"msg_len":  len(m),
		})
		return sig, nil
	}

	klog.Fields("Sign", pk.Level.Tag(), start, "exhausted", map[string]interface{}{
		"attempts": cfg.MaxRejectionRetries,
	})
	return Signature{}, common.ErrSigningExhausted
}

// padSign sleeps the remainder of cfg.TimingPadMS since start, a coarse
// defense against micro-benchmarking the rejection-sampling loop's
// variable iteration count. This does not defeat a close-clock attacker
// (spec.md §9).
func padSign(cfg config.Config, start time.Time) {
	floor := time.Duration(cfg.TimingPadMS) * time.Millisecond
	elapsed := time.Since(start)
	if elapsed < floor {
		time.Sleep(floor - elapsed)
	}
}

// Verify implements spec.md §4.6's Verify: it recomputes the three
// commitments from the claimed responses and sub-challenges, recomputes
// the challenge hash, and checks the SLSS response's norm bound.
func Verify(pk PublicKey, m []byte, sig Signature) bool {
	start := time.Now()
	p, err := params.For(pk.Level)
	if err != nil {
		klog.Operation("Verify", pk.Level.Tag(), start, "unverified")
		return false
	}

	c1, err1 := subChallenge(common.DSTSigSub1, sig.Challenge, p.SLSS.Q)
	c2, err2 := subChallenge(common.DSTSigSub2, sig.Challenge, p.TDD.Q)
	c3, err3 := subChallenge(common.DSTSigSub3, sig.Challenge, p.EGRW.P)
	if err1 != nil || err2 != nil || err3 != nil {
		klog.Operation("Verify", pk.Level.Tag(), start, "unverified")
		return false
	}

	aSLSS, err := pk.SLSSPK.A()
	if err != nil {
		klog.Operation("Verify", pk.Level.Tag(), start, "unverified")
		return false
	}
	aTDD, err := sample.ExpandMatrix(pk.TDDPK.ASeed, p.TDD.N, p.TDD.N, p.TDD.Q)
	if err != nil {
		klog.Operation("Verify", pk.Level.Tag(), start, "unverified")
		return false
	}
	aEGRW, err := sample.ExpandMatrix(pk.EGRWPK.ASeed, p.EGRW.K, p.EGRW.K, p.EGRW.P)
	if err != nil {
		klog.Operation("Verify", pk.Level.Tag(), start, "unverified")
		return false
	}

	w1p := aSLSS.MulVec(sig.Z1).Sub(pk.SLSSPK.T0.ScalarMul(c1))
	w2p := aTDD.MulVec(sig.Z2).Sub(pk.TDDPK.Commitment.ScalarMul(c2))
	w3p := aEGRW.MulVec(sig.Z3).Sub(pk.EGRWPK.Commitment.ScalarMul(c3))

	normOK := sig.Z1.CheckNorm(p.SLSS.Beta)

	challengePrime := oracle.Sha3_256([]byte(common.DSTSigChal), pk.Binding[:], w1p.Bytes(), w2p.Bytes(), w3p.Bytes(), m)
	challengeOK := oracle.ConstantTimeEqBytes(challengePrime[:], sig.Challenge[:])

	commitmentPrime := commitmentHash(sigCommitments{w1p, w2p, w3p})
	commitmentOK := oracle.ConstantTimeEqBytes(commitmentPrime[:], sig.Commitment[:])

	ok := normOK && challengeOK && commitmentOK
	outcome := "unverified"
	if ok {
		outcome = "verified"
	}
	klog.Operation("Verify", pk.Level.Tag(), start, outcome)
	return ok
}
