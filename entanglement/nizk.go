package entanglement

import (
	"io"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/oracle"
	"github.com/kmosaic/kmosaic/internal/sample"
)

// Proof is the Fiat-Shamir NIZK of spec.md §4.4 attesting that the three
// ciphertext components c1, c2, c3 encapsulate the same message mu. The
// prover commits to a per-scheme blinding value r_i, derives a challenge
// over the commitments and the ciphertext, responds with
// c_i = challenge + r_i*mu mod q_i, and reveals r_i as the commitment
// opening. The per-scheme moduli q1, q2, q3 need not agree; each
// response is computed and checked in its own scheme's field.
//
// The construction's soundness error is not quantified (spec.md §9 Open
// Question); see DESIGN.md.
type Proof struct {
	Commit1, Commit2, Commit3 [32]byte
	Challenge                 [32]byte
	R1, R2, R3                *big.Int
	Resp1, Resp2, Resp3       *big.Int
}

func blindCommit(r *big.Int) [32]byte {
	return oracle.Sha3_256([]byte(common.DSTCommit), r.Bytes())
}

func subChallenge(challenge [32]byte, q *big.Int) *big.Int {
	c := new(big.Int).SetBytes(challenge[:])
	return c.Mod(c, q)
}

func response(challenge [32]byte, r, mu, q *big.Int) *big.Int {
	c := subChallenge(challenge, q)
	muq := new(big.Int).Mod(mu, q)
	term := new(big.Int).Mul(r, muq)
	term.Add(term, c)
	return term.Mod(term, q)
}

// ProveConsistency builds a Proof that c1, c2, c3 (serialized) all
// encapsulate mu, bound to the composite key binding and q1/q2/q3, the
// moduli of SLSS, TDD, and EGRW respectively (EGRW's is its SL(2, Z_p)
// prime p, reused here as a modulus for the linear response equation).
func ProveConsistency(q1, q2, q3 *big.Int, binding [32]byte, ctBytes []byte, mu *big.Int, rng io.Reader) (Proof, error) {
	r1, err := sample.Uniform(rng, q1)
	if err != nil {
		return Proof{}, common.Wrap(err, "entanglement.ProveConsistency: r1")
	}
	r2, err := sample.Uniform(rng, q2)
	if err != nil {
		return Proof{}, common.Wrap(err, "entanglement.ProveConsistency: r2")
	}
	r3, err := sample.Uniform(rng, q3)
	if err != nil {
		return Proof{}, common.Wrap(err, "entanglement.ProveConsistency: r3")
	}

	commit1 := blindCommit(r1)
	commit2 := blindCommit(r2)
	commit3 := blindCommit(r3)

	challenge := oracle.Sha3_256([]byte(common.DSTNIZK), binding[:], commit1[:], commit2[:], commit3[:], ctBytes)

	return Proof{
		Commit1: commit1, Commit2: commit2, Commit3: commit3,
		Challenge: challenge,
		R1:        r1, R2: r2, R3: r3,
		Resp1: response(challenge, r1, mu, q1),
		Resp2: response(challenge, r2, mu, q2),
		Resp3: response(challenge, r3, mu, q3),
	}, nil
}

// VerifyConsistency recomputes the commitments from the revealed
// blinding values, recomputes the challenge, and checks every
// per-scheme response equation.
func VerifyConsistency(q1, q2, q3 *big.Int, binding [32]byte, ctBytes []byte, mu *big.Int, proof Proof) bool {
	commit1 := blindCommit(proof.R1)
	commit2 := blindCommit(proof.R2)
	commit3 := blindCommit(proof.R3)

	commitsOK := oracle.ConstantTimeEqBytes(commit1[:], proof.Commit1[:]) &&
		oracle.ConstantTimeEqBytes(commit2[:], proof.Commit2[:]) &&
		oracle.ConstantTimeEqBytes(commit3[:], proof.Commit3[:])

	challenge := oracle.Sha3_256([]byte(common.DSTNIZK), binding[:], commit1[:], commit2[:], commit3[:], ctBytes)
	challengeOK := oracle.ConstantTimeEqBytes(challenge[:], proof.Challenge[:])

	want1 := response(proof.Challenge, proof.R1, mu, q1)
	want2 := response(proof.Challenge, proof.R2, mu, q2)
	want3 := response(proof.Challenge, proof.R3, mu, q3)

	respOK := oracle.ConstantTimeEqInt(want1, proof.Resp1) &&
		oracle.ConstantTimeEqInt(want2, proof.Resp2) &&
		oracle.ConstantTimeEqInt(want3, proof.Resp3)

	return commitsOK && challengeOK && respOK
}
