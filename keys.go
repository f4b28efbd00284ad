package kmosaic

import (
	"io"
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

// PublicKey is the composite MOSAIC public key of spec.md §3: the three
// sub-scheme public keys plus a binding hash tying them into one
// identity.
type PublicKey struct {
	Level   params.SecurityLevel
	SLSSPK  slss.PublicKey
	TDDPK   tdd.PublicKey
	EGRWPK  egrw.PublicKey
	Binding [32]byte
}

// SecretKey is the composite MOSAIC secret key: the three sub-scheme
// secret keys plus the 32-byte master seed used to derive each
// sub-scheme's keypair and the implicit-rejection pseudorandomness.
type SecretKey struct {
	Level  params.SecurityLevel
	SLSSSK slss.SecretKey
	TDDSK  tdd.SecretKey
	EGRWSK egrw.SecretKey
	Seed   []byte
}

func subSeedReader(seed []byte, tag string) io.Reader {
	return oracle.DeterministicReader(common.DSTDerive+"-"+tag, seed)
}

// recomputeBinding hashes the three sub-public-keys' canonical encodings
// together, per spec.md §3/§4.4.
func recomputeBinding(p params.Params, slssPK slss.PublicKey, tddPK tdd.PublicKey, egrwPK egrw.PublicKey) [32]byte {
	return entanglement.Bind(slssPK.Bytes(), tddPK.Bytes(), egrwPK.Bytes(p.EGRW.P))
}

// GenerateKeyPair samples a 32-byte master seed, validates its entropy,
// and derives the three sub-scheme keypairs deterministically from
// SHAKE256-split sub-seeds of that master seed (spec.md §3: the
// composite secret key's seed is "used ... to split into three
// sub-seeds via SHAKE256").
func GenerateKeyPair(level params.SecurityLevel, rng io.Reader) (*PublicKey, *SecretKey, error) {
	start := time.Now()
	p, err := params.For(level)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	seed, err := oracle.RandBytes(rng, common.SeedSize)
	if err != nil {
		return nil, nil, common.Wrap(err, "kmosaic.GenerateKeyPair: seed")
	}
	if err := sample.ValidateSeedEntropy(seed); err != nil {
		klog.Operation("GenerateKeyPair", level.Tag(), start, "insufficient_entropy")
		return nil, nil, err
	}

	slssPK, slssSK, err := slss.KeyGen(p.SLSS, subSeedReader(seed, "SLSS"))
	if err != nil {
		return nil, nil, common.Wrap(err, "kmosaic.GenerateKeyPair: slss")
	}
	tddPK, tddSK, err := tdd.KeyGen(p.TDD, subSeedReader(seed, "TDD"))
	if err != nil {
		return nil, nil, common.Wrap(err, "kmosaic.GenerateKeyPair: tdd")
	}
	egrwPK, egrwSK, err := egrw.KeyGen(p.EGRW, subSeedReader(seed, "EGRW"))
	if err != nil {
		return nil, nil, common.Wrap(err, "kmosaic.GenerateKeyPair: egrw")
	}

	binding := recomputeBinding(p, slssPK, tddPK, egrwPK)

	pk := &PublicKey{Level: level, SLSSPK: slssPK, TDDPK: tddPK, EGRWPK: egrwPK, Binding: binding}
	sk := &SecretKey{Level: level, SLSSSK: slssSK, TDDSK: tddSK, EGRWSK: egrwSK, Seed: seed}
	klog.Operation("GenerateKeyPair", level.Tag(), start, "ok")
	return pk, sk, nil
}
