package kmosaic

import (
	"encoding/binary"

	"github.com/kmosaic/kmosaic/egrw"
	"github.com/kmosaic/kmosaic/entanglement"
	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/params"
	"github.com/kmosaic/kmosaic/slss"
	"github.com/kmosaic/kmosaic/tdd"
)

func putLenPrefixed(out []byte, data []byte) []byte {
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(data)))
	out = append(out, lenBuf...)
	out = append(out, data...)
	return out
}

func getLenPrefixed(data []byte) ([]byte, []byte, error) {
	if len(data) < 4 {
		return nil, nil, common.ErrSerialization
	}
	n := int(binary.BigEndian.Uint32(data[:4]))
	rest := data[4:]
	if len(rest) < n {
		return nil, nil, common.ErrSerialization
	}
	return rest[:n], rest[n:], nil
}

// Bytes serializes pk as spec.md §6's serialize_public_key: a
// length-prefixed level tag, the three length-prefixed sub-public-keys,
// and the 32-byte binding.
func (pk PublicKey) Bytes() []byte {
	p, _ := params.For(pk.Level)
	out := make([]byte, 0)
	out = putLenPrefixed(out, []byte{pk.Level.Tag()})
	out = putLenPrefixed(out, pk.SLSSPK.Bytes())
	out = putLenPrefixed(out, pk.TDDPK.Bytes())
	out = putLenPrefixed(out, pk.EGRWPK.Bytes(p.EGRW.P))
	out = append(out, pk.Binding[:]...)
	return out
}

// ParsePublicKey parses the format Bytes produces.
func ParsePublicKey(data []byte) (PublicKey, error) {
	tagField, rest, err := getLenPrefixed(data)
	if err != nil || len(tagField) != 1 {
		return PublicKey{}, common.ErrSerialization
	}
	level, err := params.LevelFromTag(tagField[0])
	if err != nil {
		return PublicKey{}, err
	}
	p, err := params.For(level)
	if err != nil {
		return PublicKey{}, err
	}

	slssField, rest, err := getLenPrefixed(rest)
	if err != nil {
		return PublicKey{}, err
	}
	slssPK, err := slss.ParsePublicKey(slssField, p.SLSS)
	if err != nil {
		return PublicKey{}, err
	}

	tddField, rest, err := getLenPrefixed(rest)
	if err != nil {
		return PublicKey{}, err
	}
	tddPK, err := tdd.ParsePublicKey(tddField, p.TDD.Q, p.TDD.N)
	if err != nil {
		return PublicKey{}, err
	}

	egrwField, rest, err := getLenPrefixed(rest)
	if err != nil {
		return PublicKey{}, err
	}
	egrwPK, err := egrw.ParsePublicKey(egrwField, p.EGRW.P, p.EGRW.K)
	if err != nil {
		return PublicKey{}, err
	}

	if len(rest) < 32 {
		return PublicKey{}, common.ErrSerialization
	}
	var binding [32]byte
	copy(binding[:], rest[:32])

	return PublicKey{Level: level, SLSSPK: slssPK, TDDPK: tddPK, EGRWPK: egrwPK, Binding: binding}, nil
}

// Bytes serializes ct as spec.md §6's serialize_ciphertext: the three
// length-prefixed sub-ciphertexts followed by the length-prefixed proof.
func (ct Ciphertext) Bytes(p params.Params) []byte {
	out := make([]byte, 0)
	out = putLenPrefixed(out, ct.C1.Bytes())
	out = putLenPrefixed(out, ct.C2.Bytes())
	out = putLenPrefixed(out, ct.C3.Bytes(p.EGRW.P))
	out = putLenPrefixed(out, ct.Proof.Bytes())
	return out
}

// ParseCiphertext parses the format Bytes produces for the given level.
func ParseCiphertext(data []byte, p params.Params) (Ciphertext, error) {
	c1Field, rest, err := getLenPrefixed(data)
	if err != nil {
		return Ciphertext{}, err
	}
	c1, err := slss.ParseCiphertext(c1Field, p.SLSS.Q, p.SLSS.N)
	if err != nil {
		return Ciphertext{}, err
	}

	c2Field, rest, err := getLenPrefixed(rest)
	if err != nil {
		return Ciphertext{}, err
	}
	c2, err := tdd.ParseCiphertext(c2Field, p.TDD.Q, p.TDD.N)
	if err != nil {
		return Ciphertext{}, err
	}

	c3Field, rest, err := getLenPrefixed(rest)
	if err != nil {
		return Ciphertext{}, err
	}
	c3, err := egrw.ParseCiphertext(c3Field, p.EGRW.P)
	if err != nil {
		return Ciphertext{}, err
	}

	proofField, _, err := getLenPrefixed(rest)
	if err != nil {
		return Ciphertext{}, err
	}
	proof, err := entanglement.ParseProof(proofField)
	if err != nil {
		return Ciphertext{}, err
	}

	return Ciphertext{C1: c1, C2: c2, C3: c3, Proof: proof}, nil
}

// Bytes serializes sig as spec.md §6's serialize_signature: the
// length-prefixed commitment and challenge, then the three
// length-prefixed responses.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0)
	out = putLenPrefixed(out, sig.Commitment[:])
	out = putLenPrefixed(out, sig.Challenge[:])
	out = putLenPrefixed(out, sig.Z1.Bytes())
	out = putLenPrefixed(out, sig.Z2.Bytes())
	out = putLenPrefixed(out, sig.Z3.Bytes())
	return out
}

// ParseSignature parses the format Bytes produces, given the field
// moduli (SLSS's q for z1, TDD's q for z2, EGRW's p for z3) and vector
// lengths (SLSS's n, TDD's n, EGRW's k) needed to parse each response.
func ParseSignature(data []byte, p params.Params) (Signature, error) {
	commitField, rest, err := getLenPrefixed(data)
	if err != nil || len(commitField) != 32 {
		return Signature{}, common.ErrSerialization
	}
	challengeField, rest, err := getLenPrefixed(rest)
	if err != nil || len(challengeField) != 32 {
		return Signature{}, common.ErrSerialization
	}

	z1Field, rest, err := getLenPrefixed(rest)
	if err != nil {
		return Signature{}, err
	}
	z1, err := field.ParseVector(z1Field, p.SLSS.Q, p.SLSS.N)
	if err != nil {
		return Signature{}, err
	}

	z2Field, rest, err := getLenPrefixed(rest)
	if err != nil {
		return Signature{}, err
	}
	z2, err := field.ParseVector(z2Field, p.TDD.Q, p.TDD.N)
	if err != nil {
		return Signature{}, err
	}

	z3Field, _, err := getLenPrefixed(rest)
	if err != nil {
		return Signature{}, err
	}
	z3, err := field.ParseVector(z3Field, p.EGRW.P, p.EGRW.K)
	if err != nil {
		return Signature{}, err
	}

	var sig Signature
	copy(sig.Commitment[:], commitField)
	copy(sig.Challenge[:], challengeField)
	sig.Z1, sig.Z2, sig.Z3 = z1, z2, z3
	return sig, nil
}
