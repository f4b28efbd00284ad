package slss

import (
	"encoding/binary"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/params"
)

// Bytes serializes pk as Seed(32) || T || T0 (one ElemWidth(Q)-byte
// little-endian word per coordinate), the seed-compressed encoding chosen
// in DESIGN.md.
func (pk PublicKey) Bytes() []byte {
	w := field.ElemByteLen(pk.Q)
	out := make([]byte, 0, len(pk.Seed)+w*pk.T.Len()+w*pk.T0.Len())
	out = append(out, pk.Seed...)
	out = append(out, pk.T.Bytes()...)
	out = append(out, pk.T0.Bytes()...)
	return out
}

// ParsePublicKey parses the format Bytes produces for the given params.
func ParsePublicKey(data []byte, p params.SLSSParams) (PublicKey, error) {
	w := field.ElemByteLen(p.Q)
	if len(data) < common.SeedSize+2*w*p.M {
		return PublicKey{}, common.ErrSerialization
	}
	seed := append([]byte(nil), data[:common.SeedSize]...)
	rest := data[common.SeedSize:]
	t, err := field.ParseVector(rest, p.Q, p.M)
	if err != nil {
		return PublicKey{}, err
	}
	t0, err := field.ParseVector(rest[w*p.M:], p.Q, p.M)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{Seed: seed, M: p.M, N: p.N, Q: p.Q, T: t, T0: t0}, nil
}

// Bytes serializes ct as LEN(bits, 4-byte big-endian) || U || V.
func (ct Ciphertext) Bytes() []byte {
	w := field.ElemByteLen(ct.U.Q)
	out := make([]byte, 0, 4+w*ct.U.Len()+w*ct.V.Len())
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(ct.V.Len()))
	out = append(out, lenBuf...)
	out = append(out, ct.U.Bytes()...)
	out = append(out, ct.V.Bytes()...)
	return out
}

// ParseCiphertext parses the format Bytes produces; n is SLSS's public
// parameter (U's fixed length).
func ParseCiphertext(data []byte, q *big.Int, n int) (Ciphertext, error) {
	if len(data) < 4 {
		return Ciphertext{}, common.ErrSerialization
	}
	bits := int(binary.BigEndian.Uint32(data[:4]))
	rest := data[4:]
	w := field.ElemByteLen(q)
	if len(rest) < w*n+w*bits {
		return Ciphertext{}, common.ErrSerialization
	}
	u, err := field.ParseVector(rest, q, n)
	if err != nil {
		return Ciphertext{}, err
	}
	v, err := field.ParseVector(rest[w*n:], q, bits)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{U: u, V: v}, nil
}
