package tdd

import (
	"encoding/binary"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/tensor"
)

// Bytes serializes pk as the direct n*n*n tensor encoding (no seed
// compression - spec.md's Open Question on seed-compressed encodings is
// raised for SLSS's public key only, see DESIGN.md), followed by the
// signature commitment seed and the commitment vector.
func (pk PublicKey) Bytes() []byte {
	out := pk.T.Bytes()
	out = append(out, pk.ASeed...)
	out = append(out, pk.Commitment.Bytes()...)
	return out
}

// ParsePublicKey parses the format Bytes produces.
func ParsePublicKey(data []byte, q *big.Int, n int) (PublicKey, error) {
	tensorLen := 4 * n * n * n
	w := field.ElemByteLen(q)
	if len(data) < tensorLen+common.SeedSize+w*n {
		return PublicKey{}, common.ErrSerialization
	}
	t, err := tensor.Parse(data[:tensorLen], q, n)
	if err != nil {
		return PublicKey{}, err
	}
	rest := data[tensorLen:]
	aSeed := append([]byte(nil), rest[:common.SeedSize]...)
	commitment, err := field.ParseVector(rest[common.SeedSize:], q, n)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{T: t, ASeed: aSeed, Commitment: commitment}, nil
}

// Bytes serializes ct as LEN(bits) || X || Y || bits*(U_k || C_k).
func (ct Ciphertext) Bytes() []byte {
	out := make([]byte, 0)
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(ct.C)))
	out = append(out, lenBuf...)
	out = append(out, ct.X.Bytes()...)
	out = append(out, ct.Y.Bytes()...)
	for k := range ct.C {
		out = append(out, ct.U[k].Bytes()...)
		out = append(out, field.Vector{Q: ct.X.Q, Values: []*big.Int{ct.C[k]}}.Bytes()...)
	}
	return out
}

// ParseCiphertext parses the format Bytes produces for TDD params q, n.
func ParseCiphertext(data []byte, q *big.Int, n int) (Ciphertext, error) {
	if len(data) < 4 {
		return Ciphertext{}, common.ErrSerialization
	}
	bits := int(binary.BigEndian.Uint32(data[:4]))
	rest := data[4:]
	w := field.ElemByteLen(q)
	need := w*n + w*n + bits*(w*n+w)
	if len(rest) < need {
		return Ciphertext{}, common.ErrSerialization
	}
	x, err := field.ParseVector(rest, q, n)
	if err != nil {
		return Ciphertext{}, err
	}
	rest = rest[w*n:]
	y, err := field.ParseVector(rest, q, n)
	if err != nil {
		return Ciphertext{}, err
	}
	rest = rest[w*n:]
	us := make([]field.Vector, bits)
	cs := make([]*big.Int, bits)
	for k := 0; k < bits; k++ {
		u, err := field.ParseVector(rest, q, n)
		if err != nil {
			return Ciphertext{}, err
		}
		rest = rest[w*n:]
		cv, err := field.ParseVector(rest, q, 1)
		if err != nil {
			return Ciphertext{}, err
		}
		rest = rest[w:]
		us[k] = u
		cs[k] = cv.Values[0]
	}
	return Ciphertext{X: x, Y: y, U: us, C: cs}, nil
}
