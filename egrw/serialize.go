package egrw

import (
	"encoding/binary"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
	"github.com/kmosaic/kmosaic/internal/field"
	"github.com/kmosaic/kmosaic/internal/sl2"
)

// Bytes serializes pk as VStart || VEnd || ASeed(32) || Commitment.
func (pk PublicKey) Bytes(p *big.Int) []byte {
	out := make([]byte, 0, 2*sl2.EncodedSize(p)+len(pk.ASeed)+field.ElemByteLen(p)*pk.Commitment.Len())
	out = append(out, sl2.Encode(p, pk.VStart)...)
	out = append(out, sl2.Encode(p, pk.VEnd)...)
	out = append(out, pk.ASeed...)
	out = append(out, pk.Commitment.Bytes()...)
	return out
}

// ParsePublicKey parses the format Bytes produces; k is EGRW's walk
// length (the commitment vector's fixed length).
func ParsePublicKey(data []byte, p *big.Int, k int) (PublicKey, error) {
	w := sl2.EncodedSize(p)
	if len(data) < 2*w+common.SeedSize+field.ElemByteLen(p)*k {
		return PublicKey{}, common.ErrSerialization
	}
	vStart, err := sl2.Decode(p, data[:w])
	if err != nil {
		return PublicKey{}, err
	}
	vEnd, err := sl2.Decode(p, data[w:2*w])
	if err != nil {
		return PublicKey{}, err
	}
	rest := data[2*w:]
	aSeed := append([]byte(nil), rest[:common.SeedSize]...)
	commitment, err := field.ParseVector(rest[common.SeedSize:], p, k)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{VStart: vStart, VEnd: vEnd, ASeed: aSeed, Commitment: commitment}, nil
}

// Bytes serializes ct as VMid || LEN(C) || C.
func (ct Ciphertext) Bytes(p *big.Int) []byte {
	out := make([]byte, 0, sl2.EncodedSize(p)+4+len(ct.C))
	out = append(out, sl2.Encode(p, ct.VMid)...)
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(ct.C)))
	out = append(out, lenBuf...)
	out = append(out, ct.C...)
	return out
}

// ParseCiphertext parses the format Bytes produces.
func ParseCiphertext(data []byte, p *big.Int) (Ciphertext, error) {
	w := sl2.EncodedSize(p)
	if len(data) < w+4 {
		return Ciphertext{}, common.ErrSerialization
	}
	vMid, err := sl2.Decode(p, data[:w])
	if err != nil {
		return Ciphertext{}, err
	}
	n := int(binary.BigEndian.Uint32(data[w : w+4]))
	rest := data[w+4:]
	if len(rest) < n {
		return Ciphertext{}, common.ErrSerialization
	}
	c := append([]byte(nil), rest[:n]...)
	return Ciphertext{VMid: vMid, C: c}, nil
}
