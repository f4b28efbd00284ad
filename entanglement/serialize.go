package entanglement

import (
	"encoding/binary"
	"math/big"

	"github.com/kmosaic/kmosaic/internal/common"
)

func putBigInt(out []byte, x *big.Int) []byte {
	b := x.Bytes()
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(b)))
	out = append(out, lenBuf...)
	out = append(out, b...)
	return out
}

func getBigInt(data []byte) (*big.Int, []byte, error) {
	if len(data) < 4 {
		return nil, nil, common.ErrSerialization
	}
	n := int(binary.BigEndian.Uint32(data[:4]))
	data = data[4:]
	if len(data) < n {
		return nil, nil, common.ErrSerialization
	}
	return new(big.Int).SetBytes(data[:n]), data[n:], nil
}

// Bytes serializes the proof as its three commitments, the challenge,
// and the six length-prefixed big integers (R1..R3, Resp1..Resp3).
func (p Proof) Bytes() []byte {
	out := make([]byte, 0, 128)
	out = append(out, p.Commit1[:]...)
	out = append(out, p.Commit2[:]...)
	out = append(out, p.Commit3[:]...)
	out = append(out, p.Challenge[:]...)
	out = putBigInt(out, p.R1)
	out = putBigInt(out, p.R2)
	out = putBigInt(out, p.R3)
	out = putBigInt(out, p.Resp1)
	out = putBigInt(out, p.Resp2)
	out = putBigInt(out, p.Resp3)
	return out
}

// ParseProof parses the format Bytes produces.
func ParseProof(data []byte) (Proof, error) {
	if len(data) < 128 {
		return Proof{}, common.ErrSerialization
	}
	var p Proof
	copy(p.Commit1[:], data[0:32])
	copy(p.Commit2[:], data[32:64])
	copy(p.Commit3[:], data[64:96])
	copy(p.Challenge[:], data[96:128])
	rest := data[128:]
	var err error
	if p.R1, rest, err = getBigInt(rest); err != nil {
		return Proof{}, err
	}
	if p.R2, rest, err = getBigInt(rest); err != nil {
		return Proof{}, err
	}
	if p.R3, rest, err = getBigInt(rest); err != nil {
		return Proof{}, err
	}
	if p.Resp1, rest, err = getBigInt(rest); err != nil {
		return Proof{}, err
	}
	if p.Resp2, rest, err = getBigInt(rest); err != nil {
		return Proof{}, err
	}
	if p.Resp3, _, err = getBigInt(rest); err != nil {
		return Proof{}, err
	}
	return p, nil
}
