package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShake256Deterministic(t *testing.T) {
	a := Shake256(32, []byte("dst"), []byte("payload"))
	b := Shake256(32, []byte("dst"), []byte("payload"))
	require.Equal(t, a, b)

	c := Shake256(32, []byte("dst"), []byte("other"))
	require.NotEqual(t, a, c)
}

func TestSha3_256Deterministic(t *testing.T) {
	a := Sha3_256([]byte("x"), []byte("y"))
	b := Sha3_256([]byte("x"), []byte("y"))
	require.Equal(t, a, b)
}

func TestConstantTimeEqBytes(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{1, 2, 3, 4}
	require.True(t, ConstantTimeEqBytes(a, b))

	b[3] ^= 0x01
	require.False(t, ConstantTimeEqBytes(a, b))

	require.False(t, ConstantTimeEqBytes(a, []byte{1, 2, 3}))
}

func TestConstantTimeSelectBytes(t *testing.T) {
	a := []byte{0xAA, 0xAA}
	b := []byte{0xBB, 0xBB}
	require.Equal(t, a, ConstantTimeSelectBytes(true, a, b))
	require.Equal(t, b, ConstantTimeSelectBytes(false, a, b))
}

func TestSecretBufferRelease(t *testing.T) {
	buf := NewSecretBuffer(16)
	for i := range buf.Bytes() {
		buf.Bytes()[i] = 0xFF
	}
	data := buf.Bytes()
	buf.Release()
	for _, v := range data {
		require.Equal(t, byte(0), v)
	}
}
