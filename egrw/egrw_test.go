package egrw

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmosaic/kmosaic/params"
)

func testParams() params.EGRWParams {
	return params.EGRWParams{P: big.NewInt(2147483647), K: 12}
}

// mos256Params mirrors params.MOS_256's EGRW parameters (P = 2^61-1),
// large enough that a Commitment coordinate routinely exceeds 32 bits -
// exercising the width-scaled wire encoding that MOS_128's smaller prime
// never touches.
func mos256Params() params.EGRWParams {
	p := new(big.Int).Lsh(big.NewInt(1), 61)
	p.Sub(p, big.NewInt(1))
	return params.EGRWParams{P: p, K: 16}
}

func TestRoundTrip(t *testing.T) {
	p := testParams()
	pk, sk, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)

	mu := []byte("walking")
	ct, err := Encrypt(p, pk, mu, rand.Reader)
	require.NoError(t, err)

	got, err := Decrypt(p, sk, ct)
	require.NoError(t, err)
	require.Equal(t, mu, got)
}

func TestPublicKeyBytesRoundTrip(t *testing.T) {
	p := testParams()
	pk, _, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)

	data := pk.Bytes(p.P)
	got, err := ParsePublicKey(data, p.P, p.K)
	require.NoError(t, err)
	require.True(t, pk.VStart.Equal(got.VStart))
	require.True(t, pk.VEnd.Equal(got.VEnd))
	require.Equal(t, pk.ASeed, got.ASeed)
	require.Equal(t, pk.Commitment.Bytes(), got.Commitment.Bytes())
}

func TestCiphertextBytesRoundTrip(t *testing.T) {
	p := testParams()
	pk, _, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)
	ct, err := Encrypt(p, pk, []byte("abc"), rand.Reader)
	require.NoError(t, err)

	data := ct.Bytes(p.P)
	got, err := ParseCiphertext(data, p.P)
	require.NoError(t, err)
	require.True(t, ct.VMid.Equal(got.VMid))
	require.Equal(t, ct.C, got.C)
}

// TestPublicKeyBytesRoundTripMOS256 checks that a Commitment coordinate
// above 2^32 survives serialize/parse exactly - not just byte-for-byte
// re-encoding (which would pass even if both sides truncated identically),
// but the actual field value, caught by comparing against the original
// big.Int.
func TestPublicKeyBytesRoundTripMOS256(t *testing.T) {
	p := mos256Params()
	pk, _, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)

	foundLarge := false
	for _, x := range pk.Commitment.Values {
		if x.BitLen() > 32 {
			foundLarge = true
			break
		}
	}
	require.True(t, foundLarge, "test setup should produce a Commitment coordinate above 32 bits")

	data := pk.Bytes(p.P)
	got, err := ParsePublicKey(data, p.P, p.K)
	require.NoError(t, err)
	for i := range pk.Commitment.Values {
		require.Equal(t, 0, pk.Commitment.Values[i].Cmp(got.Commitment.Values[i]),
			"commitment[%d]: want %s, got %s", i, pk.Commitment.Values[i], got.Commitment.Values[i])
	}
}
