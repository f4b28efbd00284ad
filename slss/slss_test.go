package slss

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmosaic/kmosaic/params"
)

func testParams() params.SLSSParams {
	return params.SLSSParams{N: 48, M: 40, Q: big.NewInt(7681), W: 8, Sigma: 1.2}
}

func TestRoundTrip(t *testing.T) {
	p := testParams()
	pk, sk, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)

	mu := []byte("Hi!")
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

	data := pk.Bytes()
	got, err := ParsePublicKey(data, p)
	require.NoError(t, err)
	require.Equal(t, pk.Seed, got.Seed)
	require.Equal(t, pk.T.Bytes(), got.T.Bytes())
	require.Equal(t, pk.T0.Bytes(), got.T0.Bytes())
}

func TestCiphertextBytesRoundTrip(t *testing.T) {
	p := testParams()
	pk, _, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)
	ct, err := Encrypt(p, pk, []byte("x"), rand.Reader)
	require.NoError(t, err)

	data := ct.Bytes()
	got, err := ParseCiphertext(data, p.Q, p.N)
	require.NoError(t, err)
	require.Equal(t, ct.U.Bytes(), got.U.Bytes())
	require.Equal(t, ct.V.Bytes(), got.V.Bytes())
}
