package tdd

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kmosaic/kmosaic/params"
)

func testParams() params.TDDParams {
	return params.TDDParams{N: 6, Q: big.NewInt(7681), R: 3}
}

func TestRoundTrip(t *testing.T) {
	p := testParams()
	pk, sk, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)

	mu := []byte("Go!")
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
	got, err := ParsePublicKey(data, p.Q, p.N)
	require.NoError(t, err)
	require.Equal(t, pk.T.Entries[0].String(), got.T.Entries[0].String())
	require.Equal(t, pk.ASeed, got.ASeed)
	require.Equal(t, pk.Commitment.Bytes(), got.Commitment.Bytes())
}

func TestCiphertextBytesRoundTrip(t *testing.T) {
	p := testParams()
	pk, _, err := KeyGen(p, rand.Reader)
	require.NoError(t, err)
	ct, err := Encrypt(p, pk, []byte("z"), rand.Reader)
	require.NoError(t, err)

	data := ct.Bytes()
	got, err := ParseCiphertext(data, p.Q, p.N)
	require.NoError(t, err)
	require.Equal(t, ct.X.Bytes(), got.X.Bytes())
	require.Equal(t, ct.C[0].String(), got.C[0].String())
}
