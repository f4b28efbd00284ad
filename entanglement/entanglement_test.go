package entanglement

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit3Combine3(t *testing.T) {
	var k [32]byte
	_, err := rand.Read(k[:])
	require.NoError(t, err)

	k1, k2, k3, err := Split3(k, rand.Reader)
	require.NoError(t, err)
	require.Equal(t, k, Combine3(k1, k2, k3))
}

func TestCommitOpen(t *testing.T) {
	m := []byte("message")
	r := make([]byte, 32)
	_, err := rand.Read(r)
	require.NoError(t, err)

	c := Commit(m, r)
	require.True(t, Open(c, m, r))
	require.False(t, Open(c, []byte("tampered"), r))
}

func TestBindDeterministic(t *testing.T) {
	a := Bind([]byte("a"), []byte("b"), []byte("c"))
	b := Bind([]byte("a"), []byte("b"), []byte("c"))
	require.Equal(t, a, b)

	c := Bind([]byte("a"), []byte("b"), []byte("different"))
	require.NotEqual(t, a, c)
}

func TestConsistencyProofRoundTrip(t *testing.T) {
	q1 := big.NewInt(7681)
	q2 := big.NewInt(12289)
	q3 := big.NewInt(2147483647)
	var binding [32]byte
	_, err := rand.Read(binding[:])
	require.NoError(t, err)
	ct := []byte("ciphertext-bytes")
	mu := big.NewInt(42)

	proof, err := ProveConsistency(q1, q2, q3, binding, ct, mu, rand.Reader)
	require.NoError(t, err)
	require.True(t, VerifyConsistency(q1, q2, q3, binding, ct, mu, proof))

	tampered := mu
	other := new(big.Int).Add(tampered, big.NewInt(1))
	require.False(t, VerifyConsistency(q1, q2, q3, binding, ct, other, proof))
}

func TestConsistencyProofBytesRoundTrip(t *testing.T) {
	q1 := big.NewInt(7681)
	q2 := big.NewInt(12289)
	q3 := big.NewInt(2147483647)
	var binding [32]byte
	ct := []byte("ct")
	mu := big.NewInt(7)

	proof, err := ProveConsistency(q1, q2, q3, binding, ct, mu, rand.Reader)
	require.NoError(t, err)

	data := proof.Bytes()
	got, err := ParseProof(data)
	require.NoError(t, err)
	require.Equal(t, proof.Commit1, got.Commit1)
	require.Equal(t, proof.Resp3.String(), got.Resp3.String())
	require.True(t, VerifyConsistency(q1, q2, q3, binding, ct, mu, got))
}
