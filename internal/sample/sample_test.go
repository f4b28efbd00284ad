package sample

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSeedEntropy(t *testing.T) {
	good := make([]byte, 32)
	_, err := rand.Read(good)
	require.NoError(t, err)
	require.NoError(t, ValidateSeedEntropy(good))

	tooShort := make([]byte, 16)
	require.Error(t, ValidateSeedEntropy(tooShort))

	allSame := bytes.Repeat([]byte{0x42}, 32)
	require.Error(t, ValidateSeedEntropy(allSame))

	ascending := make([]byte, 32)
	for i := range ascending {
		ascending[i] = byte(i)
	}
	require.Error(t, ValidateSeedEntropy(ascending))

	descending := make([]byte, 32)
	for i := range descending {
		descending[i] = byte(255 - i)
	}
	require.Error(t, ValidateSeedEntropy(descending))

	shortPeriod := bytes.Repeat([]byte{0x01, 0x02, 0x03}, 11)[:32]
	require.Error(t, ValidateSeedEntropy(shortPeriod))

	fewDistinct := make([]byte, 32)
	for i := range fewDistinct {
		fewDistinct[i] = byte(i % 5)
	}
	require.Error(t, ValidateSeedEntropy(fewDistinct))
}

func TestSampleSparseTernaryWeight(t *testing.T) {
	st, err := SampleSparseTernary(rand.Reader, 64, 10)
	require.NoError(t, err)
	require.Equal(t, uint(10), st.Support.Count())

	v := st.ToVector(big.NewInt(7681))
	nonzero := 0
	for _, x := range v.Values {
		if x.Sign() != 0 {
			nonzero++
		}
	}
	require.Equal(t, 10, nonzero)
}

func TestSparseTernaryBytesRoundTrip(t *testing.T) {
	st, err := SampleSparseTernary(rand.Reader, 37, 9)
	require.NoError(t, err)
	data := st.Bytes()
	got, err := ParseSparseTernary(data, 37, 9)
	require.NoError(t, err)
	require.True(t, st.Support.Equal(got.Support))
	require.True(t, st.Signs.Equal(got.Signs))
}

func TestExpandMatrixDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	q := big.NewInt(7681)
	a, err := ExpandMatrix(seed, 4, 3, q)
	require.NoError(t, err)
	b, err := ExpandMatrix(seed, 4, 3, q)
	require.NoError(t, err)
	require.Equal(t, a.Entries, b.Entries)

	seed2 := bytes.Repeat([]byte{0x08}, 32)
	c, err := ExpandMatrix(seed2, 4, 3, q)
	require.NoError(t, err)
	require.NotEqual(t, a.Entries, c.Entries)
}

func TestGaussianStaysInTail(t *testing.T) {
	for i := 0; i < 200; i++ {
		x, err := Gaussian(rand.Reader, 3.0)
		require.NoError(t, err)
		require.LessOrEqual(t, x.Int64(), int64(24))
		require.GreaterOrEqual(t, x.Int64(), int64(-24))
	}
}
