package sl2

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var testP = big.NewInt(2147483647) // 2^31 - 1

func TestGeneratorsAreValid(t *testing.T) {
	for _, g := range Generators(testP) {
		require.True(t, Valid(testP, g))
	}
}

func TestWalkRoundTripsThroughInverse(t *testing.T) {
	start := Identity()
	// T then T^-1 should return to start.
	end := Walk(testP, start, []int{0, 1})
	require.True(t, end.Equal(start))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := Walk(testP, Identity(), []int{0, 2, 1, 3, 0, 2})
	data := Encode(testP, e)
	require.Len(t, data, EncodedSize(testP))

	got, err := Decode(testP, data)
	require.NoError(t, err)
	require.True(t, e.Equal(got))
}

func TestDecodeRejectsBadDeterminant(t *testing.T) {
	w := byteWidth(testP)
	data := make([]byte, 4*w)
	data[w-1] = 1 // A=1
	data[2*w-1] = 2
	data[3*w-1] = 1
	data[4*w-1] = 1 // D=1, det = 1*1 - 2*1 = -1 mod p != 1
	_, err := Decode(testP, data)
	require.Error(t, err)
}

func TestCombineWalksScenarioS6(t *testing.T) {
	got := CombineWalks([]int{0, 1, 2, 3}, []int{1, 1, 1, 1}, 1)
	require.Equal(t, []int{1, 2, 3, 0}, got)
}
