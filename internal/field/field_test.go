package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVecSub(t *testing.T) {
	// Scenario S4 from spec.md §8: vecSub([5,10,15], [2,12,5], q=20) = [3, 18, 10]
	q := big.NewInt(20)
	a := ints(q, 5, 10, 15)
	b := ints(q, 2, 12, 5)
	got := a.Sub(b)
	want := []int64{3, 18, 10}
	for i, w := range want {
		require.Equal(t, big.NewInt(w), got.Values[i])
	}
}

func TestCenteredAndAbsCentered(t *testing.T) {
	q := big.NewInt(100)
	require.Equal(t, big.NewInt(-10), Centered(big.NewInt(90), q))
	require.Equal(t, big.NewInt(50), Centered(big.NewInt(50), q))
	require.Equal(t, big.NewInt(0), AbsCentered(big.NewInt(0), q))
	require.Equal(t, big.NewInt(10), AbsCentered(big.NewInt(90), q))
	require.Equal(t, big.NewInt(10), AbsCentered(big.NewInt(10), q))
}

func TestMatrixMulVec(t *testing.T) {
	q := big.NewInt(97)
	m := NewMatrix(q, 2, 3)
	vals := [][]int64{{1, 2, 3}, {4, 5, 6}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, big.NewInt(vals[i][j]))
		}
	}
	x := ints(q, 1, 1, 1)
	got := m.MulVec(x)
	require.Equal(t, big.NewInt(6), got.Values[0])
	require.Equal(t, big.NewInt(15), got.Values[1])
}

func ints(q *big.Int, vs ...int64) Vector {
	out := NewVector(q, len(vs))
	for i, v := range vs {
		out.Values[i] = big.NewInt(v)
	}
	return out
}
