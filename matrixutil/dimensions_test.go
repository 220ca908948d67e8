package matrixutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMatrixDimensions(t *testing.T) {
	cases := []struct {
		n    int
		m, k int
	}{
		{2, 1, 2},
		{12, 3, 4},
		{18, 3, 6},
		{23, 1, 23},
		{25, 5, 5},
		{27, 3, 9},
	}
	for _, c := range cases {
		m, n, err := GetMatrixDimensions(c.n)
		require.NoError(t, err)
		require.Equal(t, c.m, m, "N=%d", c.n)
		require.Equal(t, c.k, n, "N=%d", c.n)
		require.Equal(t, c.n, m*n)
		require.LessOrEqual(t, m, n)
	}
}

func TestGetMatrixDimensionsRejectsNonPositive(t *testing.T) {
	_, _, err := GetMatrixDimensions(0)
	require.Error(t, err)
	_, _, err = GetMatrixDimensions(-5)
	require.Error(t, err)
}
