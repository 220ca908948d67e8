// Package matrixutil provides the dimensional bookkeeping shared across the
// nested shuffle arguments: reshaping a ciphertext vector of length N into
// an m x n matrix.
package matrixutil

import (
	"math"

	"github.com/Cipheritall/crypto-primitives-sub001/group"
)

// GetMatrixDimensions returns (m, n) such that m*n == N, m <= n, minimizing
// m+n among factor pairs. For prime N the result is (1, N).
func GetMatrixDimensions(n int) (int, int, error) {
	if n <= 0 {
		return 0, 0, group.InvalidArgument("N must be positive, got %d", n)
	}
	bestM, bestN := 1, n
	limit := int(math.Sqrt(float64(n)))
	for m := limit; m >= 1; m-- {
		if n%m == 0 {
			bestM = m
			bestN = n / m
			break
		}
	}
	return bestM, bestN, nil
}
