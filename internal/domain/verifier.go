package domain

import (
	"fmt"
	"math"

	m "loshu.dev/pkg/loshu/internal/model"
)

// Verify classifies a square matrix by the sum invariants it satisfies. It is
// pure and does not depend on how the matrix was produced.
func Verify(mx m.Matrix) (m.Properties, error) {
	analysis, err := Analyze(mx)
	if err != nil {
		return m.Properties{}, err
	}

	return analysis.Properties, nil
}

// Analyze computes every line sum of mx against the magic constant of its order.
// Broken diagonal i starts at (0, i) and steps down-right with wrap-around;
// broken anti-diagonal i starts at (0, i) and steps down-left.
//
// Cells must lie within ±math.MaxInt/n so that no line sum can overflow int;
// a matrix holding a larger magnitude is rejected with ErrMalformedMatrix.
func Analyze(mx m.Matrix) (m.Analysis, error) {
	if err := validateSquare(mx); err != nil {
		return m.Analysis{}, err
	}

	n := mx.Size()
	a := m.Analysis{
		Order:               n,
		Target:              m.MagicConstant(n),
		RowSums:             make([]int, n),
		ColumnSums:          make([]int, n),
		BrokenDiagonals:     make([]int, n),
		BrokenAntiDiagonals: make([]int, n),
		Normal:              isNormal(mx),
	}

	for r, row := range mx {
		for c, v := range row {
			a.RowSums[r] += v
			a.ColumnSums[c] += v
			a.BrokenDiagonals[(c-r+n)%n] += v
			a.BrokenAntiDiagonals[(c+r)%n] += v
		}
	}

	// The main diagonals are the broken diagonals through (0,0) and (0,n-1).
	a.MainDiagonal = a.BrokenDiagonals[0]
	a.AntiDiagonal = a.BrokenAntiDiagonals[n-1]

	semi := allEqual(a.RowSums, a.Target) && allEqual(a.ColumnSums, a.Target)
	perfect := semi && a.MainDiagonal == a.Target && a.AntiDiagonal == a.Target
	pandiagonal := perfect &&
		allEqual(a.BrokenDiagonals, a.Target) &&
		allEqual(a.BrokenAntiDiagonals, a.Target)

	a.Properties = m.Properties{
		IsPerfect:     perfect,
		IsSemiMagic:   semi,
		IsPandiagonal: pandiagonal,
	}

	return a, nil
}

func validateSquare(mx m.Matrix) error {
	n := mx.Size()
	if n == 0 {
		return fmt.Errorf("%w: no rows", ErrMalformedMatrix)
	}

	bound := math.MaxInt / n

	for r, row := range mx {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedMatrix, r, len(row), n)
		}

		for c, v := range row {
			if v > bound || v < -bound {
				return fmt.Errorf("%w: value %d at (%d,%d) exceeds ±%d", ErrMalformedMatrix, v, r, c, bound)
			}
		}
	}

	return nil
}

// isNormal reports whether the cells of mx are exactly 1..n², each once.
func isNormal(mx m.Matrix) bool {
	return missingOrRepeated(mx) == ""
}

// missingOrRepeated describes the first bijection failure, or returns "".
func missingOrRepeated(mx m.Matrix) string {
	n := mx.Size()
	limit := n * n
	seen := make([]bool, limit+1)

	for i, v := range mx.Flatten() {
		r, c := i/n, i%n

		if v < 1 || v > limit {
			return fmt.Sprintf("value %d at (%d,%d) outside [1,%d]", v, r, c, limit)
		}

		if seen[v] {
			return fmt.Sprintf("value %d repeated at (%d,%d)", v, r, c)
		}

		seen[v] = true
	}

	return ""
}

func allEqual(sums []int, target int) bool {
	for _, s := range sums {
		if s != target {
			return false
		}
	}

	return true
}
