// Package generators provides the classical constructions of normal magic squares.
package generators

import m "loshu.dev/pkg/loshu/internal/model"

// Siamese builds an odd-order square with De la Loubère's method. Value 1 goes
// to the top-middle cell; each following value goes one row up and one column
// right with wrap-around, or one row down when that cell is taken.
// n must be odd and positive.
func Siamese(n int) m.Matrix {
	grid := m.NewMatrix(n)
	row, col := 0, (n-1)/2

	for v := 1; v <= n*n; v++ {
		grid[row][col] = v

		nextRow, nextCol := wrap(row-1, n), wrap(col+1, n)
		if grid[nextRow][nextCol] != 0 {
			nextRow, nextCol = wrap(row+1, n), col
		}

		row, col = nextRow, nextCol
	}

	return grid
}

// offset returns a copy of mx with delta added to every cell.
func offset(mx m.Matrix, delta int) m.Matrix {
	out := mx.Clone()
	for _, row := range out {
		for c := range row {
			row[c] += delta
		}
	}

	return out
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
