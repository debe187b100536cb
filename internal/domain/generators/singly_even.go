package generators

import m "loshu.dev/pkg/loshu/internal/model"

// Quadrant builds a square for n ≡ 2 (mod 4) from four copies of the Siamese
// square of order m = n/2 offset by 0, m², 2m² and 3m², placed top-left,
// bottom-right, top-right and bottom-left. Columns are then exchanged between
// the upper and lower halves so that both diagonals balance.
func Quadrant(n int) m.Matrix {
	half := n / 2
	k := (half - 1) / 2
	base := Siamese(half)
	area := half * half

	grid := m.NewMatrix(n)
	place(grid, offset(base, 0), 0, 0)
	place(grid, offset(base, area), half, half)
	place(grid, offset(base, 2*area), 0, half)
	place(grid, offset(base, 3*area), half, 0)

	for r := range half {
		for _, c := range leftSwapColumns(r, k) {
			swapVertical(grid, r, c, half)
		}

		// right half: the last k-1 columns.
		for c := n - k + 1; c < n; c++ {
			swapVertical(grid, r, c, half)
		}
	}

	return grid
}

// leftSwapColumns lists the left-half columns exchanged in quadrant row r.
// Every row exchanges the first k columns except the middle row, which keeps
// column 0 and exchanges columns 1..k instead (including the centre column).
func leftSwapColumns(r, k int) []int {
	first := 0
	if r == k {
		first = 1
	}

	cols := make([]int, 0, k)
	for c := first; c < first+k; c++ {
		cols = append(cols, c)
	}

	return cols
}

func swapVertical(grid m.Matrix, r, c, half int) {
	grid[r][c], grid[r+half][c] = grid[r+half][c], grid[r][c]
}

func place(grid, block m.Matrix, top, left int) {
	for r, row := range block {
		copy(grid[top+r][left:], row)
	}
}
