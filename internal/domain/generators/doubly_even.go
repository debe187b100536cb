package generators

import m "loshu.dev/pkg/loshu/internal/model"

// BlockComplement builds a square for n divisible by 4. The matrix is filled
// row-major with 1..n²; in every 4x4 block the cells on the block's own
// diagonals keep their value and the other twelve take n²+1-v.
func BlockComplement(n int) m.Matrix {
	grid := m.NewMatrix(n)
	complement := n*n + 1

	for r := range n {
		for c := range n {
			v := r*n + c + 1
			if onBlockDiagonal(r, c) {
				grid[r][c] = v
			} else {
				grid[r][c] = complement - v
			}
		}
	}

	return grid
}

func onBlockDiagonal(r, c int) bool {
	br, bc := r%4, c%4

	return br == bc || br+bc == 3
}
