package generators

import m "loshu.dev/pkg/loshu/internal/model"

// luxPatterns gives the 0-based fill order of each 2x2 block per letter.
var luxPatterns = map[byte][2][2]int{
	'L': {{3, 0}, {1, 2}},
	'U': {{0, 3}, {1, 2}},
	'X': {{0, 3}, {2, 1}},
}

// LUX builds a square for n ≡ 2 (mod 4) with Conway's construction. An m×m
// grid of letters (k+1 rows of L, one row of U, k-1 rows of X, centre U
// swapped with the L above it) is walked in Siamese order; each step fills a
// 2x2 block with four consecutive numbers in its letter's pattern.
func LUX(n int) m.Matrix {
	half := n / 2
	order := Siamese(half)
	letters := luxLetters(half)
	grid := m.NewMatrix(n)

	for r := range half {
		for c := range half {
			base := 4 * (order[r][c] - 1)
			pattern := luxPatterns[letters[r][c]]

			for i := range 2 {
				for j := range 2 {
					grid[2*r+i][2*c+j] = base + pattern[i][j] + 1
				}
			}
		}
	}

	return grid
}

func luxLetters(half int) [][]byte {
	k := (half - 1) / 2
	letters := make([][]byte, half)

	for r := range letters {
		letter := byte('X')

		switch {
		case r <= k:
			letter = 'L'
		case r == k+1:
			letter = 'U'
		}

		letters[r] = make([]byte, half)
		for c := range letters[r] {
			letters[r][c] = letter
		}
	}

	letters[k][k], letters[k+1][k] = letters[k+1][k], letters[k][k]

	return letters
}
