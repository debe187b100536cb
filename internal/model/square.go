// Package model defines the data structures for magic square synthesis.
package model

import (
	"fmt"
	"strings"
)

// OrderClass represents the parity class of a square order.
type OrderClass string

const (
	// ClassOdd covers odd orders (3, 5, 7, 9).
	ClassOdd OrderClass = "odd"
	// ClassDoublyEven covers orders divisible by 4 (4, 8).
	ClassDoublyEven OrderClass = "doubly-even"
	// ClassSinglyEven covers even orders with n mod 4 == 2 (6).
	ClassSinglyEven OrderClass = "singly-even"
)

// Method names the construction used to fill a square.
type Method string

const (
	// MethodSiamese is the De la Loubère diagonal stepping construction.
	MethodSiamese Method = "siamese"
	// MethodBlockComplement complements the off-diagonal cells of every 4x4 block.
	MethodBlockComplement Method = "block-complement"
	// MethodQuadrant composes four offset odd squares and swaps columns.
	MethodQuadrant Method = "quadrant"
	// MethodLUX is Conway's L-U-X block construction.
	MethodLUX Method = "lux"
)

// Matrix is a row-major grid of integers.
type Matrix [][]int

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) Matrix {
	cells := make([]int, n*n)
	rows := make(Matrix, n)

	for r := range rows {
		rows[r] = cells[r*n : (r+1)*n : (r+1)*n]
	}

	return rows
}

// Size returns the number of rows.
func (mx Matrix) Size() int {
	return len(mx)
}

// Clone returns a deep copy of the matrix.
func (mx Matrix) Clone() Matrix {
	if mx == nil {
		return nil
	}

	out := make(Matrix, len(mx))
	for r, row := range mx {
		out[r] = append([]int(nil), row...)
	}

	return out
}

// Flatten returns the cells in row-major order.
func (mx Matrix) Flatten() []int {
	out := make([]int, 0, len(mx)*len(mx))
	for _, row := range mx {
		out = append(out, row...)
	}

	return out
}

// String renders one row per line with right-aligned cells.
func (mx Matrix) String() string {
	width := 1

	for _, row := range mx {
		for _, v := range row {
			if w := len(fmt.Sprint(v)); w > width {
				width = w
			}
		}
	}

	var b strings.Builder

	for _, row := range mx {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}

			fmt.Fprintf(&b, "%*d", width, v)
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// MagicConstant returns n(n²+1)/2, the line sum of a normal magic square of order n.
func MagicConstant(n int) int {
	return n * (n*n + 1) / 2
}

// Properties holds the sum invariants a matrix satisfies.
type Properties struct {
	IsPerfect     bool `json:"isPerfect" yaml:"is_perfect"`
	IsSemiMagic   bool `json:"isSemiMagic" yaml:"is_semi_magic"`
	IsPandiagonal bool `json:"isPandiagonal" yaml:"is_pandiagonal"`
}

// Square is the result of one synthesis. The JSON shape is consumed by the web client.
type Square struct {
	Dimension     int        `json:"dimension" yaml:"dimension"`
	MagicConstant int        `json:"magicConstant" yaml:"magic_constant"`
	Matrix        Matrix     `json:"matrix" yaml:"matrix"`
	Properties    Properties `json:"properties" yaml:"properties"`
}

// MagicLines is the number of lines (rows, columns and main diagonals) that must sum to the constant.
func (s Square) MagicLines() int {
	return 2*s.Dimension + 2
}

// Cells is the number of cells in the square.
func (s Square) Cells() int {
	return s.Dimension * s.Dimension
}
