package model

// Path represents a file system path.
type Path string

// SquareFile is a matrix read from disk for verification.
type SquareFile struct {
	Path   Path
	Matrix Matrix
}

// Analysis holds the line sums of a matrix and the invariants derived from them.
type Analysis struct {
	Order               int
	Target              int
	RowSums             []int
	ColumnSums          []int
	MainDiagonal        int
	AntiDiagonal        int
	BrokenDiagonals     []int
	BrokenAntiDiagonals []int
	// Normal is true when the cells are exactly 1..n².
	Normal     bool
	Properties Properties
}

// IsMagic reports whether the analysed matrix is a perfect normal magic square.
func (a Analysis) IsMagic() bool {
	return a.Normal && a.Properties.IsPerfect
}
