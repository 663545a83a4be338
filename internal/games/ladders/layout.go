package ladders

// Columns is the number of squares per board row.
const Columns = 10

// Rows returns how many rows a board of the given size needs.
func Rows(size int) int {
	return (size + Columns - 1) / Columns
}

// CellOf returns the grid position of a square, with row 0 at the top.
// Squares snake back and forth: the bottom row runs left to right,
// the next one right to left, and so on.
func CellOf(square, size int) (col, row int) {
	idx := square - 1
	fromBottom := idx / Columns
	col = idx % Columns
	if fromBottom%2 == 1 {
		col = Columns - 1 - col
	}
	return col, Rows(size) - 1 - fromBottom
}

// SquareAt is the inverse of CellOf. Returns 0 for positions past the last square.
func SquareAt(col, row, size int) int {
	fromBottom := Rows(size) - 1 - row
	if fromBottom%2 == 1 {
		col = Columns - 1 - col
	}
	sq := fromBottom*Columns + col + 1
	if sq < 1 || sq > size {
		return 0
	}
	return sq
}
