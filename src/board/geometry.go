package board

import "github.com/corentings/chess/v2"

// SquareAt maps a pixel inside the board to a square. Pixels outside
// [0, BoardSize) on either axis yield (chess.NoSquare, false).
func (bv *BoardView) SquareAt(x, y int) (chess.Square, bool) {
	size := bv.squareSize * 8
	if x < 0 || y < 0 || x >= size || y >= size {
		return chess.NoSquare, false
	}
	col := x / bv.squareSize
	row := y / bv.squareSize
	if bv.cfg.Flipped {
		col, row = 7-col, 7-row
	}
	return chess.NewSquare(chess.File(col), chess.Rank(7-row)), true
}

// SquareCenter is the pixel center of sq in the current orientation.
func (bv *BoardView) SquareCenter(sq chess.Square) (int, int) {
	row, col := bv.orient(RowColOf(sq))
	return col*bv.squareSize + bv.squareSize/2, row*bv.squareSize + bv.squareSize/2
}

// RowColOf returns the drawing row and column of sq as seen from white,
// row 0 being rank 8. Orientation is applied later by orient.
func RowColOf(sq chess.Square) (int, int) {
	return 7 - int(sq.Rank()), int(sq.File())
}

func (bv *BoardView) orient(row, col int) (int, int) {
	if bv.cfg.Flipped {
		return 7 - row, 7 - col
	}
	return row, col
}

func squareOf(row, col int) chess.Square {
	return chess.NewSquare(chess.File(col), chess.Rank(7-row))
}

func validSquare(sq chess.Square) bool {
	return sq >= chess.A1 && sq <= chess.H8
}

// SquareSize is the pixel edge of one square.
func (bv *BoardView) SquareSize() int {
	return bv.squareSize
}
