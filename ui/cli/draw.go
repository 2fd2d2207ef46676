package cli

import (
	"chessview/src/board"
	"fmt"
	"io"

	"github.com/corentings/chess/v2"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	selBg   = "\033[102m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

// PrintBoard draws the view as it is oriented on screen, with the selected
// square marked.
func PrintBoard(w io.Writer, bv *board.BoardView) {
	style := bv.Config().PieceStyle
	files := "   a  b  c  d  e  f  g  h"
	if bv.Flipped() {
		files = "   h  g  f  e  d  c  b  a"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, files)
	for row := 0; row < 8; row++ {
		rank := 7 - row
		if bv.Flipped() {
			rank = row
		}
		fmt.Fprintf(w, "%d ", rank+1)
		for col := 0; col < 8; col++ {
			file := col
			if bv.Flipped() {
				file = 7 - col
			}
			sq := chess.NewSquare(chess.File(file), chess.Rank(rank))
			p := bv.PieceAt(sq)

			g := " "
			if p != chess.NoPiece {
				g = board.Glyph(p, style)
			}

			bg := darkBg
			if (rank+file)%2 == 1 {
				bg = lightBg
			}
			if sq == bv.Selected() {
				bg = selBg
			}
			fg := dimF
			switch p.Color() {
			case chess.White:
				fg = whiteF
				if bg == lightBg {
					fg = blackF
				}
			case chess.Black:
				fg = blackF
			}

			fmt.Fprintf(w, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(w, " %d\n", rank+1)
	}
	fmt.Fprintln(w, files)
	fmt.Fprintln(w)
}
