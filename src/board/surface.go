package board

import (
	"image/color"

	"github.com/corentings/chess/v2"
)

type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorNorthWest
)

type Font struct {
	Family string
	Size   float64
}

// Surface is the drawing target of the renderer. Coordinates are pixels
// with the origin at the top-left corner of the board.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.RGBA)
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	// StrokeOval outlines the ellipse inscribed in the box x0,y0 - x1,y1.
	StrokeOval(x0, y0, x1, y1, width float64, c color.RGBA)
	Line(x0, y0, x1, y1, width float64, c color.RGBA)
	Text(x, y float64, s string, f Font, c color.RGBA, a Anchor)
}

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var unicodeGlyphs = map[chess.Color]map[chess.PieceType]string{
	chess.White: {
		chess.King: "♔", chess.Queen: "♕", chess.Rook: "♖",
		chess.Bishop: "♗", chess.Knight: "♘", chess.Pawn: "♙",
	},
	chess.Black: {
		chess.King: "♚", chess.Queen: "♛", chess.Rook: "♜",
		chess.Bishop: "♝", chess.Knight: "♞", chess.Pawn: "♟",
	},
}

var letterGlyphs = map[chess.PieceType]string{
	chess.King: "K", chess.Queen: "Q", chess.Rook: "R",
	chess.Bishop: "B", chess.Knight: "N", chess.Pawn: "P",
}

// Glyph returns the text used to draw p in the given style. Letter glyphs
// are lower case for black.
func Glyph(p chess.Piece, style PieceStyle) string {
	if p == chess.NoPiece {
		return ""
	}
	if style == PieceStyleLetters {
		g := letterGlyphs[p.Type()]
		if p.Color() == chess.Black {
			return string(g[0] + ('a' - 'A'))
		}
		return g
	}
	return unicodeGlyphs[p.Color()][p.Type()]
}
