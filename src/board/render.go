package board

import (
	"image/color"
	"math"

	"github.com/corentings/chess/v2"
)

type renderMode struct {
	layers      Layers
	transient   bool // drag, stroke preview, promotion chooser, hook, sprite
	coordinates bool
	pieceScale  float64
	style       PieceStyle // overrides the configured style when set
}

var renderLive = renderMode{layers: AllLayers, transient: true, coordinates: true, pieceScale: 0.6}

func exportMode(l Layers) renderMode {
	return renderMode{layers: l, pieceScale: 0.7}
}

var promoOutline = color.RGBA{R: 230, G: 230, B: 230, A: 0xff}

const (
	highlightWidth = 3
	arrowHeadAngle = 35 * math.Pi / 180
)

func (bv *BoardView) boardPixels() int {
	return bv.squareSize * 8
}

// render paints the whole view from scratch. It reads state only.
func (bv *BoardView) render(s Surface, mode renderMode) {
	sq := float64(bv.squareSize)
	style := bv.cfg.PieceStyle
	if mode.style != "" {
		style = mode.style
	}
	s.Clear()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := bv.cfg.DarkSquare
			if (row+col)%2 == 0 {
				c = bv.cfg.LightSquare
			}
			s.FillRect(float64(col)*sq, float64(row)*sq, sq, sq, c)
		}
	}

	if mode.layers.Highlights {
		for _, h := range bv.overlays.Highlights.Items() {
			row, col := bv.orient(h.Row, h.Col)
			s.StrokeRect(float64(col)*sq, float64(row)*sq, sq, sq, highlightWidth, h.Color)
		}
	}

	pieceFont := Font{Family: bv.cfg.FontFamily, Size: float64(int(sq * mode.pieceScale))}
	sprite, animating := bv.motion.Sprite()
	if !mode.transient {
		animating = false
	}
	for i := 0; i < 64; i++ {
		square := chess.Square(i)
		p := bv.pos.PieceAt(square)
		if p == chess.NoPiece {
			continue
		}
		if mode.transient && bv.drag != nil && square == bv.selected {
			continue
		}
		if animating && (square == sprite.From || square == sprite.To) {
			continue
		}
		x, y := bv.SquareCenter(square)
		s.Text(float64(x), float64(y), Glyph(p, style), pieceFont, black, AnchorCenter)
	}

	if mode.transient && bv.stroke != nil {
		bv.renderStroke(s)
	}

	if mode.layers.Circles {
		for _, c := range bv.overlays.Circles.Items() {
			row, col := bv.orient(c.Row, c.Col)
			cx := float64(col*bv.squareSize + bv.squareSize/2)
			cy := float64(row*bv.squareSize + bv.squareSize/2)
			r := float64(c.Radius)
			s.StrokeOval(cx-r, cy-r, cx+r, cy+r, float64(c.Width), c.Color)
		}
	}

	if mode.layers.Arrows {
		for _, a := range bv.overlays.Arrows.Items() {
			fr, fc := bv.orient(a.FromRow, a.FromCol)
			tr, tc := bv.orient(a.ToRow, a.ToCol)
			half := bv.squareSize / 2
			drawArrow(s,
				float64(fc*bv.squareSize+half), float64(fr*bv.squareSize+half),
				float64(tc*bv.squareSize+half), float64(tr*bv.squareSize+half),
				sq/2, float64(a.Width), a.Color)
		}
	}

	if mode.coordinates && bv.cfg.ShowCoordinates {
		bv.renderCoordinates(s)
	}

	if !mode.transient {
		return
	}
	if bv.pending != nil {
		bv.renderPromotion(s, pieceFont, style)
	}
	if bv.drawHook != nil {
		bv.drawHook(bv)
	}
	if animating {
		fx, fy := bv.SquareCenter(sprite.From)
		tx, ty := bv.SquareCenter(sprite.To)
		t := sprite.Progress()
		x := float64(fx) + (float64(tx)-float64(fx))*t
		y := float64(fy) + (float64(ty)-float64(fy))*t
		s.Text(x, y, Glyph(sprite.Piece, style), pieceFont, black, AnchorCenter)
	}
	if bv.drag != nil {
		s.Text(float64(bv.drag.x+bv.drag.offX), float64(bv.drag.y+bv.drag.offY),
			Glyph(bv.drag.piece, style), pieceFont, black, AnchorCenter)
	}
}

// renderStroke previews the annotation being drawn with the secondary button.
func (bv *BoardView) renderStroke(s Surface) {
	from, okFrom := bv.SquareAt(bv.stroke.startX, bv.stroke.startY)
	to, okTo := bv.SquareAt(bv.stroke.endX, bv.stroke.endY)
	if !okFrom || !okTo {
		return
	}
	fx, fy := bv.SquareCenter(from)
	if from == to {
		r := float64(bv.strokeRadius())
		s.StrokeOval(float64(fx)-r, float64(fy)-r, float64(fx)+r, float64(fy)+r,
			float64(bv.cfg.CircleWidth), bv.cfg.CircleColor)
		return
	}
	tx, ty := bv.SquareCenter(to)
	drawArrow(s, float64(fx), float64(fy), float64(tx), float64(ty),
		float64(bv.squareSize)/2, float64(bv.cfg.ArrowWidth), bv.cfg.ArrowColor)
}

// drawArrow draws the shaft and two head segments at the tip, each 35
// degrees off the reversed shaft direction.
func drawArrow(s Surface, x1, y1, x2, y2, head, width float64, c color.RGBA) {
	s.Line(x1, y1, x2, y2, width, c)
	angle := math.Atan2(y2-y1, x2-x1)
	for _, a := range []float64{angle - arrowHeadAngle, angle + arrowHeadAngle} {
		s.Line(x2, y2, x2-head*math.Cos(a), y2-head*math.Sin(a), width, c)
	}
}

func (bv *BoardView) renderCoordinates(s Surface) {
	fs := bv.squareSize / 5
	if fs < 6 {
		fs = 6
	}
	f := Font{Family: bv.cfg.FontFamily, Size: float64(fs)}
	board := bv.boardPixels()
	for i := 0; i < 8; i++ {
		file, rank := i, 8-i
		if bv.cfg.Flipped {
			file, rank = 7-i, i+1
		}
		s.Text(float64(i*bv.squareSize), float64(board-fs-10), string(rune('a'+file)), f, black, AnchorNorthWest)
		s.Text(2, float64(i*bv.squareSize+2), string(rune('0'+rank)), f, black, AnchorNorthWest)
	}
}

func (bv *BoardView) renderPromotion(s Surface, f Font, style PieceStyle) {
	x, y := promotionDialog(bv.boardPixels())
	s.StrokeRect(float64(x), float64(y), promoDialogW, promoDialogH, 2, promoOutline)
	mover := bv.pos.Turn()
	for _, b := range promotionButtons(bv.boardPixels()) {
		w := float64(b.x1 - b.x0)
		h := float64(b.y1 - b.y0)
		s.FillRect(float64(b.x0), float64(b.y0), w, h, white)
		s.StrokeRect(float64(b.x0), float64(b.y0), w, h, 1, black)
		s.Text(float64(b.x0)+w/2, float64(b.y0)+h/2,
			Glyph(chess.NewPiece(b.piece, mover), style), f, black, AnchorCenter)
	}
}
