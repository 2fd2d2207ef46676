package board

import (
	"chessview/src/rules"

	"github.com/corentings/chess/v2"
)

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// PointerDown handles a button press at board pixel x, y.
func (bv *BoardView) PointerDown(b Button, x, y int) {
	switch b {
	case ButtonPrimary:
		bv.primaryDown(x, y)
	case ButtonSecondary:
		bv.secondaryDown(x, y)
	}
}

// PointerMove handles motion while b is held.
func (bv *BoardView) PointerMove(b Button, x, y int) {
	switch b {
	case ButtonPrimary:
		if !bv.cfg.AllowInput || bv.drag == nil {
			return
		}
		bv.drag.x, bv.drag.y = x, y
		bv.Redraw()
	case ButtonSecondary:
		if bv.stroke == nil {
			return
		}
		if _, ok := bv.SquareAt(x, y); ok {
			bv.stroke.endX, bv.stroke.endY = x, y
			bv.Redraw()
		}
	}
}

func (bv *BoardView) PointerUp(b Button, x, y int) {
	switch b {
	case ButtonPrimary:
		bv.primaryUp(x, y)
	case ButtonSecondary:
		bv.secondaryUp()
	}
}

func (bv *BoardView) primaryDown(x, y int) {
	bv.settle()
	if bv.cfg.AllowDrawing {
		bv.overlays.Clear(AllLayers)
		bv.Redraw()
	}
	if !bv.cfg.AllowInput {
		return
	}

	if bv.pending != nil {
		p := bv.pending
		bv.pending = nil
		bv.selected = chess.NoSquare
		for _, btn := range promotionButtons(bv.boardPixels()) {
			if btn.contains(x, y) {
				bv.MakeMove(p.from, p.to, WithPromotion(btn.piece))
				break
			}
		}
	} else {
		sq, ok := bv.SquareAt(x, y)
		if !ok {
			return
		}
		if validSquare(bv.selected) && bv.attempt(bv.selected, sq) {
			bv.selected = chess.NoSquare
		} else {
			bv.selected = chess.NoSquare
			piece := bv.pos.PieceAt(sq)
			if piece != chess.NoPiece && piece.Color() == bv.pos.Turn() {
				bv.selected = sq
				if bv.cfg.AllowDragging {
					cx, cy := bv.SquareCenter(sq)
					bv.drag = &dragState{piece: piece, offX: cx - x, offY: cy - y, x: x, y: y}
					bv.showSelected()
					bv.Redraw()
					return
				}
			}
		}
	}
	bv.showSelected()
	bv.Redraw()
}

func (bv *BoardView) primaryUp(x, y int) {
	if !bv.cfg.AllowInput || bv.drag == nil {
		return
	}
	bv.overlays.Clear(AllLayers)
	d := bv.drag
	if to, ok := bv.SquareAt(x+d.offX, y+d.offY); ok {
		if bv.attempt(bv.selected, to, WithoutAnimation()) {
			bv.selected = chess.NoSquare
		}
	}
	bv.drag = nil
	bv.showSelected()
	bv.Redraw()
}

func (bv *BoardView) attempt(from, to chess.Square, opts ...MoveOption) bool {
	_, ok := bv.MakeMove(from, to, opts...)
	return ok
}

func (bv *BoardView) secondaryDown(x, y int) {
	bv.settle()
	if !bv.cfg.AllowDrawing {
		return
	}
	if _, ok := bv.SquareAt(x, y); !ok {
		return
	}
	bv.stroke = &strokeState{startX: x, startY: y, endX: x, endY: y}
	bv.Redraw()
}

func (bv *BoardView) secondaryUp() {
	s := bv.stroke
	if s == nil {
		return
	}
	bv.stroke = nil
	from, okFrom := bv.SquareAt(s.startX, s.startY)
	to, okTo := bv.SquareAt(s.endX, s.endY)
	if okFrom && okTo {
		fr, fc := RowColOf(from)
		if from == to {
			bv.DrawCircle(fr, fc, bv.cfg.CircleColor, bv.strokeRadius(), bv.cfg.CircleWidth, false)
		} else {
			tr, tc := RowColOf(to)
			bv.DrawArrow(fr, fc, tr, tc, bv.cfg.ArrowColor, bv.cfg.ArrowWidth, false)
		}
	}
	bv.Redraw()
}

func (bv *BoardView) strokeRadius() int {
	return int(float64(bv.squareSize) / 2.1)
}

// showSelected marks the selected square and its legal destinations.
func (bv *BoardView) showSelected() {
	if !validSquare(bv.selected) {
		return
	}
	bv.HighlightSquare(bv.selected, bv.cfg.HighlightColor, true)
	if !bv.cfg.ShowLegal {
		return
	}
	for _, m := range bv.pos.LegalMoves() {
		if m.From != bv.selected {
			continue
		}
		row, col := RowColOf(m.To)
		bv.DrawCircle(row, col, bv.cfg.LegalColor, bv.cfg.LegalRadius, bv.cfg.LegalWidth, true)
	}
}

type promoButton struct {
	x0, y0, x1, y1 int
	piece          chess.PieceType
}

// contains is inclusive on every edge.
func (b promoButton) contains(x, y int) bool {
	return x >= b.x0 && x <= b.x1 && y >= b.y0 && y <= b.y1
}

const (
	promoDialogW    = 320
	promoDialogH    = 80
	promoButtonSize = 60
	promoGap        = 15
)

func promotionDialog(boardSize int) (x, y int) {
	return (boardSize - promoDialogW) / 2, (boardSize - promoDialogH) / 2
}

func promotionButtons(boardSize int) []promoButton {
	x, y := promotionDialog(boardSize)
	by := y + (promoDialogH-promoButtonSize)/2
	out := make([]promoButton, 0, len(rules.PromotionPieces))
	bx := x + promoGap
	for _, pt := range rules.PromotionPieces {
		out = append(out, promoButton{x0: bx, y0: by, x1: bx + promoButtonSize, y1: by + promoButtonSize, piece: pt})
		bx += promoButtonSize + promoGap
	}
	return out
}
