package board

import (
	"chessview/src/rules"
	"fmt"

	"github.com/corentings/chess/v2"
)

type moveOptions struct {
	promo     chess.PieceType
	callbacks bool
	animate   bool
}

type MoveOption func(*moveOptions)

func WithPromotion(pt chess.PieceType) MoveOption {
	return func(o *moveOptions) { o.promo = pt }
}

func WithoutCallbacks() MoveOption {
	return func(o *moveOptions) { o.callbacks = false }
}

func WithoutAnimation() MoveOption {
	return func(o *moveOptions) { o.animate = false }
}

// MakeMove tries from->to. It returns false for invalid squares, illegal
// moves and for a promotion without a chosen piece, which opens the
// promotion chooser instead. Nothing is mutated unless the move is legal.
func (bv *BoardView) MakeMove(from, to chess.Square, opts ...MoveOption) (rules.Move, bool) {
	o := moveOptions{promo: chess.NoPieceType, callbacks: true, animate: true}
	for _, opt := range opts {
		opt(&o)
	}
	if !validSquare(from) || !validSquare(to) {
		return rules.Move{}, false
	}
	bv.settle()

	if o.promo == chess.NoPieceType && bv.isPromotion(from, to) && bv.pos.HasPromotion(from, to) {
		bv.pending = &pendingPromotion{from: from, to: to}
		bv.logger.Debugf("promotion pending %s%s", from, to)
		bv.Redraw()
		return rules.Move{}, false
	}

	m, ok := bv.pos.FindLegal(from, to, o.promo)
	if !ok {
		bv.logger.Debugf("rejected move %s%s", from, to)
		return rules.Move{}, false
	}
	bv.push(m, o.animate, o.callbacks)
	return m, true
}

// ChoosePromotion completes a pending promotion with pt. It returns false
// when nothing is pending or pt is not a legal promotion piece; the chooser
// is closed either way.
func (bv *BoardView) ChoosePromotion(pt chess.PieceType) (rules.Move, bool) {
	p := bv.pending
	if p == nil {
		return rules.Move{}, false
	}
	bv.pending = nil
	bv.selected = chess.NoSquare
	if pt == chess.NoPieceType {
		bv.Redraw()
		return rules.Move{}, false
	}
	m, ok := bv.MakeMove(p.from, p.to, WithPromotion(pt))
	if !ok {
		bv.Redraw()
	}
	return m, ok
}

func (bv *BoardView) CancelPromotion() {
	bv.ChoosePromotion(chess.NoPieceType)
}

// Push plays a legal move programmatically. Observers are not notified.
func (bv *BoardView) Push(m rules.Move) error {
	bv.settle()
	legal, ok := bv.pos.FindLegal(m.From, m.To, m.Promo)
	if !ok {
		return fmt.Errorf("%w: %s", rules.ErrIllegalMove, m)
	}
	bv.push(legal, true, false)
	return nil
}

func (bv *BoardView) isPromotion(from, to chess.Square) bool {
	p := bv.pos.PieceAt(from)
	if p == chess.NoPiece || p.Type() != chess.Pawn {
		return false
	}
	if p.Color() == chess.White {
		return to.Rank() == chess.Rank8
	}
	return to.Rank() == chess.Rank1
}

func (bv *BoardView) push(m rules.Move, animate, notify bool) {
	bv.settle()
	commit := func() { bv.commit(m, notify) }
	if !animate || !bv.cfg.Animation {
		commit()
		return
	}
	bv.motion.Play(MotionRequest{
		Move:   m,
		Piece:  bv.pos.PieceAt(m.From),
		Commit: commit,
		Redraw: bv.Redraw,
	})
}

// commit is the only place the position changes through a move.
func (bv *BoardView) commit(m rules.Move, notify bool) {
	if err := bv.pos.Push(m); err != nil {
		bv.logger.Errorf("commit %s: %v", m, err)
		bv.Redraw()
		return
	}
	bv.logger.Infof("move %s", m)
	bv.Redraw()
	if !notify {
		return
	}
	cbs := make([]moveCallback, len(bv.callbacks))
	copy(cbs, bv.callbacks)
	for _, cb := range cbs {
		bv.notify(cb, m)
	}
}

func (bv *BoardView) notify(cb moveCallback, m rules.Move) {
	defer func() {
		if r := recover(); r != nil {
			bv.logger.Errorf("move callback %s panicked on %s: %v", cb.id, m, r)
		}
	}()
	cb.fn(m, bv)
}

func (bv *BoardView) settle() {
	bv.motion.Settle()
}
