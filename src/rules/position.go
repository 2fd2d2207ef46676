package rules

import (
	"errors"
	"fmt"

	"github.com/corentings/chess/v2"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoHistory   = errors.New("no moves to undo")
)

// Position owns the game state. History is kept as UCI strings on top of
// the starting FEN so that undo can rebuild the game deterministically.
type Position struct {
	game    *chess.Game
	start   string
	history []string
}

func NewPosition() *Position {
	p, _ := NewPositionFromFEN(StartFEN)
	return p
}

func NewPositionFromFEN(fen string) (*Position, error) {
	game, err := gameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Position{game: game, start: fen}, nil
}

func gameFromFEN(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("error parse FEN %q: %w", fen, err)
	}
	return chess.NewGame(opt), nil
}

// SetFEN replaces the position and drops the move history.
func (p *Position) SetFEN(fen string) error {
	game, err := gameFromFEN(fen)
	if err != nil {
		return err
	}
	p.game = game
	p.start = fen
	p.history = p.history[:0]
	return nil
}

func (p *Position) FEN() string {
	return p.game.FEN()
}

func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	if sq < chess.A1 || sq > chess.H8 {
		return chess.NoPiece
	}
	return p.game.Position().Board().Piece(sq)
}

func (p *Position) Turn() chess.Color {
	return p.game.Position().Turn()
}

func (p *Position) LegalMoves() []Move {
	valid := p.game.Position().ValidMoves()
	moves := make([]Move, 0, len(valid))
	for _, m := range valid {
		moves = append(moves, Move{From: m.S1(), To: m.S2(), Promo: m.Promo()})
	}
	return moves
}

// FindLegal looks up the fully specified move from->to(=promo).
// promo is chess.NoPieceType for ordinary moves.
func (p *Position) FindLegal(from, to chess.Square, promo chess.PieceType) (Move, bool) {
	for _, m := range p.game.Position().ValidMoves() {
		if m.S1() == from && m.S2() == to && m.Promo() == promo {
			return Move{From: from, To: to, Promo: promo}, true
		}
	}
	return Move{}, false
}

// HasPromotion reports whether any promotion variant of from->to is legal.
func (p *Position) HasPromotion(from, to chess.Square) bool {
	for _, m := range p.game.Position().ValidMoves() {
		if m.S1() == from && m.S2() == to && m.Promo() != chess.NoPieceType {
			return true
		}
	}
	return false
}

// Push applies a move that must be legal in the current position.
func (p *Position) Push(m Move) error {
	uci := m.UCI()
	mv, err := chess.UCINotation{}.Decode(p.game.Position(), uci)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIllegalMove, uci, err)
	}
	if err := p.game.Move(mv, nil); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIllegalMove, uci, err)
	}
	p.history = append(p.history, uci)
	return nil
}

// Pop undoes the last pushed move by replaying the remaining history.
func (p *Position) Pop() error {
	if len(p.history) == 0 {
		return ErrNoHistory
	}
	game, err := replay(p.start, p.history[:len(p.history)-1])
	if err != nil {
		return err
	}
	p.game = game
	p.history = p.history[:len(p.history)-1]
	return nil
}

func replay(start string, moves []string) (*chess.Game, error) {
	game, err := gameFromFEN(start)
	if err != nil {
		return nil, err
	}
	for _, uci := range moves {
		mv, err := chess.UCINotation{}.Decode(game.Position(), uci)
		if err != nil {
			return nil, fmt.Errorf("error replay %s: %w", uci, err)
		}
		if err := game.Move(mv, nil); err != nil {
			return nil, fmt.Errorf("error replay %s: %w", uci, err)
		}
	}
	return game, nil
}

// History returns the pushed moves in UCI notation.
func (p *Position) History() []string {
	out := make([]string, len(p.history))
	copy(out, p.history)
	return out
}

// Copy returns an independent position with the same state and history.
func (p *Position) Copy() *Position {
	hist := make([]string, len(p.history))
	copy(hist, p.history)
	return &Position{game: p.game.Clone(), start: p.start, history: hist}
}

// Outcome returns the game result ("*" while it goes on) and, once the game
// is over, how it ended.
func (p *Position) Outcome() (string, string) {
	o := p.game.Outcome()
	if o == chess.NoOutcome {
		return string(o), ""
	}
	return string(o), p.game.Method().String()
}
