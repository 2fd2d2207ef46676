package rules

import (
	"errors"
	"testing"

	"github.com/corentings/chess/v2"
)

func mustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return sq
}

func TestPushPop(t *testing.T) {
	p := NewPosition()
	start := p.FEN()

	e2, e4 := mustSquare(t, "e2"), mustSquare(t, "e4")
	m, ok := p.FindLegal(e2, e4, chess.NoPieceType)
	if !ok {
		t.Fatalf("e2e4 should be legal")
	}
	if err := p.Push(m); err != nil {
		t.Fatalf("push: %v", err)
	}
	if p.PieceAt(e2) != chess.NoPiece {
		t.Errorf("e2 should be empty after e2e4")
	}
	if got := p.PieceAt(e4); got.Type() != chess.Pawn || got.Color() != chess.White {
		t.Errorf("e4 = %v, want white pawn", got)
	}
	if p.Turn() != chess.Black {
		t.Errorf("turn = %v, want black", p.Turn())
	}
	if h := p.History(); len(h) != 1 || h[0] != "e2e4" {
		t.Errorf("history = %v", h)
	}

	if err := p.Pop(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	if p.FEN() != start {
		t.Errorf("fen after pop = %q, want %q", p.FEN(), start)
	}
	if err := p.Pop(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("pop on empty history: %v", err)
	}
}

func TestFindLegalRejectsIllegal(t *testing.T) {
	p := NewPosition()
	if _, ok := p.FindLegal(mustSquare(t, "e2"), mustSquare(t, "e5"), chess.NoPieceType); ok {
		t.Fatalf("e2e5 must not be legal")
	}
	if _, ok := p.FindLegal(mustSquare(t, "e7"), mustSquare(t, "e5"), chess.NoPieceType); ok {
		t.Fatalf("black cannot move first")
	}
}

func TestPromotionLookup(t *testing.T) {
	p, err := NewPositionFromFEN("8/4P3/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	e7, e8 := mustSquare(t, "e7"), mustSquare(t, "e8")
	if !p.HasPromotion(e7, e8) {
		t.Fatalf("e7e8 should be a promotion")
	}
	if _, ok := p.FindLegal(e7, e8, chess.NoPieceType); ok {
		t.Fatalf("promotion without piece type must not be found")
	}
	m, ok := p.FindLegal(e7, e8, chess.Knight)
	if !ok {
		t.Fatalf("e7e8n should be legal")
	}
	if m.UCI() != "e7e8n" {
		t.Errorf("uci = %s", m.UCI())
	}
	if err := p.Push(m); err != nil {
		t.Fatalf("push: %v", err)
	}
	if got := p.PieceAt(e8); got.Type() != chess.Knight {
		t.Errorf("e8 = %v, want knight", got)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := NewPosition()
	c := p.Copy()
	m, _ := p.FindLegal(mustSquare(t, "d2"), mustSquare(t, "d4"), chess.NoPieceType)
	if err := p.Push(m); err != nil {
		t.Fatalf("push: %v", err)
	}
	if c.FEN() == p.FEN() {
		t.Fatalf("copy followed the source position")
	}
	if len(c.History()) != 0 {
		t.Errorf("copy history = %v", c.History())
	}
}

func TestSetFEN(t *testing.T) {
	p := NewPosition()
	if err := p.SetFEN("not a fen"); err == nil {
		t.Fatalf("expected error for bad FEN")
	}
	fen := "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
	if err := p.SetFEN(fen); err != nil {
		t.Fatalf("set fen: %v", err)
	}
	if p.Turn() != chess.Black {
		t.Errorf("turn = %v", p.Turn())
	}
	if err := p.Pop(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("history should be empty after SetFEN")
	}
}

func TestParseUCI(t *testing.T) {
	m, err := ParseUCI("a7a8q")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Promo != chess.Queen || m.From.String() != "a7" || m.To.String() != "a8" {
		t.Errorf("parsed %+v", m)
	}
	for _, bad := range []string{"", "e2", "e2e9", "e7e8k", "i2i4"} {
		if _, err := ParseUCI(bad); err == nil {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestOutcome(t *testing.T) {
	p := NewPosition()
	if res, how := p.Outcome(); res != "*" || how != "" {
		t.Fatalf("start outcome = %q %q", res, how)
	}
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := ParseUCI(uci)
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Push(m); err != nil {
			t.Fatalf("push %s: %v", uci, err)
		}
	}
	if res, how := p.Outcome(); res != "0-1" || how != "Checkmate" {
		t.Errorf("fool's mate outcome = %q %q", res, how)
	}
	if err := p.Pop(); err != nil {
		t.Fatal(err)
	}
	if res, _ := p.Outcome(); res != "*" {
		t.Errorf("outcome after undo = %q", res)
	}
}
