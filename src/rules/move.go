package rules

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
)

// Move is a fully specified move: origin, destination and the promotion
// piece type (chess.NoPieceType when the move is not a promotion).
type Move struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

var promoLetters = map[chess.PieceType]string{
	chess.Queen:  "q",
	chess.Rook:   "r",
	chess.Bishop: "b",
	chess.Knight: "n",
}

var lettersPromo = map[byte]chess.PieceType{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// PromotionPieces lists promotion choices in chooser order.
var PromotionPieces = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

func (m Move) UCI() string {
	return m.From.String() + m.To.String() + promoLetters[m.Promo]
}

func (m Move) String() string {
	return m.UCI()
}

// ParseSquare reads algebraic square names like "e4".
func ParseSquare(s string) (chess.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return chess.NewSquare(chess.File(s[0]-'a'), chess.Rank(s[1]-'1')), nil
}

// ParseUCI reads "e2e4" or "e7e8q". Legality is not checked.
func ParseUCI(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid UCI move %q", s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to, Promo: chess.NoPieceType}
	if len(s) == 5 {
		pt, ok := lettersPromo[s[4]]
		if !ok {
			return Move{}, fmt.Errorf("invalid promotion in %q", s)
		}
		m.Promo = pt
	}
	return m, nil
}
