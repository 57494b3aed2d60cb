package engine

import (
	"strings"

	"github.com/samber/lo"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// FindMove resolves coordinate text such as "e2e4" to the move colour's
// piece on the first square would generate to the second.
func FindMove(pos chess.Position, colour chess.Colour, text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "move text %q", text)
	}

	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move text %q", text)
	}
	to, err := chess.ParseSquare(text[2:])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move text %q", text)
	}

	p, ok := pos.PieceAt(from)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", from)
	}
	if p.Colour != colour {
		return chess.Move{}, errors.Wrapf(errors.ErrWrongSide, "%s belongs to %s", p, p.Colour)
	}

	m, found := lo.Find(p.GenerateMoves(pos), func(m chess.Move) bool {
		return m.Destination == to
	})
	if !found {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%s cannot reach %s", p, to)
	}
	return m, nil
}
