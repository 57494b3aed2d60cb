package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Piece is an immutable piece value. Square always equals the index of the
// cell holding the piece; moving produces a new Piece via Apply.
type Piece struct {
	Square   Square
	Colour   Colour
	Kind     Kind
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour, sq Square) Piece {
	return Piece{Square: sq, Colour: colour, Kind: kind}
}

// generator enumerates the pseudo-legal moves of one piece kind.
type generator func(p Piece, pos *Position) []Move

// generators is the closed set of piece variants, indexed by Kind.
var generators = [NumKinds]generator{
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

// GenerateMoves returns the pseudo-legal moves of p in pos, in offset-table
// order. Moves respect geometry, occupancy and board edges but do not test
// whether the mover's own king is left in check. pos is never modified.
func (p Piece) GenerateMoves(pos Position) []Move {
	if p.Kind <= NoKind || p.Kind >= NumKinds {
		return []Move{}
	}
	return generators[p.Kind](p, &pos)
}

// Apply returns the successor of p after m: same colour and kind, standing
// on m.Destination, with HasMoved set. The position is not touched.
// It panics if m does not move p.
func (p Piece) Apply(m Move) Piece {
	if m.Piece != p {
		panic(errors.Wrapf(errors.ErrIllegalMove, "%s does not move %s", m, p))
	}
	mustBeValid(m.Destination)
	return Piece{
		Square:   m.Destination,
		Colour:   p.Colour,
		Kind:     p.Kind,
		HasMoved: true,
	}
}

// Letter returns the FEN letter of p: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns a short description such as "White Knight on g1".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Square)
}
