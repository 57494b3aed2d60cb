package chess

import (
	"iter"
	"slices"
	"strings"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Cell is one board square: either empty or holding exactly one piece.
type Cell struct {
	piece    Piece
	occupied bool
}

// OccupiedCell returns a cell holding p.
func OccupiedCell(p Piece) Cell {
	return Cell{piece: p, occupied: true}
}

// IsOccupied returns true if the cell holds a piece.
func (c Cell) IsOccupied() bool {
	return c.occupied
}

// Piece returns the occupant, and false for an empty cell.
func (c Cell) Piece() (Piece, bool) {
	return c.piece, c.occupied
}

// Position is an immutable 64-cell grid. The zero value is an empty board.
// Every operation that changes the board returns a new Position.
type Position struct {
	cells [NumSquares]Cell
}

// NewPosition builds a position from pieces, each placed on its own Square.
func NewPosition(pieces ...Piece) (Position, error) {
	var pos Position
	for _, p := range pieces {
		if !p.Square.IsValid() {
			return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "placing %s %s", p.Colour, p.Kind)
		}
		if pos.cells[p.Square].occupied {
			return Position{}, errors.Wrapf(errors.ErrSquareOccupied, "placing %s", p)
		}
		pos.cells[p.Square] = OccupiedCell(p)
	}
	return pos, nil
}

// backRank is the piece order on each side's first rank, file a to h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardPosition returns the standard 32-piece starting position.
func NewStandardPosition() Position {
	var pos Position
	for f := FileA; f <= FileH; f++ {
		for _, p := range []Piece{
			NewPiece(backRank[f], White, MakeSquare(f, Rank1)),
			NewPiece(Pawn, White, MakeSquare(f, Rank2)),
			NewPiece(Pawn, Black, MakeSquare(f, Rank7)),
			NewPiece(backRank[f], Black, MakeSquare(f, Rank8)),
		} {
			pos.cells[p.Square] = OccupiedCell(p)
		}
	}
	return pos
}

// Cell returns the cell at sq. It panics if sq is off the board.
func (pos Position) Cell(sq Square) Cell {
	mustBeValid(sq)
	return pos.cells[sq]
}

// PieceAt returns the piece on sq, and false if the square is empty.
// It panics if sq is off the board.
func (pos Position) PieceAt(sq Square) (Piece, bool) {
	return pos.Cell(sq).Piece()
}

// Occupied yields each occupied square and its piece in ascending square order.
func (pos Position) Occupied() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for i := range pos.cells {
			c := pos.cells[i]
			if !c.occupied {
				continue
			}
			if !yield(Square(i), c.piece) {
				return
			}
		}
	}
}

// Pieces returns the pieces of one colour in ascending square order.
func (pos Position) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range pos.Occupied() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Count returns the number of occupied cells.
func (pos Position) Count() int {
	n := 0
	for i := range pos.cells {
		if pos.cells[i].occupied {
			n++
		}
	}
	return n
}

// Place returns a copy of pos with p on p.Square, replacing any occupant.
// It panics if p.Square is off the board.
func (pos Position) Place(p Piece) Position {
	mustBeValid(p.Square)
	pos.cells[p.Square] = OccupiedCell(p)
	return pos
}

// Remove returns a copy of pos with sq emptied. It panics if sq is off the board.
func (pos Position) Remove(sq Square) Position {
	mustBeValid(sq)
	pos.cells[sq] = Cell{}
	return pos
}

// TryApply returns the position after m. The origin becomes empty and the
// destination holds m.Piece.Apply(m); a captured piece is dropped. The move
// must be one that m.Piece would generate in pos.
func (pos Position) TryApply(m Move) (Position, error) {
	if !m.Origin().IsValid() || !m.Destination.IsValid() {
		return Position{}, errors.Wrapf(errors.ErrInvalidSquare, "applying %d->%d", int(m.Origin()), int(m.Destination))
	}
	if occupant, ok := pos.cells[m.Origin()].Piece(); !ok || occupant != m.Piece {
		return Position{}, errors.Wrapf(errors.ErrIllegalMove, "%s: origin does not hold %s", m, m.Piece)
	}
	if !slices.Contains(m.Piece.GenerateMoves(pos), m) {
		return Position{}, errors.Wrapf(errors.ErrIllegalMove, "%s", m.Describe())
	}

	next := pos
	next.cells[m.Origin()] = Cell{}
	next.cells[m.Destination] = OccupiedCell(m.Piece.Apply(m))
	return next, nil
}

// Apply is TryApply for callers that hold a move just generated from pos.
// A failure there means the caller contract is broken, so Apply panics
// rather than return a corrupt board.
func (pos Position) Apply(m Move) Position {
	next, err := pos.TryApply(m)
	if err != nil {
		panic(err)
	}
	return next
}

// String returns an 8-line diagram, rank 8 first. Empty squares are dots.
func (pos Position) String() string {
	var sb strings.Builder
	for i := range pos.cells {
		c := pos.cells[i]
		if c.occupied {
			sb.WriteByte(c.piece.Letter())
		} else {
			sb.WriteByte('.')
		}
		if i%BoardSize == BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
