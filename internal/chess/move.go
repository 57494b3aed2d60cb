package chess

import "strings"

// MoveKind distinguishes the move variants.
type MoveKind int

const (
	// Quiet moves land on an empty square.
	Quiet MoveKind = iota
	// Capture moves land on a square held by the opposing colour.
	Capture
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	if k == Capture {
		return "Capture"
	}
	return "Quiet"
}

// Move describes a proposed transition of one piece. Moves are transient
// values: built during enumeration and consumed by Position.Apply.
type Move struct {
	Kind MoveKind

	// The piece being moved, as it stood before the move.
	Piece Piece

	// Destination square.
	Destination Square

	// The piece removed by a Capture. Zero value for Quiet moves.
	Captured Piece
}

// NewQuietMove creates a move of p to an empty destination.
func NewQuietMove(p Piece, to Square) Move {
	return Move{Kind: Quiet, Piece: p, Destination: to}
}

// NewCaptureMove creates a move of p onto the square held by captured.
func NewCaptureMove(p Piece, to Square, captured Piece) Move {
	return Move{Kind: Capture, Piece: p, Destination: to, Captured: captured}
}

// Origin returns the square the moving piece starts from.
func (m Move) Origin() Square {
	return m.Piece.Square
}

// IsCapture returns true if this move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture
}

// String returns the move in coordinate notation, e.g. "g1f3".
func (m Move) String() string {
	return m.Origin().String() + m.Destination.String()
}

// Describe returns a long algebraic form such as "Nb1-c3" or "Bc3xe5".
// Pawns carry no letter.
func (m Move) Describe() string {
	var sb strings.Builder
	if m.Piece.Kind != Pawn {
		sb.WriteByte(m.Piece.Kind.Letter())
	}
	sb.WriteString(m.Origin().String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.Destination.String())
	return sb.String()
}
