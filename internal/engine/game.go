package engine

import (
	"github.com/samber/lo"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Ply is one applied move in a game record.
type Ply struct {
	Number int        // 1-based
	Move   chess.Move // Carries the captured piece for captures
}

// Game tracks a position, the side to move and the moves played so far.
// Positions are values, so earlier states in the record are never disturbed.
type Game struct {
	Position chess.Position
	ToMove   chess.Colour
	History  []Ply
}

// NewGame starts a record from pos with toMove to play.
func NewGame(pos chess.Position, toMove chess.Colour) *Game {
	return &Game{Position: pos, ToMove: toMove}
}

// NewGameFromFEN starts a record from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, toMove, err := NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGame(pos, toMove), nil
}

// Moves returns the pseudo-legal moves of the side to move.
func (g *Game) Moves() []chess.Move {
	return GenerateMovesFor(g.Position, g.ToMove)
}

// Play applies m. The move is recorded, including any captured piece,
// before the position is replaced.
func (g *Game) Play(m chess.Move) error {
	if m.Piece.Colour != g.ToMove {
		return errors.Wrapf(errors.ErrWrongSide, "%s to move, got %s", g.ToMove, m.Describe())
	}
	next, err := g.Position.TryApply(m)
	if err != nil {
		return err
	}
	g.History = append(g.History, Ply{Number: len(g.History) + 1, Move: m})
	g.Position = next
	g.ToMove = g.ToMove.Opposite()
	return nil
}

// PlayText resolves coordinate text for the side to move and plays it.
func (g *Game) PlayText(text string) error {
	m, err := FindMove(g.Position, g.ToMove, text)
	if err != nil {
		return err
	}
	return g.Play(m)
}

// Captured returns the pieces of colour removed so far, in capture order.
func (g *Game) Captured(colour chess.Colour) []chess.Piece {
	return lo.FilterMap(g.History, func(ply Ply, _ int) (chess.Piece, bool) {
		return ply.Move.Captured, ply.Move.IsCapture() && ply.Move.Captured.Colour == colour
	})
}

// FEN returns the current position in FEN notation.
func (g *Game) FEN() string {
	return PositionToFEN(g.Position, g.ToMove)
}
