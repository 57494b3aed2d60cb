// Package engine drives whole-board move enumeration over chess positions.
package engine

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Side selects which pieces an enumeration covers.
type Side int

const (
	BothSides Side = iota
	WhiteSide
	BlackSide
)

// SideOf returns the Side covering only colour.
func SideOf(colour chess.Colour) Side {
	if colour == chess.White {
		return WhiteSide
	}
	return BlackSide
}

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case WhiteSide:
		return "white"
	case BlackSide:
		return "black"
	}
	return "both"
}

// ParseSide parses "both", "white" or "black".
func ParseSide(s string) (Side, error) {
	switch s {
	case "both", "":
		return BothSides, nil
	case "white", "w":
		return WhiteSide, nil
	case "black", "b":
		return BlackSide, nil
	}
	return BothSides, errors.Wrapf(errors.ErrInvalidConfig, "unknown side %q", s)
}

// Includes reports whether pieces of colour are enumerated for s.
func (s Side) Includes(colour chess.Colour) bool {
	switch s {
	case WhiteSide:
		return colour == chess.White
	case BlackSide:
		return colour == chess.Black
	}
	return true
}

// GenerateMoves returns the pseudo-legal moves of every piece in pos,
// grouped by origin square in ascending order.
func GenerateMoves(pos chess.Position) []chess.Move {
	return generate(pos, BothSides)
}

// GenerateMovesFor returns the pseudo-legal moves of colour's pieces.
func GenerateMovesFor(pos chess.Position, colour chess.Colour) []chess.Move {
	return generate(pos, SideOf(colour))
}

// GenerateSideMoves returns the pseudo-legal moves of the pieces side
// selects.
func GenerateSideMoves(pos chess.Position, side Side) []chess.Move {
	return generate(pos, side)
}

func generate(pos chess.Position, side Side) []chess.Move {
	var moves []chess.Move
	for _, p := range pos.Occupied() {
		if side.Includes(p.Colour) {
			moves = append(moves, p.GenerateMoves(pos)...)
		}
	}
	return moves
}

// GenerateMovesParallel enumerates each selected piece in its own goroutine,
// at most workers at a time (no limit if workers < 1). The pieces only read
// pos, so no locking is needed; results are merged in square order and
// equal the sequential result.
func GenerateMovesParallel(ctx context.Context, pos chess.Position, side Side, workers int) ([]chess.Move, error) {
	var pieces []chess.Piece
	for _, p := range pos.Occupied() {
		if side.Includes(p.Colour) {
			pieces = append(pieces, p)
		}
	}

	perPiece := make([][]chess.Move, len(pieces))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range pieces {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perPiece[i] = p.GenerateMoves(pos)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	moves := lo.Flatten(perPiece)
	log.Debug().
		Str("side", side.String()).
		Int("pieces", len(pieces)).
		Int("moves", len(moves)).
		Msg("parallel enumeration done")
	return moves, nil
}
