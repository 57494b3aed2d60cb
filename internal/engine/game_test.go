package engine

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestGamePlayText(t *testing.T) {
	g := NewGame(NewInitialPosition(), chess.White)

	for _, text := range []string{"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5a2"} {
		testutil.AssertNoError(t, g.PlayText(text), text)
	}

	testutil.AssertEqual(t, len(g.History), 6)
	testutil.AssertEqual(t, g.ToMove, chess.White)
	testutil.AssertEqual(t, g.Position.Count(), 29)
	testutil.AssertEqual(t, g.FEN(), "rnb1kbnr/ppp1pppp/8/8/8/2N5/qPPP1PPP/R1BQKBNR w KQkq - 0 1")

	for i, ply := range g.History {
		testutil.AssertEqual(t, ply.Number, i+1)
	}

	black := g.Captured(chess.Black)
	testutil.AssertEqual(t, len(black), 1)
	testutil.AssertEqual(t, black[0].Kind, chess.Pawn)

	white := g.Captured(chess.White)
	testutil.AssertEqual(t, len(white), 2)
	testutil.AssertEqual(t, white[0].Square, sq(t, "d5"))
	testutil.AssertEqual(t, white[1].Square, sq(t, "a2"))
}

func TestGameRejectsWrongSide(t *testing.T) {
	g := NewGame(NewInitialPosition(), chess.White)
	pawn, _ := g.Position.PieceAt(sq(t, "e7"))

	err := g.Play(chess.NewQuietMove(pawn, sq(t, "e5")))
	testutil.AssertErrorIs(t, err, errors.ErrWrongSide)
	testutil.AssertErrorIs(t, g.PlayText("e7e5"), errors.ErrWrongSide)
	testutil.AssertEqual(t, len(g.History), 0)
	testutil.AssertEqual(t, g.ToMove, chess.White)
}

func TestGameRejectsIllegalMove(t *testing.T) {
	g := NewGame(NewInitialPosition(), chess.White)
	before := g.Position
	rook, _ := g.Position.PieceAt(sq(t, "a1"))

	err := g.Play(chess.NewQuietMove(rook, sq(t, "a5")))
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertTrue(t, g.Position == before, "position must be unchanged")
	testutil.AssertEqual(t, len(g.History), 0)
}

func TestGameMovesFollowSideToMove(t *testing.T) {
	g, err := NewGameFromFEN(InitialFEN)
	testutil.AssertNoError(t, err)

	for _, m := range g.Moves() {
		testutil.AssertEqual(t, m.Piece.Colour, chess.White)
	}
	testutil.AssertNoError(t, g.PlayText("g1f3"))
	for _, m := range g.Moves() {
		testutil.AssertEqual(t, m.Piece.Colour, chess.Black)
	}

	_, err = NewGameFromFEN("not a fen")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}
