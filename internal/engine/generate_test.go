package engine

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustFEN(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, _, err := NewPositionFromFEN(fen)
	testutil.AssertNoError(t, err)
	return pos
}

func moveTexts(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

func TestGenerateMovesStartPosition(t *testing.T) {
	pos := chess.NewStandardPosition()

	white := GenerateMovesFor(pos, chess.White)
	black := GenerateMovesFor(pos, chess.Black)
	testutil.AssertEqual(t, len(white), 20)
	testutil.AssertEqual(t, len(black), 20)
	testutil.AssertEqual(t, len(GenerateMoves(pos)), 40)

	testutil.AssertSameElements(t, moveTexts(white), []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
		"b1a3", "b1c3", "g1f3", "g1h3",
	})
	for _, m := range append(white, black...) {
		testutil.AssertFalse(t, m.IsCapture(), m.Describe())
	}
}

func TestGenerateMovesSquareOrder(t *testing.T) {
	pos := mustFEN(t, kiwipeteFEN)
	last := chess.Square(-1)
	for _, m := range GenerateMoves(pos) {
		testutil.AssertTrue(t, m.Origin() >= last, "%s generated out of square order", m.Describe())
		last = m.Origin()
	}
}

func TestSideFilter(t *testing.T) {
	tests := []struct {
		text string
		side Side
		want []chess.Colour
	}{
		{"both", BothSides, []chess.Colour{chess.White, chess.Black}},
		{"white", WhiteSide, []chess.Colour{chess.White}},
		{"black", BlackSide, []chess.Colour{chess.Black}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			side, err := ParseSide(tt.text)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, side, tt.side)
			testutil.AssertEqual(t, side.String(), tt.text)
			for _, c := range []chess.Colour{chess.White, chess.Black} {
				testutil.AssertEqual(t, side.Includes(c), containsColour(tt.want, c), "%s includes %s", side, c)
			}
		})
	}

	_, err := ParseSide("red")
	testutil.AssertTrue(t, err != nil, "unknown side should fail")
}

func containsColour(cs []chess.Colour, c chess.Colour) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func TestGenerateMovesParallelMatchesSequential(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos := mustFEN(t, fen)
		for _, side := range []Side{BothSides, WhiteSide, BlackSide} {
			for _, workers := range []int{0, 1, 4} {
				got, err := GenerateMovesParallel(context.Background(), pos, side, workers)
				testutil.AssertNoError(t, err)
				want := generate(pos, side)
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s side=%s workers=%d mismatch (-want +got):\n%s", fen, side, workers, diff)
				}
			}
		}
	}
}

func TestGenerateMovesParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateMovesParallel(ctx, chess.NewStandardPosition(), BothSides, 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}
