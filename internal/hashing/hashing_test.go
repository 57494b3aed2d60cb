package hashing

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

func mustFEN(t testing.TB, fen string) (chess.Position, chess.Colour) {
	t.Helper()
	pos, toMove, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
	}
	return pos, toMove
}

func TestZobristHashConsistency(t *testing.T) {
	pos1, toMove := mustFEN(t, engine.InitialFEN)
	pos2 := chess.NewStandardPosition()

	if h1, h2 := Hash(pos1, toMove), Hash(pos2, chess.White); h1 != h2 {
		t.Errorf("Identical positions produced different hashes: %x != %x", h1, h2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	pos1 := chess.NewStandardPosition()
	pawn, _ := pos1.PieceAt(chess.MakeSquare(chess.FileE, chess.Rank2))
	pos2 := pos1.Apply(chess.NewQuietMove(pawn, chess.MakeSquare(chess.FileE, chess.Rank4)))

	if Hash(pos1, chess.White) == Hash(pos2, chess.White) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashIncludesFirstMoveFlags(t *testing.T) {
	sq := chess.MakeSquare(chess.FileE, chess.Rank2)
	fresh := chess.Position{}.Place(chess.NewPiece(chess.Pawn, chess.White, sq))
	moved := chess.Position{}.Place(chess.Piece{Square: sq, Colour: chess.White, Kind: chess.Pawn, HasMoved: true})

	if Hash(fresh, chess.White) == Hash(moved, chess.White) {
		t.Error("A moved pawn should hash differently from an unmoved one")
	}
	if WeakHash(fresh) != WeakHash(moved) {
		t.Error("WeakHash only covers placement")
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	pos := chess.NewStandardPosition()
	if Hash(pos, chess.White) == Hash(pos, chess.Black) {
		t.Error("Same position with different side to move should have different hashes")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	pos1, _ := mustFEN(t, engine.InitialFEN)
	pos2 := chess.NewStandardPosition()

	if h1, h2 := WeakHash(pos1), WeakHash(pos2); h1 != h2 {
		t.Errorf("Identical positions produced different weak hashes: %x != %x", h1, h2)
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(0)
	pos := chess.NewStandardPosition()

	if _, dup := detector.CheckAndAdd(pos, chess.White, 0); dup {
		t.Error("First position was marked as duplicate")
	}

	first, dup := detector.CheckAndAdd(pos, chess.White, 5)
	if !dup {
		t.Error("Duplicate position was not detected")
	}
	if first != 0 {
		t.Errorf("first index = %d, want 0", first)
	}

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", detector.DuplicateCount())
	}
}

func TestDuplicateDetectorDifferentPositions(t *testing.T) {
	detector := NewDuplicateDetector(0)

	pos1, toMove1 := mustFEN(t, engine.InitialFEN)
	pos2, toMove2 := mustFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	if _, dup := detector.CheckAndAdd(pos1, toMove1, 0); dup {
		t.Error("Position 1 was incorrectly marked as duplicate")
	}
	if _, dup := detector.CheckAndAdd(pos2, toMove2, 1); dup {
		t.Error("Position 2 was incorrectly marked as duplicate")
	}
	if _, dup := detector.CheckAndAdd(pos1, chess.Black, 2); dup {
		t.Error("Side to move should distinguish positions")
	}

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 3 {
		t.Errorf("Expected 3 unique positions, got %d", detector.UniqueCount())
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(1)
	pos := chess.NewStandardPosition()

	detector.CheckAndAdd(pos, chess.White, 0)
	if !detector.IsFull() {
		t.Error("detector should be full after one position")
	}

	detector.CheckAndAdd(pos, chess.Black, 1)
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique position at capacity, got %d", detector.UniqueCount())
	}
	if _, dup := detector.CheckAndAdd(pos, chess.Black, 2); dup {
		t.Error("positions beyond capacity are not recorded")
	}
	if _, dup := detector.CheckAndAdd(pos, chess.White, 3); !dup {
		t.Error("recorded positions are still detected when full")
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(0)
	pos := chess.NewStandardPosition()

	detector.CheckAndAdd(pos, chess.White, 0)
	detector.CheckAndAdd(pos, chess.White, 1)

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique positions after reset, got %d", detector.UniqueCount())
	}
}
