package chess

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		index int
		want  bool
	}{
		{-9, false},
		{-1, false},
		{0, true},
		{27, true},
		{63, true},
		{64, false},
		{72, false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.index); got != tt.want {
			t.Errorf("IsValid(%d) = %v; want %v", tt.index, got, tt.want)
		}
	}
}

func TestSquareOrientation(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
		file File
		rank Rank
	}{
		{0, "a8", FileA, Rank8},
		{7, "h8", FileH, Rank8},
		{12, "e7", FileE, Rank7},
		{27, "d5", FileD, Rank5},
		{52, "e2", FileE, Rank2},
		{56, "a1", FileA, Rank1},
		{63, "h1", FileH, Rank1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.sq.String(), tt.name)
			testutil.AssertEqual(t, tt.sq.File(), tt.file)
			testutil.AssertEqual(t, tt.sq.Rank(), tt.rank)
			testutil.AssertEqual(t, MakeSquare(tt.file, tt.rank), tt.sq)
		})
	}
}

func TestEverySquareOnOneFileAndOneRank(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		files, ranks := 0, 0
		for i := 0; i < BoardSize; i++ {
			if OnFile(sq, File(i)) {
				files++
				testutil.AssertEqual(t, sq.File(), File(i), "file of %s", sq)
			}
			if OnRank(sq, Rank(i)) {
				ranks++
				testutil.AssertEqual(t, sq.Rank(), Rank(i), "rank of %s", sq)
			}
		}
		if files != 1 || ranks != 1 {
			t.Errorf("%s: on %d files and %d ranks; want 1 and 1", sq, files, ranks)
		}
	}
}

func TestMembershipOffBoard(t *testing.T) {
	testutil.AssertFalse(t, OnFile(-1, FileH))
	testutil.AssertFalse(t, OnFile(64, FileA))
	testutil.AssertFalse(t, OnRank(-8, Rank1))
	testutil.AssertFalse(t, OnRank(0, Rank(9)))
	testutil.AssertEqual(t, NoSquare.String(), "-")
}

func TestParseSquare(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		got, err := ParseSquare(sq.String())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, sq)
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "E4", "e44"} {
		_, err := ParseSquare(bad)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare, "ParseSquare(%q)", bad)
	}
}
