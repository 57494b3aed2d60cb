package chess

import (
	"fmt"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a row-major index into the 64 cells of a board.
// Row 0 holds a8..h8 and row 7 holds a1..h1, so square 0 is a8
// and square 63 is h1.
type Square int

// NoSquare is returned where no square applies.
const NoSquare Square = -1

// File is a board column, FileA through FileH.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a board row, Rank1 through Rank8.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Membership tables, filled once at init and read-only afterwards.
var (
	fileTable [BoardSize][NumSquares]bool
	rankTable [BoardSize][NumSquares]bool
)

func init() {
	for sq := 0; sq < NumSquares; sq++ {
		fileTable[sq%BoardSize][sq] = true
		rankTable[BoardSize-1-sq/BoardSize][sq] = true
	}
}

// IsValid reports whether i addresses a board cell.
func IsValid(i int) bool {
	return i >= 0 && i < NumSquares
}

// OnFile reports whether sq lies on file f. Invalid squares lie on no file.
func OnFile(sq Square, f File) bool {
	if !sq.IsValid() || f < FileA || f > FileH {
		return false
	}
	return fileTable[f][sq]
}

// OnRank reports whether sq lies on rank r. Invalid squares lie on no rank.
func OnRank(sq Square, r Rank) bool {
	if !sq.IsValid() || r < Rank1 || r > Rank8 {
		return false
	}
	return rankTable[r][sq]
}

// MakeSquare returns the square at file f and rank r.
func MakeSquare(f File, r Rank) Square {
	return Square((BoardSize-1-int(r))*BoardSize + int(f))
}

// IsValid reports whether sq is in [0,63].
func (sq Square) IsValid() bool {
	return IsValid(int(sq))
}

// File returns the file of sq.
func (sq Square) File() File {
	return File(int(sq) % BoardSize)
}

// Rank returns the rank of sq.
func (sq Square) Rank() Rank {
	return Rank(BoardSize - 1 - int(sq)/BoardSize)
}

// String returns the algebraic name of sq, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return MakeSquare(File(name[0]-'a'), Rank(name[1]-'1')), nil
}

// mustBeValid panics when sq is off the board; reading past the grid is a
// broken caller contract, not a recoverable failure.
func mustBeValid(sq Square) {
	if !sq.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidSquare, "square %d", int(sq)))
	}
}
