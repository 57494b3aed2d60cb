package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingRights records the castling field of a FEN string. It is only
// used to seed the first-move flags of kings and rooks.
type castlingRights struct {
	whiteKing, whiteQueen, blackKing, blackQueen bool
}

// Home squares consulted when mapping castling rights to first-move flags.
var (
	whiteKingHome      = chess.MakeSquare(chess.FileE, chess.Rank1)
	blackKingHome      = chess.MakeSquare(chess.FileE, chess.Rank8)
	whiteKingRookHome  = chess.MakeSquare(chess.FileH, chess.Rank1)
	whiteQueenRookHome = chess.MakeSquare(chess.FileA, chess.Rank1)
	blackKingRookHome  = chess.MakeSquare(chess.FileH, chess.Rank8)
	blackQueenRookHome = chess.MakeSquare(chess.FileA, chess.Rank8)
)

// NewPositionFromFEN creates a position from a FEN string and returns the
// side to move. Only the placement, side and castling fields are read.
//
// First-move flags are derived: a pawn off its home rank has moved, and a
// king or rook has moved unless the castling field still grants the right
// it would need. Every other piece starts unmoved.
func NewPositionFromFEN(fen string) (chess.Position, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return chess.Position{}, chess.White, err
	}

	for i := range pieces {
		pieces[i].HasMoved = hasMoved(pieces[i], rights)
	}

	pos, err := chess.NewPosition(pieces...)
	if err != nil {
		return chess.Position{}, chess.White, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return pos, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(placement string) ([]chess.Piece, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	var pieces []chess.Piece
	for i, row := range ranks {
		rank := chess.Rank8 - chess.Rank(i)
		file := chess.FileA
		for _, c := range row {
			switch {
			case c > unicode.MaxASCII:
				return nil, fmt.Errorf("invalid piece character: %q: %w", c, errors.ErrInvalidFEN)
			case c >= '1' && c <= '8':
				file += chess.File(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind {
					return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file > chess.FileH {
					return nil, fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				pieces = append(pieces, chess.NewPiece(kind, colour, chess.MakeSquare(file, rank)))
				file++
			}
		}
		if file != chess.FileH+1 {
			return nil, fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return pieces, nil
}

// parseSideToMove parses the side to move field. White moves if it is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castlingRights, error) {
	var rights castlingRights
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.whiteKing = true
		case 'Q':
			rights.whiteQueen = true
		case 'k':
			rights.blackKing = true
		case 'q':
			rights.blackQueen = true
		default:
			return rights, fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	return rights, nil
}

// hasMoved derives the first-move flag of a freshly parsed piece.
func hasMoved(p chess.Piece, rights castlingRights) bool {
	switch p.Kind {
	case chess.Pawn:
		return !chess.OnRank(p.Square, p.Colour.HomeRank())
	case chess.King:
		if p.Colour == chess.White {
			return p.Square != whiteKingHome || !(rights.whiteKing || rights.whiteQueen)
		}
		return p.Square != blackKingHome || !(rights.blackKing || rights.blackQueen)
	case chess.Rook:
		switch p.Square {
		case whiteKingRookHome:
			return p.Colour != chess.White || !rights.whiteKing
		case whiteQueenRookHome:
			return p.Colour != chess.White || !rights.whiteQueen
		case blackKingRookHome:
			return p.Colour != chess.Black || !rights.blackKing
		case blackQueenRookHome:
			return p.Colour != chess.Black || !rights.blackQueen
		}
		return true
	}
	return false
}

// PositionToFEN converts a position to a FEN string. The castling field is
// rebuilt from the first-move flags; en passant is never set and the clocks
// are always "0 1".
func PositionToFEN(pos chess.Position, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos chess.Position) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if sq > 0 && sq.File() == chess.FileA {
			sb.WriteByte('/')
		}
		p, ok := pos.PieceAt(sq)
		if !ok {
			// Runs of empty squares collapse into a single digit.
			run := 1
			for sq.File() < chess.FileH {
				if _, next := pos.PieceAt(sq + 1); next {
					break
				}
				sq++
				run++
			}
			sb.WriteByte(byte('0' + run))
			continue
		}
		sb.WriteByte(p.Letter())
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos chess.Position) {
	unmoved := func(sq chess.Square, kind chess.Kind, colour chess.Colour) bool {
		p, ok := pos.PieceAt(sq)
		return ok && p.Kind == kind && p.Colour == colour && !p.HasMoved
	}

	start := sb.Len()
	if unmoved(whiteKingHome, chess.King, chess.White) {
		if unmoved(whiteKingRookHome, chess.Rook, chess.White) {
			sb.WriteByte('K')
		}
		if unmoved(whiteQueenRookHome, chess.Rook, chess.White) {
			sb.WriteByte('Q')
		}
	}
	if unmoved(blackKingHome, chess.King, chess.Black) {
		if unmoved(blackKingRookHome, chess.Rook, chess.Black) {
			sb.WriteByte('k')
		}
		if unmoved(blackQueenRookHome, chess.Rook, chess.Black) {
			sb.WriteByte('q')
		}
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// NewInitialPosition returns the standard starting position with White to move.
func NewInitialPosition() chess.Position {
	return chess.NewStandardPosition()
}
