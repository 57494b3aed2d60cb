package chess

// Direction vectors for the sliding pieces.
var (
	bishopVectors = []int{-9, -7, 7, 9}
	rookVectors   = []int{-8, -1, 1, 8}
	queenVectors  = []int{-9, -7, 7, 9, -8, -1, 1, 8}
)

func bishopMoves(p Piece, pos *Position) []Move {
	return slide(p, pos, bishopVectors, bishopExclusions)
}

func rookMoves(p Piece, pos *Position) []Move {
	return slide(p, pos, rookVectors, rookExclusions)
}

func queenMoves(p Piece, pos *Position) []Move {
	return slide(p, pos, queenVectors, queenExclusions)
}

// slide walks each vector independently from p's square. The exclusion is
// checked against the square the walk is currently on, so a ray stops at
// the edge file instead of wrapping into the next row. Any occupant ends
// the ray; an enemy occupant is captured first.
func slide(p Piece, pos *Position, vectors []int, excl edgeExclusions) []Move {
	moves := make([]Move, 0, 2*len(vectors))
	for _, v := range vectors {
		sq := p.Square
		for {
			if excl.blocks(sq, v) {
				break
			}
			next := sq + Square(v)
			if !next.IsValid() {
				break
			}
			cell := pos.cells[next]
			if !cell.occupied {
				moves = append(moves, NewQuietMove(p, next))
				sq = next
				continue
			}
			if cell.piece.Colour != p.Colour {
				moves = append(moves, NewCaptureMove(p, next, cell.piece))
			}
			break
		}
	}
	return moves
}
