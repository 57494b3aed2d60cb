package chess

// Pawn offsets before the colour's direction is applied.
const (
	pawnPush       = 8
	pawnDoublePush = 16
	pawnCaptureA   = 7
	pawnCaptureB   = 9
)

var pawnOffsets = []int{pawnCaptureA, pawnPush, pawnCaptureB, pawnDoublePush}

// pawnMoves handles pushes and diagonal captures. There is no promotion and
// no en passant: a pawn on the far rank simply has no forward square.
func pawnMoves(p Piece, pos *Position) []Move {
	dir := p.Colour.Direction()
	moves := make([]Move, 0, 4)

	for _, offset := range pawnOffsets {
		to := p.Square + Square(dir*offset)
		if !to.IsValid() {
			continue
		}

		switch offset {
		case pawnPush:
			if !pos.cells[to].occupied {
				moves = append(moves, NewQuietMove(p, to))
			}

		case pawnDoublePush:
			if p.HasMoved || !OnRank(p.Square, p.Colour.HomeRank()) {
				continue
			}
			between := p.Square + Square(dir*pawnPush)
			if !pos.cells[between].occupied && !pos.cells[to].occupied {
				moves = append(moves, NewQuietMove(p, to))
			}

		case pawnCaptureA, pawnCaptureB:
			if pawnCaptureExclusions[p.Colour].blocks(p.Square, offset) {
				continue
			}
			cell := pos.cells[to]
			if cell.occupied && cell.piece.Colour != p.Colour {
				moves = append(moves, NewCaptureMove(p, to, cell.piece))
			}
		}
	}
	return moves
}
