package chess

// Single-hop offsets.
var (
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
)

func kingMoves(p Piece, pos *Position) []Move {
	return step(p, pos, kingOffsets, kingExclusions)
}

func knightMoves(p Piece, pos *Position) []Move {
	return step(p, pos, knightOffsets, knightExclusions)
}

// step tries each offset once from p's square. Exclusions are keyed on the
// origin file; a short hop can cross a row boundary and still pass the
// plain bounds check.
func step(p Piece, pos *Position, offsets []int, excl edgeExclusions) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, offset := range offsets {
		if excl.blocks(p.Square, offset) {
			continue
		}
		to := p.Square + Square(offset)
		if !to.IsValid() {
			continue
		}
		cell := pos.cells[to]
		switch {
		case !cell.occupied:
			moves = append(moves, NewQuietMove(p, to))
		case cell.piece.Colour != p.Colour:
			moves = append(moves, NewCaptureMove(p, to, cell.piece))
		}
	}
	return moves
}
