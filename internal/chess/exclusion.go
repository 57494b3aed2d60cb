package chess

// edgeExclusions maps an origin file to the offsets that would wrap a row
// boundary if added to a square on that file.
type edgeExclusions map[File][]int

// blocks reports whether offset is excluded for a piece standing on sq.
func (e edgeExclusions) blocks(sq Square, offset int) bool {
	for file, offsets := range e {
		if !OnFile(sq, file) {
			continue
		}
		for _, o := range offsets {
			if o == offset {
				return true
			}
		}
	}
	return false
}

// Per-variant exclusion data. Sliders consult theirs before every step;
// steppers consult theirs once against the origin square.
var (
	bishopExclusions = edgeExclusions{
		FileA: {-9, 7},
		FileH: {9, -7},
	}
	rookExclusions = edgeExclusions{
		FileA: {-1},
		FileH: {1},
	}
	queenExclusions = edgeExclusions{
		FileA: {-9, 7, -1},
		FileH: {9, -7, 1},
	}
	kingExclusions = edgeExclusions{
		FileA: {-9, -1, 7},
		FileH: {9, 1, -7},
	}
	knightExclusions = edgeExclusions{
		FileA: {-17, -10, 6, 15},
		FileB: {-10, 6},
		FileG: {10, -6},
		FileH: {17, 10, -6, -15},
	}
)

// Pawn diagonals are keyed on colour as well as file because the offset is
// multiplied by the colour's direction before it is applied.
var pawnCaptureExclusions = map[Colour]edgeExclusions{
	White: {
		FileH: {7},
		FileA: {9},
	},
	Black: {
		FileA: {7},
		FileH: {9},
	},
}
