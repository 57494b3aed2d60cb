// Package output formats move-enumeration reports as text or JSON.
package output

import (
	"github.com/samber/lo"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// Report describes the moves generated for one input position.
type Report struct {
	Index    int               `json:"index"`
	FEN      string            `json:"fen"`
	ToMove   string            `json:"toMove,omitempty"`
	Moves    []MoveReport      `json:"moves"`
	Captures int               `json:"captures"`
	Depth    int               `json:"depth,omitempty"`
	Nodes    uint64            `json:"nodes,omitempty"`
	Divide   map[string]uint64 `json:"divide,omitempty"`
	Board    string            `json:"board,omitempty"`
	Error    string            `json:"error,omitempty"`

	// DuplicateOf is the 1-based number of an earlier identical position.
	DuplicateOf int `json:"duplicateOf,omitempty"`
}

// MoveReport is one generated move.
type MoveReport struct {
	Piece    string `json:"piece"` // FEN letter, upper case for White
	From     string `json:"from"`
	To       string `json:"to"`
	UCI      string `json:"uci"`
	Move     string `json:"move"` // Long algebraic, e.g. "Nb1-c3"
	Captured string `json:"captured,omitempty"`
}

// NewReport builds the report for moves generated from the position at
// index in the input.
func NewReport(index int, fen string, toMove chess.Colour, moves []chess.Move) *Report {
	return &Report{
		Index:    index,
		FEN:      fen,
		ToMove:   toMove.String(),
		Moves:    lo.Map(moves, func(m chess.Move, _ int) MoveReport { return moveToReport(m) }),
		Captures: lo.CountBy(moves, chess.Move.IsCapture),
	}
}

// NewErrorReport records a position that could not be processed.
func NewErrorReport(index int, fen string, err error) *Report {
	return &Report{
		Index: index,
		FEN:   fen,
		Moves: []MoveReport{},
		Error: err.Error(),
	}
}

// NewDuplicateReport records a position already reported as number first
// (0-based).
func NewDuplicateReport(index int, fen string, first int) *Report {
	return &Report{
		Index:       index,
		FEN:         fen,
		Moves:       []MoveReport{},
		DuplicateOf: first + 1,
	}
}

func moveToReport(m chess.Move) MoveReport {
	mr := MoveReport{
		Piece: string(m.Piece.Letter()),
		From:  m.Origin().String(),
		To:    m.Destination.String(),
		UCI:   m.String(),
		Move:  m.Describe(),
	}
	if m.IsCapture() {
		mr.Captured = string(m.Captured.Letter())
	}
	return mr
}
