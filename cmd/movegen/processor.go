// processor.go - Per-position enumeration and report output
package main

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// Processor turns FEN strings into reports according to cfg.
type Processor struct {
	cfg    *config.Config
	moves  []string
	logger zerolog.Logger
}

// NewProcessor creates a processor. moves are played from every input
// position before it is enumerated.
func NewProcessor(cfg *config.Config, moves string, logger zerolog.Logger) *Processor {
	return &Processor{
		cfg:    cfg,
		moves:  strings.Fields(moves),
		logger: logger,
	}
}

// enumerationSide returns the pieces to enumerate for a position.
func (p *Processor) enumerationSide(toMove chess.Colour) engine.Side {
	if p.cfg.Enumeration.ToMoveOnly {
		return engine.SideOf(toMove)
	}
	return p.cfg.Enumeration.Side
}

// perftColour is the side that moves first in perft: the selected colour
// when one is selected, otherwise the side to move.
func perftColour(side engine.Side, toMove chess.Colour) chess.Colour {
	switch side {
	case engine.WhiteSide:
		return chess.White
	case engine.BlackSide:
		return chess.Black
	}
	return toMove
}

// setUp parses item and plays the configured moves from it. Failures
// carry the position number and FEN.
func (p *Processor) setUp(item worker.WorkItem) (*engine.Game, error) {
	g, err := engine.NewGameFromFEN(item.FEN)
	if err != nil {
		return nil, &errors.PositionError{Err: err, Index: item.Index + 1, FEN: item.FEN}
	}
	for _, text := range p.moves {
		if err := g.PlayText(text); err != nil {
			return nil, &errors.PositionError{Err: err, Index: item.Index + 1, FEN: item.FEN, MoveText: text}
		}
	}
	return g, nil
}

// Process handles one batch item on the calling goroutine. It is the
// worker.ProcessFunc used for batches.
func (p *Processor) Process(_ context.Context, item worker.WorkItem) worker.ProcessResult {
	g, err := p.setUp(item)
	if err != nil {
		return worker.ProcessResult{Index: item.Index, FEN: item.FEN, Err: err}
	}

	side := p.enumerationSide(g.ToMove)
	result := worker.ProcessResult{
		Index:    item.Index,
		FEN:      g.FEN(),
		Position: g.Position,
		ToMove:   g.ToMove,
		Moves:    engine.GenerateSideMoves(g.Position, side),
	}

	if depth := p.cfg.Enumeration.PerftDepth; depth > 0 {
		colour := perftColour(side, g.ToMove)
		result.Nodes = engine.Perft(g.Position, colour, depth)
		if p.cfg.Output.Divide {
			result.Divide = engine.Divide(g.Position, colour, depth)
		}
	}
	return result
}

// ProcessParallel handles a single position, spreading the work of that
// one position over the configured workers.
func (p *Processor) ProcessParallel(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	g, err := p.setUp(item)
	if err != nil {
		return worker.ProcessResult{Index: item.Index, FEN: item.FEN, Err: err}
	}

	side := p.enumerationSide(g.ToMove)
	n := p.cfg.Enumeration.Workers
	result := worker.ProcessResult{Index: item.Index, FEN: g.FEN(), Position: g.Position, ToMove: g.ToMove}

	result.Moves, err = engine.GenerateMovesParallel(ctx, g.Position, side, n)
	if err != nil {
		result.Err = err
		return result
	}

	if depth := p.cfg.Enumeration.PerftDepth; depth > 0 {
		colour := perftColour(side, g.ToMove)
		result.Nodes, err = engine.PerftParallel(ctx, g.Position, colour, depth, n)
		if err != nil {
			result.Err = err
			return result
		}
		if p.cfg.Output.Divide {
			result.Divide = engine.Divide(g.Position, colour, depth)
		}
	}
	return result
}

// Run enumerates every FEN and writes one report per input, in input
// order. It returns the number of positions that failed. w is closed
// before Run returns, whether or not a write failed.
func (p *Processor) Run(ctx context.Context, fens []string, w output.ReportWriter) (failed int, err error) {
	defer func() {
		err = errors.Join(err, w.Close())
	}()

	var results []worker.ProcessResult
	if len(fens) == 1 {
		results = []worker.ProcessResult{p.ProcessParallel(ctx, worker.WorkItem{FEN: fens[0]})}
	} else {
		pool := worker.NewPool(p.Process,
			worker.WithWorkers(p.cfg.Enumeration.Workers),
			worker.WithBufferSize(p.cfg.Enumeration.BufferSize),
			worker.WithLogger(p.logger))
		results = pool.Run(ctx, fens)
	}

	var detector *hashing.DuplicateDetector
	if p.cfg.Enumeration.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(p.cfg.Enumeration.DuplicateCapacity)
	}

	for _, r := range results {
		var report *output.Report
		switch {
		case r.Err != nil:
			failed++
			p.logger.Warn().Err(r.Err).Int("position", r.Index+1).Msg("skipping position")
			report = output.NewErrorReport(r.Index, r.FEN, r.Err)
		case detector != nil:
			if first, dup := detector.CheckAndAdd(r.Position, r.ToMove, r.Index); dup {
				report = output.NewDuplicateReport(r.Index, r.FEN, first)
				break
			}
			report = p.report(r)
		default:
			report = p.report(r)
		}
		if err = w.WriteReport(report); err != nil {
			return failed, err
		}
	}
	if detector != nil {
		p.logger.Info().
			Int("unique", detector.UniqueCount()).
			Int("duplicates", detector.DuplicateCount()).
			Msg("duplicate detection")
	}
	return failed, nil
}

// report converts a successful result into its output form.
func (p *Processor) report(r worker.ProcessResult) *output.Report {
	report := output.NewReport(r.Index, r.FEN, r.ToMove, r.Moves)
	report.Depth = p.cfg.Enumeration.PerftDepth
	report.Nodes = r.Nodes
	report.Divide = r.Divide
	if p.cfg.Output.ShowBoard {
		report.Board = r.Position.String()
	}
	return report
}
