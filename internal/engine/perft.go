package engine

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// Perft counts the leaf nodes of the pseudo-legal move tree to depth,
// with colour moving first and sides alternating. Kings may be captured;
// nothing is pruned.
func Perft(pos chess.Position, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := GenerateMovesFor(pos, colour)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(pos.Apply(m), colour.Opposite(), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by
// coordinate text.
func Divide(pos chess.Position, colour chess.Colour, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range GenerateMovesFor(pos, colour) {
		counts[m.String()] += Perft(pos.Apply(m), colour.Opposite(), depth-1)
	}
	return counts
}

// PerftParallel is Perft with the root moves spread over at most workers
// goroutines. Cancellation is checked before each root move.
func PerftParallel(ctx context.Context, pos chess.Position, colour chess.Colour, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Perft(pos, colour, depth), nil
	}

	var nodes atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	roots := GenerateMovesFor(pos, colour)
	for _, m := range roots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			nodes.Add(Perft(pos.Apply(m), colour.Opposite(), depth-1))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	log.Debug().Int("depth", depth).Int("roots", len(roots)).Uint64("nodes", nodes.Load()).Msg("perft done")
	return nodes.Load(), nil
}
