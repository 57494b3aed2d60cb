// Package worker fans batches of positions out to a fixed set of goroutines.
package worker

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// ErrStopped is reported for items a stopped pool discarded.
var ErrStopped = errors.New("worker pool stopped")

// WorkItem is one position of a batch, still in FEN form.
type WorkItem struct {
	Index int // Position in the input, used to restore order
	FEN   string
}

// ProcessResult is what a ProcessFunc reports for one WorkItem.
type ProcessResult struct {
	Index    int
	FEN      string
	Position chess.Position // After any moves played from the input
	ToMove   chess.Colour
	Moves    []chess.Move
	Nodes    uint64            // Perft count, zero when no depth was requested
	Divide   map[string]uint64 // Per root move, when requested
	Err      error
}

// ProcessFunc handles a single work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages workers that run a ProcessFunc over submitted items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	logger      zerolog.Logger
	wg          sync.WaitGroup
	stopped     atomic.Bool
	processed   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithLogger sets the logger used for pool lifecycle events.
func WithLogger(logger zerolog.Logger) PoolOption {
	return func(p *Pool) {
		p.logger = logger
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10, no logging.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers. Items are processed with ctx; once ctx is
// done the remaining items are drained and reported with ctx's error.
func (p *Pool) Start(ctx context.Context) {
	p.logger.Debug().Int("workers", p.numWorkers).Int("buffer", p.bufferSize).Msg("starting pool")
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Index: item.Index, FEN: item.FEN, Err: err}
			continue
		}
		result := p.processFunc(ctx, item)
		p.processed.Add(1)
		if result.Err != nil {
			p.logger.Debug().Err(result.Err).Int("worker", id).Int("index", item.Index).Msg("item failed")
		}
		p.resultChan <- result
	}
}

// Submit queues an item, blocking while the buffer is full. It gives up
// when ctx is done.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit queues an item without blocking. It returns false if the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued items instead of processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
	p.logger.Debug().Int64("processed", p.processed.Load()).Msg("pool closed")
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many items have been run through the ProcessFunc.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// Run starts the pool, feeds it fens and returns one result per input in
// input order. The pool is closed when Run returns.
func (p *Pool) Run(ctx context.Context, fens []string) []ProcessResult {
	p.Start(ctx)
	go func() {
		defer p.Close()
		for i, fen := range fens {
			if err := p.Submit(ctx, WorkItem{Index: i, FEN: fen}); err != nil {
				// Unsubmitted items are reported by the collector below.
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(fens))
	for r := range p.Results() {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int { return a.Index - b.Index })

	if len(results) < len(fens) {
		seen := make([]bool, len(fens))
		for _, r := range results {
			seen[r.Index] = true
		}
		err := ctx.Err()
		if err == nil {
			err = ErrStopped
		}
		for i, ok := range seen {
			if !ok {
				results = append(results, ProcessResult{Index: i, FEN: fens[i], Err: err})
			}
		}
		slices.SortFunc(results, func(a, b ProcessResult) int { return a.Index - b.Index })
	}
	return results
}
