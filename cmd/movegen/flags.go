// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
)

var (
	// Input options
	fenString    = flag.String("fen", "", "Position to enumerate, in FEN (default: read FENs from files or stdin)")
	fileListFile = flag.String("f", "", "File containing list of FEN files to process (one per line)")
	startPos     = flag.Bool("startpos", false, "Enumerate the standard starting position")
	playMoves    = flag.String("moves", "", "Coordinate moves to play before enumerating (e.g. 'e2e4 e7e5')")

	// Enumeration options
	sideFlag   = flag.String("side", "", "Pieces to enumerate: both, white, black (default: side to move)")
	perftDepth = flag.Int("depth", 0, "Count perft nodes to this depth (0 = off)")
	divideFlag = flag.Bool("divide", false, "Report perft counts per root move")
	workers    = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 10, "Worker pool channel buffer size")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Report repeated positions once")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum positions remembered for -D (0 = unlimited)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	streamJSON = flag.Bool("stream", false, "With -J, write one JSON document per position as it is produced")
	showBoard  = flag.Bool("board", false, "Print a board diagram with each position")
	noColor    = flag.Bool("nocolor", false, "Never highlight captures")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("verbosity", 1, "0=errors only, 1=summary, 2=debug")
	quiet     = flag.Bool("s", false, "Silent mode (same as -verbosity 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyEnumerationFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyEnumerationFlags configures side, perft and worker settings.
func applyEnumerationFlags(cfg *config.Config) error {
	if *sideFlag != "" {
		side, err := engine.ParseSide(*sideFlag)
		if err != nil {
			return err
		}
		cfg.Enumeration.ToMoveOnly = false
		cfg.Enumeration.Side = side
	}
	cfg.Enumeration.PerftDepth = *perftDepth
	cfg.Enumeration.BufferSize = *bufferSize
	cfg.Enumeration.SuppressDuplicates = *suppressDuplicates
	cfg.Enumeration.DuplicateCapacity = *duplicateCapacity

	cfg.Enumeration.Workers = *workers
	if cfg.Enumeration.Workers == 0 {
		cfg.Enumeration.Workers = runtime.NumCPU()
	}
	return nil
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.Stream = *streamJSON
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Divide = *divideFlag
	cfg.Output.Color = !*noColor
}
