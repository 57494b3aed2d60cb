// movegen enumerates pseudo-legal chess moves for positions given in FEN.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, cfg, flag.Args(), os.Stdin))
}

// run enumerates the selected inputs and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader) int {
	logger := newLogger(cfg)
	log.Logger = logger

	fens, err := collectInputs(*fenString, *startPos, *fileListFile, args, stdin)
	if err != nil {
		logger.Error().Err(err).Msg("reading input")
		return 1
	}
	if len(fens) == 0 {
		logger.Warn().Msg("no positions to enumerate")
		return 0
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	processor := NewProcessor(cfg, *playMoves, logger)
	failed, err := processor.Run(ctx, fens, writer)
	if err != nil {
		logger.Error().Err(err).Msg("writing output")
		return 1
	}

	logger.Info().
		Int("positions", len(fens)).
		Int("failed", failed).
		Int("workers", cfg.Enumeration.Workers).
		Msg("done")
	if failed > 0 {
		return 1
	}
	return 0
}

// newLogger returns a console logger on cfg.LogFile at the level the
// verbosity asks for.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Verbosity <= 0:
		level = zerolog.WarnLevel
	case cfg.Verbosity >= 2:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	out := zerolog.ConsoleWriter{Out: cfg.LogFile, NoColor: !isTerminal(cfg.LogFile)}
	return zerolog.New(out).With().Timestamp().Logger()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
// Captures are only highlighted when the output is a terminal.
func setupOutputFile(cfg *config.Config) {
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		cfg.OutputFile = file
	}
	if !isTerminal(cfg.OutputFile) {
		cfg.Output.Color = false
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movegen [options] [fen-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Enumerates pseudo-legal moves for chess positions given in FEN.\n")
	fmt.Fprintf(os.Stderr, "Positions are read one per line from the files, or stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  movegen -startpos -depth 3\n")
	fmt.Fprintf(os.Stderr, "  movegen -fen '8/8/8/3q4/8/8/8/8 b - - 0 1' -J\n")
	fmt.Fprintf(os.Stderr, "  movegen -workers 8 -side white positions.fen\n")
}
