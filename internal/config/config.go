// Package config provides configuration for the movegen tool.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Limits on user-supplied values.
const (
	MaxPerftDepth = 6
	MaxWorkers    = 256
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=summary, 2=per-position progress

	Enumeration *EnumerationConfig
	Output      *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// EnumerationConfig holds settings for how positions are enumerated.
type EnumerationConfig struct {
	// ToMoveOnly enumerates the side to move of each position and
	// overrides Side.
	ToMoveOnly bool

	// Side restricts generation to one colour or lists both.
	Side engine.Side

	// PerftDepth is the perft depth to count; 0 disables perft.
	PerftDepth int

	// Workers bounds the worker pool and the per-position goroutines.
	Workers int

	// BufferSize is the worker pool channel buffer.
	BufferSize int

	// SuppressDuplicates reports repeated positions once.
	SuppressDuplicates bool

	// DuplicateCapacity bounds the positions remembered for duplicate
	// detection; 0 means unlimited.
	DuplicateCapacity int
}

// NewEnumerationConfig creates an EnumerationConfig with default values.
func NewEnumerationConfig() *EnumerationConfig {
	return &EnumerationConfig{
		ToMoveOnly: true,
		Side:       engine.BothSides,
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks the enumeration settings.
func (c *EnumerationConfig) Validate() error {
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d outside 0..%d", c.PerftDepth, MaxPerftDepth)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d outside 1..%d", c.Workers, MaxWorkers)
	}
	if c.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer size %d", c.BufferSize)
	}
	if c.DuplicateCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "duplicate capacity %d", c.DuplicateCapacity)
	}
	return nil
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		Enumeration: NewEnumerationConfig(),
		Output:      NewOutputConfig(),
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output streams must be set")
	}
	if err := c.Enumeration.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
