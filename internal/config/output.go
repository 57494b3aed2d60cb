package config

import "github.com/lgbarn/movegen-go/internal/errors"

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per move, grouped by position
	JSON                     // A single JSON array of position reports
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON reports.
	Format OutputFormat

	// Color highlights captures in text output. It is ignored for JSON and
	// for writers that are not terminals.
	Color bool

	// ShowBoard prints the position diagram above each text report.
	ShowBoard bool

	// Divide reports the perft count under each root move.
	Divide bool

	// Stream writes each JSON report as its own document as soon as it is
	// produced instead of one array at the end. Text output always streams.
	Stream bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: Text,
		Color:  true,
	}
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if c.Format != Text && c.Format != JSON {
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %d", int(c.Format))
	}
	return nil
}
