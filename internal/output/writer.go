package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/movegen-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single position report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output, writing to w.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		if cfg.Output.Stream {
			return NewJSONWriterSingle(w)
		}
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.Color)
}

// TextWriter writes reports as indented plain text, one move per line.
type TextWriter struct {
	w       io.Writer
	capture *color.Color
	failure *color.Color
}

// NewTextWriter creates a text writer. When colored is false no escape
// sequences are written, whatever the terminal.
func NewTextWriter(w io.Writer, colored bool) *TextWriter {
	tw := &TextWriter{
		w:       w,
		capture: color.New(color.FgRed, color.Bold),
		failure: color.New(color.FgYellow),
	}
	if colored {
		tw.capture.EnableColor()
		tw.failure.EnableColor()
	} else {
		tw.capture.DisableColor()
		tw.failure.DisableColor()
	}
	return tw
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "position %d: %s\n", r.Index+1, r.FEN)
	if r.Error != "" {
		fmt.Fprintf(&sb, "  %s\n\n", tw.failure.Sprint("error: "+r.Error))
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	if r.DuplicateOf > 0 {
		fmt.Fprintf(&sb, "  duplicate of position %d\n\n", r.DuplicateOf)
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	if r.Board != "" {
		for _, line := range strings.Split(strings.TrimRight(r.Board, "\n"), "\n") {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	fmt.Fprintf(&sb, "  %s to move, %d moves (%d captures)\n", r.ToMove, len(r.Moves), r.Captures)
	for _, m := range r.Moves {
		if m.Captured != "" {
			fmt.Fprintf(&sb, "    %s\n", tw.capture.Sprint(m.Move))
		} else {
			fmt.Fprintf(&sb, "    %s\n", m.Move)
		}
	}
	if r.Depth > 0 {
		if len(r.Divide) > 0 {
			keys := make([]string, 0, len(r.Divide))
			for k := range r.Divide {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&sb, "  %s: %d\n", k, r.Divide[k])
			}
		}
		fmt.Fprintf(&sb, "  perft(%d) = %d\n", r.Depth, r.Nodes)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written as each report arrives.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
