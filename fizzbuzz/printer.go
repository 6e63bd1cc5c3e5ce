package fizzbuzz

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
)

// Printer emits one newline-terminated label line per covered integer to its writer.
type Printer struct {
	writer io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		writer: writer,
	}
}

// Print writes the label of every integer covered by the given Bounds to the writer, one line per integer, in
// increasing order. An empty Bounds produces no output and no error.
func (p *Printer) Print(bounds Bounds) error {
	buffered := bufio.NewWriter(p.writer)

	if err := bounds.ForEach(func(n int) error {
		if _, err := buffered.WriteString(Label(n)); err != nil {
			return errors.Errorf("unable to write label of %d: %w", n, err)
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return errors.Errorf("unable to write line terminator of %d: %w", n, err)
		}

		return nil
	}); err != nil {
		return err
	}

	if err := buffered.Flush(); err != nil {
		return errors.Errorf("unable to flush output: %w", err)
	}

	return nil
}
