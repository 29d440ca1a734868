package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"movieinfo/internal/movies"
)

// Writer writes enriched rows beneath a Title,Year header. Records end in
// CRLF and are flushed one at a time.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
	rows   int
}

// Create truncates path and writes the header.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.closer = f
	return w, nil
}

// NewWriter writes the header to dst.
func NewWriter(dst io.Writer) (*Writer, error) {
	cw := csv.NewWriter(dst)
	cw.UseCRLF = true
	w := &Writer{csv: cw}
	if err := w.writeRecord(movies.OutputFields); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	return w, nil
}

// Write appends one output row. Absent fields are written as empty cells.
func (w *Writer) Write(row movies.OutputRow) error {
	if err := w.writeRecord(row.Values()); err != nil {
		return fmt.Errorf("write row %d: %w", w.rows+1, err)
	}
	w.rows++
	return nil
}

// Rows returns the number of data rows written.
func (w *Writer) Rows() int {
	return w.rows
}

// Close flushes pending output and closes the file opened by Create.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.csv.Flush()
	err := w.csv.Error()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
		w.closer = nil
	}
	return err
}

func (w *Writer) writeRecord(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}
