package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"movieinfo/internal/movies"
)

// ErrMissingTitleColumn is returned when the header has no Title column.
var ErrMissingTitleColumn = errors.New("input header has no Title column")

// Reader yields one movies.Query per input data row.
type Reader struct {
	csv      *csv.Reader
	closer   io.Closer
	titleIdx int
	yearIdx  int
	header   []string
}

// Open opens path and reads its header using the named encoding.
func Open(path, encoding string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	r, err := NewReader(f, encoding)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader wraps src and consumes the header row. Column names are matched
// exactly after removing a byte order mark from the first cell. Year is
// optional; Title is required.
func NewReader(src io.Reader, encoding string) (*Reader, error) {
	decoded, err := decodeReader(src, encoding)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("input is empty: header row required")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = StripHeaderBOM(append([]string(nil), header...))

	r := &Reader{csv: cr, titleIdx: -1, yearIdx: -1, header: header}
	for i, name := range header {
		switch name {
		case movies.FieldTitle:
			if r.titleIdx < 0 {
				r.titleIdx = i
			}
		case movies.FieldYear:
			if r.yearIdx < 0 {
				r.yearIdx = i
			}
		}
	}
	if r.titleIdx < 0 {
		return nil, fmt.Errorf("%w (header: %s)", ErrMissingTitleColumn, strings.Join(header, ","))
	}
	return r, nil
}

// Header returns the input column names.
func (r *Reader) Header() []string {
	return append([]string(nil), r.header...)
}

// HasYear reports whether the input carries a Year column.
func (r *Reader) HasYear() bool {
	return r.yearIdx >= 0
}

// Next returns the next data row. Cells missing from short rows read as
// empty. It returns io.EOF after the last row.
func (r *Reader) Next() (movies.Query, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return movies.Query{}, io.EOF
		}
		return movies.Query{}, fmt.Errorf("read input row: %w", err)
	}
	return movies.Query{
		Title: cell(record, r.titleIdx),
		Year:  cell(record, r.yearIdx),
	}, nil
}

// Close releases the underlying file when the reader was created by Open.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
