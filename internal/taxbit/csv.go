package taxbit

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Reader decodes records from a TaxBit CSV stream. The first row must be
// the header.
type Reader struct {
	csv    *csv.Reader
	schema Schema
	index  HeaderIndex
	header bool
	line   int
}

func NewReader(r io.Reader, schema Schema) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	return &Reader{csv: cr, schema: schema}
}

// Header reads and validates the header row if that has not happened yet.
func (r *Reader) Header() (HeaderIndex, error) {
	if r.header {
		return r.index, nil
	}

	row, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return r.index, fmt.Errorf("%w: empty input", ErrMissingColumn)
		}
		return r.index, err
	}
	r.line, _ = r.csv.FieldPos(0)

	idx, err := NewHeaderIndex(row)
	if err != nil {
		return r.index, err
	}

	r.index = idx
	r.header = true
	return idx, nil
}

// Read returns the next record. A row that fails to parse yields its error
// and the reader moves on to the next row; io.EOF marks the end.
func (r *Reader) Read() (Record, error) {
	if _, err := r.Header(); err != nil {
		return Record{}, err
	}

	row, err := r.csv.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			r.line = pe.StartLine
		}
		return Record{}, err
	}
	r.line, _ = r.csv.FieldPos(0)

	return r.schema.ParseRow(r.index, row)
}

// Line is the 1-based line where the row most recently read starts, header
// included.
func (r *Reader) Line() int {
	return r.line
}

// ReadAll reads to EOF and stops at the first error.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("line %d: %w", r.line, err)
		}
		records = append(records, rec)
	}
}

// Writer encodes records as TaxBit CSV, header first.
type Writer struct {
	csv    *csv.Writer
	schema Schema
	header bool
}

func NewWriter(w io.Writer, schema Schema) *Writer {
	return &Writer{csv: csv.NewWriter(w), schema: schema}
}

func (w *Writer) WriteHeader() error {
	if w.header {
		return nil
	}
	if err := w.csv.Write(Columns[:]); err != nil {
		return err
	}
	w.header = true
	return nil
}

func (w *Writer) Write(r Record) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	return w.csv.Write(w.schema.FormatRow(r))
}

func (w *Writer) WriteAll(records []Record) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.csv.Write(w.schema.FormatRow(r)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
