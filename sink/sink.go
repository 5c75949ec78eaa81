// Package sink writes synthesized spectra as flat numeric rows.
//
// A spectrum is written through a RowWriter, one (row, intensity) pair per
// channel. An Opener hands out one RowWriter per spectrum index:
//
//	out := sink.Dir("data", "spectrum")
//	w, err := out.Open(0) // data/spectrum-0000.csv
//
// Writers are not safe for concurrent use. Openers are.
package sink

import "errors"

// ErrClosed is returned when writing to a closed writer.
var ErrClosed = errors.New("sink: writer closed")

// RowWriter receives the rows of one spectrum in order.
type RowWriter interface {
	// WriteRow writes one row. A failed row does not invalidate the writer.
	WriteRow(row int, value float64) error
	Close() error
}

// Opener creates the destination for one spectrum.
type Opener interface {
	Open(index int) (RowWriter, error)
	// Name identifies the destination of index in logs and errors.
	Name(index int) string
}
