package sink

import (
	"fmt"
	"slices"
	"sync"
)

// Row is one written (row, intensity) pair.
type Row struct {
	Number int
	Value  float64
}

// Memory is an Opener that keeps every spectrum in memory.
type Memory struct {
	mu      sync.Mutex
	spectra map[int]*Recorder
}

// NewMemory returns an empty in-memory Opener.
func NewMemory() *Memory {
	return &Memory{spectra: make(map[int]*Recorder)}
}

// Name implements Opener.
func (m *Memory) Name(index int) string {
	return fmt.Sprintf("memory:%d", index)
}

// Open implements Opener. Reopening an index replaces its rows.
func (m *Memory) Open(index int) (RowWriter, error) {
	r := &Recorder{}
	m.mu.Lock()
	m.spectra[index] = r
	m.mu.Unlock()
	return r, nil
}

// Rows returns a copy of the rows written for index.
func (m *Memory) Rows(index int) []Row {
	m.mu.Lock()
	r, ok := m.spectra[index]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return r.Rows()
}

// Indices returns the opened spectrum indices in ascending order.
func (m *Memory) Indices() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]int, 0, len(m.spectra))
	for i := range m.spectra {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Closed reports whether the writer for index was closed.
func (m *Memory) Closed(index int) bool {
	m.mu.Lock()
	r, ok := m.spectra[index]
	m.mu.Unlock()
	return ok && r.Closed()
}

// Recorder is a RowWriter that appends rows to a slice.
type Recorder struct {
	mu     sync.Mutex
	rows   []Row
	closed bool
}

// WriteRow implements RowWriter.
func (r *Recorder) WriteRow(row int, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.rows = append(r.rows, Row{Number: row, Value: value})
	return nil
}

// Close implements RowWriter.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Rows returns a copy of the recorded rows.
func (r *Recorder) Rows() []Row {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.rows)
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
