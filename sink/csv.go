package sink

import (
	"fmt"
	"io"
	"strconv"
)

// CSV writes rows as "{row},{value}\n" without a header.
//
// Every row is a separate Write call on the underlying writer, so a failure
// affects only that row.
type CSV struct {
	w      io.Writer
	closer io.Closer
	buf    []byte
	closed bool
}

// NewCSV returns a CSV writer on w. If w is an io.Closer, Close closes it.
func NewCSV(w io.Writer) *CSV {
	c := &CSV{w: w, buf: make([]byte, 0, 32)}
	if closer, ok := w.(io.Closer); ok {
		c.closer = closer
	}
	return c
}

// AppendRow appends the textual form of one row to dst.
func AppendRow(dst []byte, row int, value float64) []byte {
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ',')
	dst = strconv.AppendFloat(dst, value, 'f', -1, 64)
	return append(dst, '\n')
}

// WriteRow implements RowWriter.
func (c *CSV) WriteRow(row int, value float64) error {
	if c.closed {
		return ErrClosed
	}
	c.buf = AppendRow(c.buf[:0], row, value)
	if _, err := c.w.Write(c.buf); err != nil {
		return fmt.Errorf("sink: write row %d: %w", row, err)
	}
	return nil
}

// Close implements RowWriter. Closing twice is a no-op.
func (c *CSV) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.closer == nil {
		return nil
	}
	if err := c.closer.Close(); err != nil {
		return fmt.Errorf("sink: close: %w", err)
	}
	return nil
}
