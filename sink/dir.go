package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Directory opens one CSV file per spectrum inside a directory.
type Directory struct {
	path   string
	prefix string

	once     sync.Once
	mkdirErr error
}

// Dir returns an Opener writing path/<prefix>-NNNN.csv, where NNNN is the
// zero-padded spectrum index. The directory is created on first Open.
func Dir(path, prefix string) *Directory {
	return &Directory{path: path, prefix: prefix}
}

// Path returns the output directory.
func (d *Directory) Path() string { return d.path }

// Name implements Opener.
func (d *Directory) Name(index int) string {
	return filepath.Join(d.path, fmt.Sprintf("%s-%04d.csv", d.prefix, index))
}

// Open implements Opener.
func (d *Directory) Open(index int) (RowWriter, error) {
	d.once.Do(func() {
		d.mkdirErr = os.MkdirAll(d.path, 0o755)
	})
	if d.mkdirErr != nil {
		return nil, fmt.Errorf("sink: create %s: %w", d.path, d.mkdirErr)
	}

	f, err := os.Create(d.Name(index))
	if err != nil {
		return nil, fmt.Errorf("sink: %w", err)
	}
	return NewCSV(f), nil
}
