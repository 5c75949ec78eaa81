package noise

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrEntropy is returned when the entropy device cannot be read.
var ErrEntropy = errors.New("noise: entropy read failed")

// Source supplies uniform values in [0, 1).
type Source interface {
	Uniform(n int) ([]float64, error)
}

// Entropy is a uniform Source backed by an entropy device. Each call reads
// all the bytes it needs under a lock, so concurrent callers never receive
// interleaved data.
type Entropy struct {
	mu sync.Mutex
	r  io.Reader
}

// NewEntropy returns a source reading the operating system's entropy device.
func NewEntropy() *Entropy {
	return &Entropy{r: rand.Reader}
}

// NewEntropyFrom returns a source reading r.
func NewEntropyFrom(r io.Reader) *Entropy {
	return &Entropy{r: r}
}

// Uniform reads 8n bytes and maps each little-endian word to [0, 1) using its
// top 53 bits.
func (e *Entropy) Uniform(n int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}

	buf := make([]byte, 8*n)
	e.mu.Lock()
	_, err := io.ReadFull(e.r, buf)
	e.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = wordToUnit(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return out, nil
}

func wordToUnit(w uint64) float64 {
	return float64(w>>11) / (1 << 53)
}
