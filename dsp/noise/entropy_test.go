package noise

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"testing/iotest"
)

// patternReader repeats an 8-byte pattern forever, one byte per Read call.
type patternReader struct {
	pattern [8]byte
	pos     int
}

func (p *patternReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	b[0] = p.pattern[p.pos%8]
	p.pos++
	return 1, nil
}

func TestEntropyUniformRange(t *testing.T) {
	x, err := NewEntropy().Uniform(4096)
	if err != nil {
		t.Fatalf("Uniform() error = %v", err)
	}
	if len(x) != 4096 {
		t.Fatalf("len = %d, want 4096", len(x))
	}
	for i, v := range x {
		if v < 0 || v >= 1 {
			t.Fatalf("x[%d] = %v outside [0,1)", i, v)
		}
	}
}

func TestEntropyWordMapping(t *testing.T) {
	data := append(bytes.Repeat([]byte{0}, 8), bytes.Repeat([]byte{0xff}, 8)...)
	x, err := NewEntropyFrom(bytes.NewReader(data)).Uniform(2)
	if err != nil {
		t.Fatalf("Uniform() error = %v", err)
	}
	if x[0] != 0 {
		t.Fatalf("x[0] = %v, want 0", x[0])
	}
	if x[1] >= 1 || x[1] < 0.9999999 {
		t.Fatalf("x[1] = %v, want just below 1", x[1])
	}
}

func TestEntropyReadFailure(t *testing.T) {
	boom := errors.New("device gone")
	_, err := NewEntropyFrom(iotest.ErrReader(boom)).Uniform(3)
	if !errors.Is(err, ErrEntropy) || !errors.Is(err, boom) {
		t.Fatalf("Uniform() error = %v, want ErrEntropy wrapping cause", err)
	}

	_, err = NewEntropyFrom(bytes.NewReader(make([]byte, 5))).Uniform(1)
	if !errors.Is(err, ErrEntropy) {
		t.Fatalf("short read error = %v, want ErrEntropy", err)
	}
}

func TestEntropyConcurrentReadsStayAligned(t *testing.T) {
	src := NewEntropyFrom(&patternReader{pattern: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}})
	want := wordToUnit(0x0807060504030201)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				x, err := src.Uniform(13)
				if err != nil {
					errs <- err
					return
				}
				for _, v := range x {
					if v != want {
						errs <- errors.New("interleaved entropy read")
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
