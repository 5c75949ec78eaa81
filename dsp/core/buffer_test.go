package core

import "testing"

func TestResize(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		n       int
		wantLen int
		reuse   bool
	}{
		{"shrink", 8, 3, 3, true},
		{"grow within cap", 8, 6, 6, true},
		{"grow past cap", 4, 10, 10, false},
		{"zero", 4, 0, 0, true},
		{"negative", 4, -2, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]float64, 2, tt.cap)
			out := Resize(buf, tt.n)
			if len(out) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(out), tt.wantLen)
			}
			if reused := cap(out) == cap(buf); reused != tt.reuse {
				t.Fatalf("reused = %v, want %v", reused, tt.reuse)
			}
		})
	}
}

func TestResizeKeepsValues(t *testing.T) {
	buf := []float64{7, 8, 9}
	out := Resize(buf[:1], 3)
	if out[1] != 8 || out[2] != 9 {
		t.Fatalf("Resize() = %v, want stale values kept", out)
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}

	if n := CopyInto(make([]float64, 4), []float64{5}); n != 1 {
		t.Fatalf("short src: n = %d, want 1", n)
	}
}

func TestZeroAndFill(t *testing.T) {
	buf := []float64{1, 2, 3}
	Fill(buf, -0.5)
	for i, v := range buf {
		if v != -0.5 {
			t.Fatalf("Fill: buf[%d] = %v, want -0.5", i, v)
		}
	}

	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("Zero: buf[%d] = %v, want 0", i, v)
		}
	}
}
