package core

import "testing"

func TestAxis(t *testing.T) {
	x := Axis(5)
	if len(x) != 5 {
		t.Fatalf("len = %d, want 5", len(x))
	}
	for i, v := range x {
		if v != float64(i) {
			t.Fatalf("x[%d] = %v, want %d", i, v, i)
		}
	}
}

func TestAxisEmpty(t *testing.T) {
	if x := Axis(0); len(x) != 0 {
		t.Fatalf("len = %d, want 0", len(x))
	}
	if x := Axis(-3); len(x) != 0 {
		t.Fatalf("len = %d, want 0", len(x))
	}
}

func TestAxisIntoReuse(t *testing.T) {
	buf := make([]float64, 2, 16)
	out := AxisInto(buf, 10)
	if cap(out) != 16 {
		t.Fatalf("cap = %d, want 16", cap(out))
	}
	if out[9] != 9 {
		t.Fatalf("out[9] = %v, want 9", out[9])
	}
}
