package ensemble

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-specgen/dsp/peak"
)

func TestGenerateEmpty(t *testing.T) {
	for _, seed := range []int64{0, 1, 42} {
		p := Generate(0, seed)
		if p.Len() != 0 {
			t.Fatalf("Len() = %d, want 0", p.Len())
		}
		for _, x := range []float64{0, 100, 1339} {
			if got := p.Evaluate(x, 4.5); got != 4.5 {
				t.Fatalf("Evaluate(%v, 4.5) = %v, want 4.5", x, got)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(50, 1234)
	b := Generate(50, 1234)
	if a.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", a.Len())
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different ensembles")
	}

	c := Generate(50, 1235)
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical ensembles")
	}
}

func TestGenerateMatchesDrawOrder(t *testing.T) {
	const seed = 99
	p := Generate(3, seed)

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 3; i++ {
		center := rng.Float64() * DefaultChannels
		amplitude := 100 + rng.Float64()*1000
		width := 1 + rng.Float64()*25
		k := rng.Float64() * 0.1
		kind := kindOf(rng.Float64())

		s, ok := p[i].(peak.Skew)
		if !ok {
			t.Fatalf("p[%d] = %T, want peak.Skew", i, p[i])
		}
		if s.Center() != center || s.Steepness() != k {
			t.Fatalf("p[%d] center/steepness = %v/%v, want %v/%v", i, s.Center(), s.Steepness(), center, k)
		}
		got, _ := Classify(s)
		if got != kind {
			t.Fatalf("p[%d] kind = %v, want %v", i, got, kind)
		}
		switch in := s.Inner().(type) {
		case peak.Gaussian:
			if in.Amplitude() != amplitude || in.Width() != width {
				t.Fatalf("p[%d] gaussian params = %v/%v, want %v/%v", i, in.Amplitude(), in.Width(), amplitude, width)
			}
		case peak.Lorentzian:
			if in.Amplitude() != amplitude || in.Width() != width {
				t.Fatalf("p[%d] lorentzian params = %v/%v, want %v/%v", i, in.Amplitude(), in.Width(), amplitude, width)
			}
		}
	}
}

func TestGenerateWithinBounds(t *testing.T) {
	p := Generate(2000, 5, WithChannels(500))
	counts := map[Kind]int{}

	for i, f := range p {
		s := f.(peak.Skew)
		if c := s.Center(); c < 0 || c >= 500 {
			t.Fatalf("p[%d] center = %v outside [0,500)", i, c)
		}
		if k := s.Steepness(); k < 0 || k >= 0.1 {
			t.Fatalf("p[%d] steepness = %v outside [0,0.1)", i, k)
		}

		var amplitude, width float64
		switch in := s.Inner().(type) {
		case peak.Gaussian:
			amplitude, width = in.Amplitude(), in.Width()
		case peak.Lorentzian:
			amplitude, width = in.Amplitude(), in.Width()
		}
		if amplitude < 100 || amplitude >= 1100 {
			t.Fatalf("p[%d] amplitude = %v outside [100,1100)", i, amplitude)
		}
		if width < 1 || width >= 26 {
			t.Fatalf("p[%d] width = %v outside [1,26)", i, width)
		}

		kind, ok := Classify(f)
		if !ok {
			t.Fatalf("p[%d] not classifiable", i)
		}
		counts[kind]++
	}

	for _, kind := range []Kind{GaussianLeft, GaussianRight, LorentzianLeft, LorentzianRight} {
		if counts[kind] < 400 || counts[kind] > 600 {
			t.Fatalf("%v count = %d, want roughly 500", kind, counts[kind])
		}
	}
}

func TestWithBounds(t *testing.T) {
	b := Bounds{
		Center:    Range{10, 10},
		Amplitude: Range{1, 1},
		Width:     Range{2, 2},
		Steepness: Range{0, 0},
	}
	p := Generate(4, 3, WithBounds(b))
	for i, f := range p {
		if f.Center() != 10 {
			t.Fatalf("p[%d] center = %v, want 10", i, f.Center())
		}
		if f.(peak.Skew).Steepness() != 0 {
			t.Fatalf("p[%d] steepness = %v, want 0", i, f.(peak.Skew).Steepness())
		}
	}
}

func TestKindOfCutPoints(t *testing.T) {
	tests := []struct {
		u    float64
		want Kind
	}{
		{0, GaussianLeft},
		{0.2499, GaussianLeft},
		{0.25, GaussianRight},
		{0.5, LorentzianLeft},
		{0.75, LorentzianRight},
		{0.9999, LorentzianRight},
	}
	for _, tt := range tests {
		if got := kindOf(tt.u); got != tt.want {
			t.Fatalf("kindOf(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestClassifyForeign(t *testing.T) {
	if _, ok := Classify(peak.NewGaussian(0, 1, 1)); ok {
		t.Fatal("bare Gaussian should not classify")
	}
}
