package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-specgen/sink"
	"github.com/cwbudde/algo-specgen/synth"
)

func ExampleSynthesizer_Spectrum() {
	s, err := synth.New(
		synth.WithChannels(5),
		synth.WithFrames(2, 3),
		synth.WithEnsemble(synth.EnsembleReference),
	)
	if err != nil {
		panic(err)
	}

	out := sink.NewMemory()
	w, _ := out.Open(0)
	sum, err := s.Spectrum(0, w)
	if err != nil {
		panic(err)
	}

	var numbers []int
	for _, row := range out.Rows(0) {
		numbers = append(numbers, row.Number)
	}
	fmt.Println(numbers)
	fmt.Printf("frames=%d rows=%d\n", sum.Frames, sum.Rows)
	// Output:
	// [1 2 3 4 5 1 2 3 4 5]
	// frames=2 rows=10
}
