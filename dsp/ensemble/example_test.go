package ensemble_test

import (
	"fmt"

	"github.com/cwbudde/algo-specgen/dsp/ensemble"
)

func ExampleGenerate() {
	a := ensemble.Generate(8, 42)
	b := ensemble.Generate(8, 42)

	same := true
	for i := range a {
		if a.Evaluate(float64(i*100), 0) != b.Evaluate(float64(i*100), 0) {
			same = false
		}
	}
	fmt.Println(a.Len(), same)

	// Output:
	// 8 true
}
