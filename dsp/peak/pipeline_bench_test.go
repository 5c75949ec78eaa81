package peak

import (
	"testing"

	"github.com/cwbudde/algo-specgen/dsp/core"
)

func BenchmarkPipelineEvaluate(b *testing.B) {
	p := Reference()
	x := core.Axis(1340)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, xi := range x {
			_ = p.Evaluate(xi, 0)
		}
	}
}

func BenchmarkPipelineEvaluateBlock(b *testing.B) {
	p := Reference()
	x := core.Axis(1340)
	dst := make([]float64, len(x))
	y0 := make([]float64, len(x))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.EvaluateBlock(dst, x, y0)
	}
}
