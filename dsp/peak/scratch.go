package peak

import (
	"sync"

	"github.com/cwbudde/algo-specgen/dsp/core"
)

// scratchBuf holds pooled scratch memory for block evaluation of skewed peaks.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (contrib, mask []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.Resize(buf.data, 2*n)
	return buf.data[:n], buf.data[n:], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
