package core

// Resize returns buf with length n. The backing array is kept when it is
// large enough, otherwise a new one is allocated. Existing values are not
// cleared; use Zero or Fill afterwards when that matters.
func Resize(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero clears every channel of buf.
func Zero(buf []float64) {
	clear(buf)
}

// Fill sets every channel of buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// CopyInto copies the overlapping prefix of src into dst and returns its length.
func CopyInto(dst, src []float64) int {
	return copy(dst, src)
}
