package core

// Axis returns the channel positions 0, 1, ..., n-1 as float64 values.
// A non-positive n yields an empty axis.
func Axis(n int) []float64 {
	return AxisInto(nil, n)
}

// AxisInto fills buf with the channel positions 0..n-1, reusing its capacity if possible.
func AxisInto(buf []float64, n int) []float64 {
	buf = Resize(buf, n)
	for i := range buf {
		buf[i] = float64(i)
	}
	return buf
}
