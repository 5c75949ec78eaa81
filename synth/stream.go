package synth

// StreamSeed derives the seed of spectrum index from the base seed with a
// splitmix64 finalizer, so neighbouring indices get unrelated streams.
func StreamSeed(seed int64, index int) int64 {
	z := uint64(seed) + (uint64(index)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
