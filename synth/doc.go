// Package synth renders artificial spectra from peak ensembles.
//
// A Synthesizer turns one spectrum index into several noisy frames of the same
// underlying peak pipeline and streams them, row by row, into a sink.RowWriter.
// Run fans a whole dataset out over a worker pool:
//
//	s, err := synth.New(synth.WithSpectra(10), synth.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	report := s.Run(sink.Dir("out", "spectrum"))
//	if err := report.Err(); err != nil {
//		return err
//	}
//
// Every spectrum draws from its own random stream derived from the base seed
// and its index, so output does not depend on worker count or scheduling.
package synth
