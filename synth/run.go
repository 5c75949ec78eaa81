package synth

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cwbudde/algo-specgen/sink"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result is the outcome of one spectrum.
type Result struct {
	Index       int
	Destination string
	Summary     Summary
	Err         error
}

// Report collects the results of a Run, indexed by spectrum.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Failures returns the results that carry an error, in index order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Completed returns the number of spectra without an error.
func (r Report) Completed() int {
	return len(r.Results) - len(r.Failures())
}

// Err combines every spectrum error, or returns nil.
func (r Report) Err() error {
	var err error
	for _, res := range r.Results {
		err = multierr.Append(err, res.Err)
	}
	return err
}

// Totals aggregates the summaries of all results.
type Totals struct {
	Spectra    int
	Failed     int
	Frames     int
	Rows       int
	FailedRows int
	Outliers   int
	Min        float64
	Max        float64
}

// Totals sums frame, row and outlier counts over every result.
func (r Report) Totals() Totals {
	t := Totals{Spectra: len(r.Results), Min: math.NaN(), Max: math.NaN()}
	for _, res := range r.Results {
		if res.Err != nil {
			t.Failed++
		}
		s := res.Summary
		t.Frames += s.Frames
		t.Rows += s.Rows
		t.FailedRows += s.FailedRows
		t.Outliers += s.Outliers
		if s.Rows == 0 {
			continue
		}
		if math.IsNaN(t.Min) || s.Min < t.Min {
			t.Min = s.Min
		}
		if math.IsNaN(t.Max) || s.Max > t.Max {
			t.Max = s.Max
		}
	}
	return t
}

// Run renders Config.Spectra spectra on Config.Workers goroutines. A failing
// spectrum records its error in its Result and does not stop the others.
func (s *Synthesizer) Run(out sink.Opener) Report {
	start := time.Now()
	count := s.cfg.Spectra

	taskQueue := make(chan int, count)
	resultQueue := make(chan Result, count)

	var wg sync.WaitGroup
	for range min(s.cfg.Workers, count) {
		wg.Add(1)
		go s.worker(out, taskQueue, resultQueue, &wg)
	}
	for i := range count {
		taskQueue <- i
	}
	close(taskQueue)
	wg.Wait()
	close(resultQueue)

	report := Report{Results: make([]Result, count)}
	for res := range resultQueue {
		report.Results[res.Index] = res
	}
	report.Elapsed = time.Since(start)

	s.log.Info("run finished",
		zap.Int("completed", report.Completed()),
		zap.Int("failed", len(report.Failures())),
		zap.Duration("elapsed", report.Elapsed),
	)
	return report
}

func (s *Synthesizer) worker(out sink.Opener, tasks <-chan int, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	for index := range tasks {
		res := s.render(out, index)
		if res.Err != nil {
			s.log.Error("spectrum failed",
				zap.Int("spectrum", index),
				zap.String("destination", res.Destination),
				zap.Error(res.Err),
			)
		}
		results <- res
	}
}

// render opens, fills and closes the destination of one spectrum.
func (s *Synthesizer) render(out sink.Opener, index int) Result {
	res := Result{Index: index, Destination: out.Name(index)}

	w, err := out.Open(index)
	if err != nil {
		res.Err = fmt.Errorf("%w: spectrum %d: %s: %w", ErrOpen, index, res.Destination, err)
		return res
	}

	s.log.Debug("spectrum started",
		zap.Int("spectrum", index),
		zap.String("destination", res.Destination),
	)

	res.Summary, err = s.spectrum(index, res.Destination, w)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", res.Destination, err)
	}
	if cerr := w.Close(); cerr != nil {
		res.Err = multierr.Append(res.Err, fmt.Errorf("%w: spectrum %d: %s: %w", ErrClose, index, res.Destination, cerr))
	}

	s.log.Debug("spectrum finished",
		zap.Int("spectrum", index),
		zap.String("destination", res.Destination),
		zap.Int("frames", res.Summary.Frames),
		zap.Int("rows", res.Summary.Rows),
		zap.Int("failed_rows", res.Summary.FailedRows),
		zap.Int("outliers", res.Summary.Outliers),
		zap.Float64("mean", res.Summary.Mean),
		zap.Float64("stddev", res.Summary.StdDev),
	)
	return res
}
