// Command specgen writes a synthetic spectral dataset, one CSV file per
// spectrum.
//
// Usage:
//
//	specgen [flags]
//
// Each file holds several noisy frames of the same peak ensemble, written
// back to back as "row,intensity" lines with rows numbered from 1 in every
// frame.
//
// Examples:
//
//	specgen -out data
//	specgen -out data -spectra 500 -seed 7 -ensemble shared
//	specgen -out data -noise uniform -noise-scale 0.0033 -ensemble reference
//	specgen -out data -broaden 3 -log-level debug -log-format console
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-specgen/internal/logging"
	"github.com/cwbudde/algo-specgen/sink"
	"github.com/cwbudde/algo-specgen/synth"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := synth.DefaultConfig()

	fs := flag.NewFlagSet("specgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "spectra", "output directory")
	prefix := fs.String("prefix", "spectrum", "file name prefix")
	channels := fs.Int("channels", def.Channels, "channels per frame")
	spectra := fs.Int("spectra", def.Spectra, "number of spectra (files)")
	peaks := fs.Int("peaks", def.Peaks, "peaks per ensemble")
	framesMin := fs.Int("frames-min", def.FramesMin, "minimum frames per spectrum")
	framesMax := fs.Int("frames-max", def.FramesMax, "frames per spectrum upper bound (exclusive)")
	outlierProb := fs.Float64("outlier-prob", def.OutlierProbability, "per-channel outlier probability")
	outlierScale := fs.Float64("outlier-scale", def.OutlierScale, "outlier magnitude factor")
	noiseKind := fs.String("noise", def.Noise.String(), "noise kind: normal or uniform")
	noiseScale := fs.Float64("noise-scale", def.NoiseScale, "noise scale")
	ensembleMode := fs.String("ensemble", def.Ensemble.String(), "ensemble mode: random, shared or reference")
	broaden := fs.Float64("broaden", 0, "instrument broadening width in channels (0 disables)")
	seed := fs.Int64("seed", def.Seed, "base random seed")
	workers := fs.Int("workers", runtime.NumCPU(), "worker goroutines")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", logging.FormatJSON, "log format: json or console")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: specgen [flags]\n\n")
		fmt.Fprintf(stderr, "Writes synthetic spectra as CSV files, one per spectrum.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  specgen -out data -spectra 500 -seed 7\n")
		fmt.Fprintf(stderr, "  specgen -out data -ensemble reference -noise uniform -noise-scale 0.0033\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", fs.Args())
		return exitUsage
	}

	kind, err := synth.ParseNoiseKind(*noiseKind)
	if err != nil {
		return usageError(stderr, err)
	}
	mode, err := synth.ParseEnsembleMode(*ensembleMode)
	if err != nil {
		return usageError(stderr, err)
	}

	log, err := logging.New(*logLevel, *logFormat)
	if err != nil {
		return usageError(stderr, err)
	}
	defer func() { _ = log.Sync() }()

	s, err := synth.New(
		synth.WithChannels(*channels),
		synth.WithSpectra(*spectra),
		synth.WithPeaks(*peaks),
		synth.WithFrames(*framesMin, *framesMax),
		synth.WithOutliers(*outlierProb, *outlierScale),
		synth.WithNoise(kind, *noiseScale),
		synth.WithEnsemble(mode),
		synth.WithBroadening(*broaden),
		synth.WithSeed(*seed),
		synth.WithWorkers(*workers),
		synth.WithLogger(log),
	)
	if err != nil {
		return usageError(stderr, err)
	}

	dest := sink.Dir(*out, *prefix)
	log.Info("run started",
		zap.String("out", dest.Path()),
		zap.Int("spectra", *spectra),
		zap.Int("channels", *channels),
		zap.String("noise", kind.String()),
		zap.String("ensemble", mode.String()),
		zap.Int64("seed", *seed),
	)

	report := s.Run(dest)
	printTotals(stdout, stderr, report)

	for _, f := range report.Failures() {
		fmt.Fprintf(stderr, "error: spectrum %d: %v\n", f.Index, f.Err)
	}
	if report.Err() != nil {
		return exitFailure
	}
	return exitOK
}

func usageError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitUsage
}

func printTotals(stdout, stderr io.Writer, report synth.Report) {
	t := report.Totals()
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value any
	}{
		{"Spectra", t.Spectra},
		{"Failed", t.Failed},
		{"Frames", t.Frames},
		{"Rows", t.Rows},
		{"Failed rows", t.FailedRows},
		{"Outliers", t.Outliers},
		{"Min", fmt.Sprintf("%.4f", t.Min)},
		{"Max", fmt.Sprintf("%.4f", t.Max)},
		{"Elapsed", report.Elapsed.Round(time.Millisecond)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%v\n", r.label, r.value); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: failed to write summary: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to flush output: %v\n", err)
	}
}
