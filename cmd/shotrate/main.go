// Command shotrate detects gunshots in a WAV recording and reports burst
// and rate-of-fire statistics.
//
// Usage:
//
//	shotrate [flags] recording.wav
//
// Examples:
//
//	shotrate range-session.wav
//	shotrate -gap 0.3 -min-count 3 range-session.wav
//	shotrate -json report.json range-session.wav
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-shotrate/internal/wavio"
	"github.com/cwbudde/algo-shotrate/measure/cadence"
)

func main() {
	thresholdStd := flag.Float64("threshold-std", 1.2, "detection threshold in envelope standard deviations above the mean")
	spacing := flag.Float64("spacing", 0.05, "minimum time between distinct shots in seconds")
	gap := flag.Float64("gap", 0.2, "largest intra-burst gap in seconds")
	window := flag.Float64("window", 0.002, "envelope smoothing window in seconds")
	prominence := flag.Float64("prominence", 0.1, "minimum peak prominence as a fraction of the envelope maximum")
	minCount := flag.Int("min-count", 5, "minimum shots per retained burst")
	jsonPath := flag.String("json", "", "write the full analysis report as JSON to this path ('-' for stdout)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: shotrate [flags] recording.wav\n\n")
		fmt.Fprintf(os.Stderr, "Detects gunshots in a WAV recording and reports rate-of-fire statistics.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)

	samples, sampleRate, err := wavio.DecodeFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shotrate: %v\n", err)
		os.Exit(1)
	}

	result, err := cadence.Analyze(samples, sampleRate,
		cadence.WithPeakThresholdStd(*thresholdStd),
		cadence.WithMinShotSpacing(*spacing),
		cadence.WithBurstGapThreshold(*gap),
		cadence.WithWindow(*window),
		cadence.WithMinPeakProminence(*prominence),
		cadence.WithMinBurstCount(*minCount),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shotrate: %v\n", err)
		os.Exit(1)
	}

	printReport(path, result)

	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "shotrate: %v\n", err)
			os.Exit(1)
		}
	}
}

func printReport(path string, result cadence.Result) {
	fmt.Printf("%s: %.2f s at %d Hz, %d shots in %d bursts\n",
		path, result.Duration, result.SampleRate,
		result.Summary.TotalShots, result.Summary.TotalBursts)

	if result.Summary.TotalBursts == 0 {
		fmt.Println("no bursts detected")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "burst\tstart [s]\tend [s]\tshots\trate [rpm]\tmean gap [s]")

	for i, b := range result.Bursts {
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%d\t%.1f\t%.3f\n",
			i+1, b.Start, b.End, b.Count, b.RateRPM, b.Interval.Mean)
	}

	w.Flush()

	s := result.Summary
	fmt.Printf("overall %.1f rpm (pooled), per-burst mean %.1f / median %.1f / min %.1f / max %.1f rpm\n",
		s.OverallRateRPM, s.MeanRateRPM, s.MedianRateRPM, s.MinRateRPM, s.MaxRateRPM)
}

func writeJSON(path string, result cadence.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
