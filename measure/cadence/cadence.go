package cadence

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-shotrate/dsp/envelope"
	"github.com/cwbudde/algo-shotrate/dsp/peaks"
	"github.com/cwbudde/algo-shotrate/stats"
)

// Errors returned by the staged pipeline.
var (
	// ErrNotReady indicates that no input has been bound to the analyzer.
	ErrNotReady = errors.New("cadence: input not ready")

	// ErrPipelineOutOfOrder indicates that a stage was invoked before its
	// prerequisite stage completed.
	ErrPipelineOutOfOrder = errors.New("cadence: pipeline stage out of order")
)

// stage tracks pipeline progress. Stages advance strictly in order; each
// stage method verifies the previous stage has run.
type stage int

const (
	stageIdle stage = iota
	stageEnvelopeReady
	stagePeaksDetected
	stageBurstsGrouped
	stageRatesComputed
)

// Analyzer runs the detection pipeline over one sample sequence, stage by
// stage: envelope, peaks, bursts, rates. Intermediate products are exposed
// read-only for visualization collaborators.
//
// An Analyzer holds no state shared across runs and is not safe for
// concurrent use; run concurrent analyses on separate instances.
type Analyzer struct {
	cfg Config

	samples    []float64
	sampleRate int
	hasInput   bool

	stage     stage
	env       []float64
	threshold float64
	peaks     []peaks.Peak
	bursts    [][]float64
	result    Result
}

// NewAnalyzer creates an analyzer with option-derived configuration.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{cfg: ApplyOptions(opts...)}
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// SetInput binds a sample sequence and its sample rate to the analyzer and
// resets the pipeline to the idle stage. The samples are never mutated.
func (a *Analyzer) SetInput(samples []float64, sampleRate int) {
	a.samples = samples
	a.sampleRate = sampleRate
	a.hasInput = len(samples) > 0 && sampleRate > 0

	a.stage = stageIdle
	a.env = nil
	a.threshold = 0
	a.peaks = nil
	a.bursts = nil
	a.result = Result{}
}

// BuildEnvelope rectifies and smooths the bound input. Returns ErrNotReady
// if SetInput has not provided usable samples.
func (a *Analyzer) BuildEnvelope() error {
	if !a.hasInput {
		return ErrNotReady
	}

	env, err := envelope.BuildConfig(a.samples, envelope.Config{
		SampleRate: float64(a.sampleRate),
		Window:     a.cfg.Window,
	})
	if err != nil {
		return err
	}

	a.env = env
	a.threshold = stats.Mean(env) + a.cfg.PeakThresholdStd*stats.Std(env)
	a.stage = stageEnvelopeReady

	return nil
}

// DetectPeaks locates shot candidates in the envelope. Returns
// ErrPipelineOutOfOrder before BuildEnvelope has run.
func (a *Analyzer) DetectPeaks() error {
	if a.stage < stageEnvelopeReady {
		return ErrPipelineOutOfOrder
	}

	distance := int(a.cfg.MinShotSpacing * float64(a.sampleRate))
	if distance < 1 {
		distance = 1
	}

	a.peaks = peaks.Find(a.env, peaks.Config{
		Height:     a.threshold,
		Distance:   distance,
		Prominence: a.cfg.MinPeakProminence,
	})
	a.stage = stagePeaksDetected

	return nil
}

// GroupBursts clusters detected shot times into bursts and discards bursts
// smaller than MinBurstCount. Returns ErrPipelineOutOfOrder before
// DetectPeaks has run.
func (a *Analyzer) GroupBursts() error {
	if a.stage < stagePeaksDetected {
		return ErrPipelineOutOfOrder
	}

	times := peaks.Times(a.peaks, float64(a.sampleRate))
	a.bursts = groupBursts(times, a.cfg.BurstGapThreshold, a.cfg.MinBurstCount)
	a.stage = stageBurstsGrouped

	return nil
}

// ComputeRates derives per-burst and aggregate rate statistics and finalizes
// the result. Returns ErrPipelineOutOfOrder before GroupBursts has run.
func (a *Analyzer) ComputeRates() error {
	if a.stage < stageBurstsGrouped {
		return ErrPipelineOutOfOrder
	}

	bursts := make([]BurstStats, len(a.bursts))
	for i, shots := range a.bursts {
		bursts[i] = burstStats(shots)
	}

	a.result = Result{
		Duration:    float64(len(a.samples)) / float64(a.sampleRate),
		SampleRate:  a.sampleRate,
		Config:      a.cfg,
		Summary:     summarize(bursts),
		Bursts:      bursts,
		PeakIndices: peaks.Indices(a.peaks),
	}
	a.stage = stageRatesComputed

	return nil
}

// Envelope returns the envelope built by BuildEnvelope, or nil before that
// stage. Callers must treat it as read-only.
func (a *Analyzer) Envelope() []float64 {
	return a.env
}

// Threshold returns the detection height derived from the envelope
// (mean + PeakThresholdStd*std), or 0 before BuildEnvelope.
func (a *Analyzer) Threshold() float64 {
	return a.threshold
}

// Peaks returns the detected peaks, or nil before DetectPeaks.
func (a *Analyzer) Peaks() []peaks.Peak {
	return a.peaks
}

// Bursts returns the grouped shot times, or nil before GroupBursts.
func (a *Analyzer) Bursts() [][]float64 {
	return a.bursts
}

// Result returns the finalized result. Returns ErrPipelineOutOfOrder before
// ComputeRates has run.
func (a *Analyzer) Result() (Result, error) {
	if a.stage < stageRatesComputed {
		return Result{}, ErrPipelineOutOfOrder
	}

	return a.result, nil
}

// Analyze runs the full pipeline over samples in one call.
//
// Zero detections is a successful empty result, not an error; errors only
// report caller misuse (no samples, bad sample rate).
func Analyze(samples []float64, sampleRate int, opts ...Option) (Result, error) {
	a := NewAnalyzer(opts...)
	a.SetInput(samples, sampleRate)

	for _, step := range []func() error{
		a.BuildEnvelope,
		a.DetectPeaks,
		a.GroupBursts,
		a.ComputeRates,
	} {
		if err := step(); err != nil {
			return Result{}, err
		}
	}

	return a.result, nil
}

// groupBursts splits ascending shot times wherever the gap to the previous
// shot exceeds gap, then drops groups smaller than minCount. Dropped shots
// are not reassigned to neighboring bursts.
func groupBursts(times []float64, gap float64, minCount int) [][]float64 {
	if len(times) == 0 {
		return nil
	}

	var bursts [][]float64

	current := []float64{times[0]}
	for i := 1; i < len(times); i++ {
		if times[i]-times[i-1] <= gap {
			current = append(current, times[i])
			continue
		}

		if len(current) >= minCount {
			bursts = append(bursts, current)
		}

		current = []float64{times[i]}
	}

	if len(current) >= minCount {
		bursts = append(bursts, current)
	}

	return bursts
}

// burstStats computes the summary of one non-empty burst.
func burstStats(shots []float64) BurstStats {
	start := shots[0]
	end := shots[len(shots)-1]
	duration := end - start

	// Degenerate single-timestamp bursts report a zero rate rather than
	// dividing by zero. Unreachable while MinBurstCount >= 2.
	var rate float64
	if duration > 0 {
		rate = float64(len(shots)-1) / duration * 60
	}

	intervals := stats.Diff(shots)

	var iv IntervalStats
	if len(intervals) > 0 {
		iv = IntervalStats{
			Mean: stats.Mean(intervals),
			Std:  stats.Std(intervals),
			Min:  stats.Min(intervals),
			Max:  stats.Max(intervals),
		}
	}

	return BurstStats{
		Start:    start,
		End:      end,
		Duration: duration,
		Count:    len(shots),
		RateRPM:  rate,
		Interval: iv,
		Shots:    shots,
	}
}

// summarize aggregates per-burst statistics. With zero bursts every field is
// zero; the ±Inf sentinels of stats.Min/Max never reach the result.
func summarize(bursts []BurstStats) Summary {
	if len(bursts) == 0 {
		return Summary{}
	}

	var (
		totalShots int
		rates      = make([]float64, len(bursts))
		pooledMin  = math.Inf(1)
		pooledMax  = math.Inf(-1)
	)

	for i, b := range bursts {
		totalShots += b.Count
		rates[i] = b.RateRPM

		if b.Start < pooledMin {
			pooledMin = b.Start
		}

		if b.End > pooledMax {
			pooledMax = b.End
		}
	}

	// End-to-end cadence over all pooled shots, idle gaps included.
	var overall float64
	if totalShots >= 2 && pooledMax > pooledMin {
		overall = float64(totalShots-1) / (pooledMax - pooledMin) * 60
	}

	return Summary{
		TotalShots:     totalShots,
		TotalBursts:    len(bursts),
		OverallRateRPM: overall,
		MeanRateRPM:    stats.Mean(rates),
		MedianRateRPM:  stats.Median(rates),
		MinRateRPM:     stats.Min(rates),
		MaxRateRPM:     stats.Max(rates),
		StdRateRPM:     stats.Std(rates),
	}
}
