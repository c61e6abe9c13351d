// Package envelope derives a rectified, lightly smoothed amplitude envelope
// from a raw sample sequence.
//
// The envelope is the elementwise magnitude of the input, optionally smoothed
// by a normalized box filter. The smoothing window defaults to 2 ms: long
// enough to suppress single-sample noise, short enough that impulsive
// transients survive with most of their height. Widening the window trades
// detection height for stability and is the first knob to revisit when a
// recording's transients are getting smeared away.
package envelope

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-shotrate/dsp/conv"
	"github.com/cwbudde/algo-shotrate/stats"
)

// ErrNotReady indicates that no sample data or no valid sample rate was
// supplied.
var ErrNotReady = errors.New("envelope: sample data not ready")

const (
	defaultSampleRate = 48000.0
	defaultWindow     = 0.002
)

// Config defines envelope construction parameters.
type Config struct {
	// SampleRate is the input sample rate in Hz.
	SampleRate float64

	// Window is the box-filter smoothing window in seconds.
	Window float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate: defaultSampleRate,
		Window:     defaultWindow,
	}
}

// WithSampleRate sets the input sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindow sets the smoothing window duration in seconds.
func WithWindow(window float64) Option {
	return func(cfg *Config) {
		if window > 0 {
			cfg.Window = window
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Build rectifies and smooths samples into an envelope using option-derived
// configuration.
func Build(samples []float64, opts ...Option) ([]float64, error) {
	return BuildConfig(samples, ApplyOptions(opts...))
}

// BuildConfig rectifies and smooths samples into an envelope.
//
// The window length in samples is max(1, ⌊Window·SampleRate⌋). A one-sample
// window skips smoothing and returns the rectified signal directly. Smoothing
// uses same-mode convolution with dropped edge taps, so the first and last
// half-window of the envelope averages fewer samples than the interior.
//
// Returns ErrNotReady if samples is empty or the sample rate is not positive.
func BuildConfig(samples []float64, cfg Config) ([]float64, error) {
	if len(samples) == 0 || cfg.SampleRate <= 0 {
		return nil, ErrNotReady
	}

	rectified := stats.Absolute(samples)

	windowSamples := int(math.Floor(cfg.Window * cfg.SampleRate))
	if windowSamples < 1 {
		windowSamples = 1
	}

	if windowSamples == 1 {
		return rectified, nil
	}

	kernel := make([]float64, windowSamples)
	for i := range kernel {
		kernel[i] = 1
	}
	vecmath.ScaleBlockInPlace(kernel, 1/float64(windowSamples))

	return conv.Convolve(rectified, kernel, conv.ModeSame)
}
