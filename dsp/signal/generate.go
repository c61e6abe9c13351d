// Package signal generates deterministic synthetic recordings for tests and
// benchmarks: impulsive shot transients over an optional noise floor.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the output sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. Defaults: 48 kHz,
// seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator's sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// ShotTrain renders a recording of the given duration containing one
// decaying transient per entry of times (shot onsets in seconds). Each
// transient starts at amplitude and decays exponentially over roughly
// decay seconds. Shots past the end of the recording are clipped.
func (g *Generator) ShotTrain(duration float64, times []float64, amplitude, decay float64) ([]float64, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("shot train duration must be > 0: %f", duration)
	}
	if decay <= 0 {
		return nil, fmt.Errorf("shot train decay must be > 0: %f", decay)
	}

	n := int(duration * g.sampleRate)
	out := make([]float64, n)

	// Decay to roughly -60 dB at the configured decay time.
	tau := decay / 6.9

	for _, t := range times {
		start := int(t * g.sampleRate)
		if start < 0 || start >= n {
			continue
		}

		length := int(decay * g.sampleRate)
		if start+length > n {
			length = n - start
		}

		for i := 0; i < length; i++ {
			// Alternate polarity so the transient is not a DC step.
			v := amplitude * math.Exp(-float64(i)/(tau*g.sampleRate))
			if i%2 == 1 {
				v = -v
			}

			out[start+i] += v
		}
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Mix sums any number of equal-length signals into a new slice.
func Mix(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("mix needs at least one signal")
	}

	n := len(signals[0])
	for _, s := range signals[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("mix length mismatch: %d vs %d", len(s), n)
		}
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i, v := range s {
			out[i] += v
		}
	}

	return out, nil
}
