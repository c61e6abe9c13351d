package peaks

import (
	"sort"

	"github.com/cwbudde/algo-shotrate/stats"
)

// Peak is a detected local maximum: its index into the analyzed sequence and
// the sequence value at that index.
type Peak struct {
	Index  int
	Height float64
}

// Config defines the detection constraints.
type Config struct {
	// Height is the absolute minimum value a sample must reach to qualify.
	Height float64

	// Distance is the minimum index separation between retained peaks.
	// The bound is exclusive: two peaks exactly Distance apart both survive.
	// Values below 1 are treated as 1.
	Distance int

	// Prominence is the minimum relative prominence as a fraction of the
	// sequence's global maximum. Zero disables the prominence filter.
	Prominence float64
}

// Find returns the peaks of env satisfying cfg, ordered by ascending index.
//
// A qualifying sample must be a strict local maximum (greater than both
// neighbors; plateaus never qualify), reach Height, and stand out from its
// surrounding baseline by at least Prominence times the global maximum.
// Peaks closer than Distance are thinned greedily in descending height
// order, so of two competing peaks the taller one survives regardless of
// position; equal heights keep the earlier index.
//
// Sequences shorter than three samples, and constraint sets nothing
// satisfies, yield an empty result rather than an error.
func Find(env []float64, cfg Config) []Peak {
	candidates := localMaxima(env)

	kept := candidates[:0]
	for _, idx := range candidates {
		if env[idx] >= cfg.Height {
			kept = append(kept, idx)
		}
	}
	candidates = kept

	if cfg.Prominence > 0 {
		floor := cfg.Prominence * stats.Max(env)

		kept = candidates[:0]
		for _, idx := range candidates {
			if prominence(env, idx) >= floor {
				kept = append(kept, idx)
			}
		}
		candidates = kept
	}

	accepted := thinByDistance(env, candidates, cfg.Distance)

	sort.Ints(accepted)

	out := make([]Peak, 0, len(accepted))
	for _, idx := range accepted {
		out = append(out, Peak{Index: idx, Height: env[idx]})
	}

	return out
}

// localMaxima returns indices i with env[i-1] < env[i] > env[i+1].
func localMaxima(env []float64) []int {
	var out []int

	for i := 1; i+1 < len(env); i++ {
		if env[i] > env[i-1] && env[i] > env[i+1] {
			out = append(out, i)
		}
	}

	return out
}

// prominence measures how far the peak at idx rises above its surrounding
// baseline. Each side is scanned outward until the sequence ends or a sample
// at least as tall as the peak is met, tracking the minimum seen; the
// prominence is the peak height minus the higher of the two side minima.
//
// This deliberately approximates topographic prominence: the scan stops at
// the first equal-or-taller sample instead of finding the key saddle toward
// a globally higher peak. Detection results on existing recordings depend on
// the simpler rule.
func prominence(env []float64, idx int) float64 {
	height := env[idx]

	leftMin := height
	for i := idx - 1; i >= 0; i-- {
		if env[i] >= height {
			break
		}

		if env[i] < leftMin {
			leftMin = env[i]
		}
	}

	rightMin := height
	for i := idx + 1; i < len(env); i++ {
		if env[i] >= height {
			break
		}

		if env[i] < rightMin {
			rightMin = env[i]
		}
	}

	base := leftMin
	if rightMin > base {
		base = rightMin
	}

	return height - base
}

// thinByDistance greedily accepts candidates in descending height order,
// rejecting any candidate strictly closer than distance to an already
// accepted peak. The stable sort keeps the first-seen index ahead on equal
// heights, which decides which of two equal peaks survives.
func thinByDistance(env []float64, candidates []int, distance int) []int {
	if distance < 1 {
		distance = 1
	}

	byHeight := make([]int, len(candidates))
	copy(byHeight, candidates)
	sort.SliceStable(byHeight, func(i, j int) bool {
		return env[byHeight[i]] > env[byHeight[j]]
	})

	var accepted []int

	for _, idx := range byHeight {
		ok := true

		for _, a := range accepted {
			d := idx - a
			if d < 0 {
				d = -d
			}

			if d < distance {
				ok = false
				break
			}
		}

		if ok {
			accepted = append(accepted, idx)
		}
	}

	return accepted
}

// Indices returns the peak indices in order.
func Indices(peaks []Peak) []int {
	out := make([]int, len(peaks))
	for i, p := range peaks {
		out[i] = p.Index
	}

	return out
}

// Times converts peak indices to seconds at the given sample rate.
func Times(peaks []Peak, sampleRate float64) []float64 {
	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = float64(p.Index) / sampleRate
	}

	return out
}
