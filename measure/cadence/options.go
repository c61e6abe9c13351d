package cadence

// Config defines the tunable detection and grouping parameters of one
// analysis run.
type Config struct {
	// PeakThresholdStd scales the envelope's standard deviation when
	// deriving the detection height: threshold = mean + k*std.
	PeakThresholdStd float64 `json:"peak_threshold_std"`

	// MinShotSpacing is the minimum time between two distinct shots in
	// seconds; it becomes the peak detector's index distance.
	MinShotSpacing float64 `json:"min_shot_spacing"`

	// BurstGapThreshold is the largest inter-shot gap in seconds that still
	// keeps two shots in the same burst.
	BurstGapThreshold float64 `json:"burst_gap_threshold"`

	// Window is the envelope smoothing window in seconds.
	Window float64 `json:"window_size"`

	// MinPeakProminence is the peak detector's relative prominence floor,
	// as a fraction of the envelope maximum (0..1).
	MinPeakProminence float64 `json:"min_peak_prominence"`

	// MinBurstCount is the smallest number of shots a burst must contain to
	// be retained.
	MinBurstCount int `json:"min_burst_count"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the tuning that ships with the analyzer. The 2 ms
// window and 50 ms spacing suit impulsive small-arms transients at common
// audio sample rates.
func DefaultConfig() Config {
	return Config{
		PeakThresholdStd:  1.2,
		MinShotSpacing:    0.05,
		BurstGapThreshold: 0.2,
		Window:            0.002,
		MinPeakProminence: 0.1,
		MinBurstCount:     5,
	}
}

// WithPeakThresholdStd sets the detection threshold in envelope standard
// deviations above the mean.
func WithPeakThresholdStd(k float64) Option {
	return func(cfg *Config) {
		if k > 0 {
			cfg.PeakThresholdStd = k
		}
	}
}

// WithMinShotSpacing sets the minimum time between distinct shots in seconds.
func WithMinShotSpacing(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.MinShotSpacing = seconds
		}
	}
}

// WithBurstGapThreshold sets the largest intra-burst gap in seconds.
func WithBurstGapThreshold(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.BurstGapThreshold = seconds
		}
	}
}

// WithWindow sets the envelope smoothing window in seconds.
func WithWindow(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.Window = seconds
		}
	}
}

// WithMinPeakProminence sets the relative prominence floor (0..1). Zero
// disables the prominence filter.
func WithMinPeakProminence(fraction float64) Option {
	return func(cfg *Config) {
		if fraction >= 0 && fraction <= 1 {
			cfg.MinPeakProminence = fraction
		}
	}
}

// WithMinBurstCount sets the minimum retained burst size; values below 1 are
// ignored.
func WithMinBurstCount(count int) Option {
	return func(cfg *Config) {
		if count >= 1 {
			cfg.MinBurstCount = count
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
