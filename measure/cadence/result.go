package cadence

// IntervalStats summarizes the inter-shot intervals of one burst, in seconds.
type IntervalStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// BurstStats is the immutable summary of one retained burst.
type BurstStats struct {
	Start    float64       `json:"start"`
	End      float64       `json:"end"`
	Duration float64       `json:"duration"`
	Count    int           `json:"count"`
	RateRPM  float64       `json:"rate_rpm"`
	Interval IntervalStats `json:"interval"`
	Shots    []float64     `json:"shots"`
}

// Summary aggregates statistics across all bursts.
//
// OverallRateRPM pools every shot across all bursts and measures end-to-end
// cadence, idle gaps included; it is deliberately not the mean of the
// per-burst rates, which the remaining fields describe.
type Summary struct {
	TotalShots     int     `json:"total_shots"`
	TotalBursts    int     `json:"total_bursts"`
	OverallRateRPM float64 `json:"overall_rate_rpm"`
	MeanRateRPM    float64 `json:"mean_rate_rpm"`
	MedianRateRPM  float64 `json:"median_rate_rpm"`
	MinRateRPM     float64 `json:"min_rate_rpm"`
	MaxRateRPM     float64 `json:"max_rate_rpm"`
	StdRateRPM     float64 `json:"std_rate_rpm"`
}

// Result is the complete output of one analysis run, shaped for direct JSON
// serialization by export collaborators.
type Result struct {
	Duration    float64      `json:"duration"`
	SampleRate  int          `json:"sample_rate"`
	Config      Config       `json:"config"`
	Summary     Summary      `json:"summary"`
	Bursts      []BurstStats `json:"bursts"`
	PeakIndices []int        `json:"peak_indices"`
}
