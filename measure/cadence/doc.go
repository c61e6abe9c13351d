// Package cadence detects gunshot-like transients in a mono sample sequence,
// groups them into bursts, and measures rate of fire.
//
// The pipeline runs in four strict stages over in-memory data: build a
// rectified smoothed envelope, detect well-separated prominent peaks above
// an adaptive threshold, group the resulting shot times into bursts by
// inter-shot gap, and compute per-burst and aggregate rate statistics. The
// one-shot [Analyze] runs all stages; [Analyzer] exposes them individually
// so visualization collaborators can read the envelope, threshold, peaks,
// and bursts between stages. Invoking a stage before its prerequisite fails
// with [ErrPipelineOutOfOrder]; a run that finds nothing succeeds with an
// empty result.
//
// The whole pipeline is deterministic, synchronous, and linear-time in the
// input length. Decoding audio into normalized samples, rendering, and
// export are collaborator concerns outside this package.
package cadence
