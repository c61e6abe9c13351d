// Package conv provides direct time-domain convolution for short smoothing
// kernels.
//
// Only same-mode alignment is implemented: the output has the signal's
// length, and kernel taps that fall outside the signal are dropped from the
// sum rather than zero-padded. The distinction matters at the edges of
// normalized kernels: the first and last ⌊k/2⌋ samples are averaged over
// fewer taps, so a box-smoothed constant signal dips at its boundaries. That
// behavior is part of the package contract and is pinned by tests; changing
// it to zero-padding would shift envelope values at sequence boundaries and
// with them any detection thresholds derived downstream.
//
// Kernels in this module are at most a few hundred taps, where direct
// O(N*K) convolution is the right tool; no frequency-domain path is
// provided.
package conv
