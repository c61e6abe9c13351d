package conv

import "errors"

// Errors returned by convolution functions.
var (
	ErrEmptyInput      = errors.New("conv: empty input")
	ErrEmptyKernel     = errors.New("conv: empty kernel")
	ErrUnsupportedMode = errors.New("conv: unsupported mode")
)

// Mode specifies the output alignment for convolution.
type Mode int

const (
	// ModeFull is the full convolution result with length len(a)+len(b)-1.
	// Not implemented; requesting it returns ErrUnsupportedMode.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the signal, aligned so
	// that kernel tap ⌊k/2⌋ sits on the current sample.
	ModeSame

	// ModeValid is the fully-overlapping portion only. Not implemented;
	// requesting it returns ErrUnsupportedMode.
	ModeValid
)

// Convolve convolves signal with kernel in the requested mode.
//
// Only ModeSame is supported. In same mode, out[i] is the sum of
// signal[i-⌊k/2⌋+j] * kernel[j] over every j whose shifted index lies inside
// the signal; out-of-range terms are dropped entirely rather than treated as
// zero-padded. For normalized smoothing kernels this means the first and last
// ⌊k/2⌋ output samples are weighted sums over fewer taps than the interior.
func Convolve(signal, kernel []float64, mode Mode) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if mode != ModeSame {
		return nil, ErrUnsupportedMode
	}

	return same(signal, kernel), nil
}

// same performs direct same-mode convolution. Accumulation runs
// left-to-right over kernel taps so results are bit-for-bit reproducible.
func same(signal, kernel []float64) []float64 {
	n := len(signal)
	k := len(kernel)
	half := k / 2

	out := make([]float64, n)

	for i := 0; i < n; i++ {
		var acc float64

		for j := 0; j < k; j++ {
			idx := i - half + j
			if idx < 0 || idx >= n {
				continue
			}

			acc += signal[idx] * kernel[j]
		}

		out[i] = acc
	}

	return out
}
