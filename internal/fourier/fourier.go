// Package fourier provides the real-valued DFT pair used by the filter
// packages: a forward analysis producing a one-sided complex spectrum and
// an inverse synthesis reconstructing the real signal.
//
// Transform lengths are arbitrary. Power-of-two lengths go through an
// algo-fft plan; everything else falls back to the Bluestein-capable
// go-dsp implementation.
package fourier

import (
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// Bins returns the one-sided spectrum length for a real signal of length n.
func Bins(n int) int {
	return n/2 + 1
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Analyze computes the one-sided spectrum of a real signal.
// The result has len(x)/2 + 1 bins; bin 0 is DC.
func Analyze(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return nil
	}

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err == nil {
			in := make([]complex128, n)
			for i, v := range x {
				in[i] = complex(v, 0)
			}
			out := make([]complex128, n)
			if err := plan.Forward(out, in); err == nil {
				return out[:Bins(n)]
			}
		}
		// fall through to the generic path
	}

	full := fft.FFTReal(x)
	return full[:Bins(n)]
}

// Synthesize reconstructs a real signal from its one-sided spectrum.
// The even flag selects whether the original signal length was even,
// which is not recoverable from the bin count alone.
func Synthesize(spec []complex128, even bool) []float64 {
	if len(spec) == 0 {
		return nil
	}

	n := 2 * (len(spec) - 1)
	if !even {
		n = 2*len(spec) - 1
	}
	if n < 1 {
		n = 1
	}

	// Expand to the full Hermitian spectrum.
	full := make([]complex128, n)
	copy(full, spec[:min(len(spec), n)])
	for k := 1; k < len(spec); k++ {
		if n-k > 0 && n-k >= len(spec) {
			full[n-k] = complex(real(spec[k]), -imag(spec[k]))
		}
	}

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err == nil {
			out := make([]complex128, n)
			if err := plan.Inverse(out, full); err == nil {
				return realParts(out)
			}
		}
	}

	return realParts(fft.IFFT(full))
}

func realParts(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = real(c)
	}
	return out
}
