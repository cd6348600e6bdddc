package arma

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-arma/internal/fourier"
)

// FrequencyResponse evaluates the filter's transfer function on the
// one-sided frequency grid of a real signal with the given length,
// returning length/2+1 complex bins.
//
// The feed-forward taps are placed circularly so that bin 0 corresponds to
// lag 0: the causal tail bn[startIndex:] at the start, the acausal head
// wrapped to the end. Backward filters reflect both coefficient vectors
// about index 1 instead of reversing any samples. Bins where the feedback
// spectrum vanishes are defined as 1 rather than an error.
func (f *ARMA) FrequencyResponse(length int) ([]complex128, error) {
	support := max(len(f.bn), len(f.an))
	if length < support {
		return nil, fmt.Errorf("%w: need at least %d, got %d", ErrResponseLength, support, length)
	}

	bPad := make([]float64, length)
	copy(bPad, f.bn[f.startIndex:])
	copy(bPad[length-f.startIndex:], f.bn[:f.startIndex])

	aPad := make([]float64, length)
	copy(aPad, f.an)

	if f.backward {
		reflectAboutFirst(bPad)
		reflectAboutFirst(aPad)
	}

	b := fourier.Analyze(bPad)
	a := fourier.Analyze(aPad)

	h := make([]complex128, len(a))
	for k := range h {
		if cmplx.Abs(a[k]) > 0 {
			h[k] = b[k] / a[k]
		} else {
			h[k] = 1
		}
	}

	return h, nil
}

// reflectAboutFirst reverses v[1:] in place, realizing time reversal of a
// circular coefficient vector while keeping lag 0 fixed.
func reflectAboutFirst(v []float64) {
	for i, j := 1, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
