package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arma/dsp/filter/arma"
)

// Notch designs a second-order notch rejecting freq (Hz) with the given
// quality factor at the given sample rate (Hz). Higher quality narrows the
// rejected band. Defaults to symmetric padding.
func Notch(freq, quality, sampleRate float64, opts ...arma.Option) (*arma.ARMA, error) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return nil, fmt.Errorf("%w: freq %g at sample rate %g", ErrInvalidFrequency, freq, sampleRate)
	}
	if quality <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidQuality, quality)
	}

	w0 := 2 * math.Pi * freq / sampleRate
	alpha := math.Sin(w0) / (2 * quality)
	cw := math.Cos(w0)

	// Normalize so the feedback recursion never divides by a0.
	a0 := 1 + alpha
	bn := []float64{1 / a0, -2 * cw / a0, 1 / a0}
	an := []float64{1, -2 * cw / a0, (1 - alpha) / a0}

	defaults := []arma.Option{arma.WithPadding(arma.PadSymmetric)}
	return arma.New(bn, an, append(defaults, opts...)...)
}
