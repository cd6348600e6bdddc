package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arma/dsp/filter/arma"
)

// ButterworthLP designs a digital Butterworth lowpass of the given order in
// direct polynomial form: analog pole placement on the Butterworth circle,
// bilinear transform with frequency pre-warping, zeros at Nyquist, and unit
// gain at DC. Defaults to symmetric padding.
//
// The single polynomial form suits the batched ARMA evaluator; cascade
// realizations trade that for per-section numerical headroom, which only
// matters at orders well beyond typical smoothing use.
func ButterworthLP(freq float64, order int, sampleRate float64, opts ...arma.Option) (*arma.ARMA, error) {
	bn, an, err := butterworth(freq, order, sampleRate, false)
	if err != nil {
		return nil, err
	}

	defaults := []arma.Option{arma.WithPadding(arma.PadSymmetric)}
	return arma.New(bn, an, append(defaults, opts...)...)
}

// ButterworthHP designs a digital Butterworth highpass of the given order:
// zeros at DC and unit gain at Nyquist. Defaults to symmetric padding.
func ButterworthHP(freq float64, order int, sampleRate float64, opts ...arma.Option) (*arma.ARMA, error) {
	bn, an, err := butterworth(freq, order, sampleRate, true)
	if err != nil {
		return nil, err
	}

	defaults := []arma.Option{arma.WithPadding(arma.PadSymmetric)}
	return arma.New(bn, an, append(defaults, opts...)...)
}

func butterworth(freq float64, order int, sampleRate float64, highpass bool) (bn, an []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return nil, nil, fmt.Errorf("%w: freq %g at sample rate %g", ErrInvalidFrequency, freq, sampleRate)
	}

	// Pre-warped cutoff in the normalized bilinear domain s = (z-1)/(z+1).
	wc := math.Tan(math.Pi * freq / sampleRate)

	// Left-half-plane Butterworth poles scaled by the cutoff, mapped to
	// the z-plane via the bilinear transform.
	zPoles := make([]complex128, order)
	for k := 0; k < order; k++ {
		theta := math.Pi * (2*float64(k) + float64(order) + 1) / (2 * float64(order))
		p := complex(wc*math.Cos(theta), wc*math.Sin(theta))
		zPoles[k] = (1 + p) / (1 - p)
	}

	an = realPolynomial(zPoles)

	// All zeros sit at z = -1 (lowpass) or z = +1 (highpass), giving
	// binomial feed-forward taps.
	bn = make([]float64, order+1)
	bn[0] = 1
	for j := 1; j <= order; j++ {
		bn[j] = bn[j-1] * float64(order-j+1) / float64(j)
	}
	if highpass {
		for j := 1; j <= order; j += 2 {
			bn[j] = -bn[j]
		}
	}

	// Unit gain at DC (lowpass) or Nyquist (highpass).
	var num, den float64
	for j := range bn {
		sign := 1.0
		if highpass && j%2 == 1 {
			sign = -1
		}
		num += sign * bn[j]
	}
	for j := range an {
		sign := 1.0
		if highpass && j%2 == 1 {
			sign = -1
		}
		den += sign * an[j]
	}
	gain := den / num
	for j := range bn {
		bn[j] *= gain
	}

	return bn, an, nil
}

// realPolynomial expands prod(1 - r*z^-1) over the given roots and returns
// the real coefficients in ascending delay order. The roots must form
// conjugate pairs (or be real) so the imaginary parts cancel.
func realPolynomial(roots []complex128) []float64 {
	coeffs := make([]complex128, 1, len(roots)+1)
	coeffs[0] = 1
	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * r
		}
		coeffs = next
	}

	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}
