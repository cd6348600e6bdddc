package design

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-arma/dsp/filter/arma"
)

// Derivative designs an FIR differentiator by least-squares fitting a
// polynomial of the given degree over a centered window and differentiating
// the fit at the window center. interval is the sample spacing in the time
// unit of the desired derivative. Defaults to symmetric padding.
//
// With degree == window-1 the fit interpolates and the taps reduce to the
// classical finite-difference weights; lower degrees smooth while they
// differentiate (Savitzky-Golay).
func Derivative(window, degree int, interval float64, opts ...arma.Option) (*arma.ARMA, error) {
	if window < 3 || window%2 == 0 {
		return nil, fmt.Errorf("%w: %d (centered window must be odd)", ErrInvalidLength, window)
	}
	if degree < 1 || degree >= window {
		return nil, fmt.Errorf("%w: degree %d for window %d", ErrInvalidDegree, degree, window)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidInterval, interval)
	}

	center := (window - 1) / 2

	// Vandermonde matrix of sample offsets around the window center.
	vand := mat.NewDense(window, degree+1, nil)
	for i := 0; i < window; i++ {
		tau := float64(i - center)
		for j := 0; j <= degree; j++ {
			vand.Set(i, j, math.Pow(tau, float64(j)))
		}
	}

	// Normal equations: the pseudo-inverse row for the linear term holds
	// the derivative weights of the fitted polynomial at the center.
	var vtv mat.Dense
	vtv.Mul(vand.T(), vand)

	var pinv mat.Dense
	if err := pinv.Solve(&vtv, vand.T()); err != nil {
		return nil, fmt.Errorf("design: derivative weights: %w", err)
	}

	// Tap i of the difference equation weights the sample at offset
	// center-i, so the weight row is applied in reverse.
	bn := make([]float64, window)
	for i := range bn {
		bn[i] = pinv.At(1, window-1-i) / interval
	}

	defaults := []arma.Option{
		arma.WithStartIndex(center),
		arma.WithPadding(arma.PadSymmetric),
	}
	return arma.New(bn, []float64{1}, append(defaults, opts...)...)
}
