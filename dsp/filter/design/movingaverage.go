package design

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-arma/dsp/filter/arma"
)

// Errors returned by the design factories.
var (
	ErrInvalidLength     = errors.New("design: window length must be positive")
	ErrInvalidFrequency  = errors.New("design: frequency must lie in (0, sampleRate/2)")
	ErrInvalidQuality    = errors.New("design: quality factor must be positive")
	ErrInvalidOrder      = errors.New("design: filter order must be positive")
	ErrInvalidDegree     = errors.New("design: polynomial degree out of range")
	ErrInvalidInterval   = errors.New("design: sampling interval must be positive")
	ErrNoLinearResponse  = errors.New("design: filter has no frequency response")
	ErrUnpaddedNonlinear = errors.New("design: order-statistics filters require a padding policy")
)

// MovingAverage designs a centered boxcar average over the given window
// length. Defaults to constant padding; pass arma options to override.
func MovingAverage(length int, opts ...arma.Option) (*arma.ARMA, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	bn := make([]float64, length)
	for i := range bn {
		bn[i] = 1 / float64(length)
	}

	defaults := []arma.Option{
		arma.WithStartIndex((length - 1) / 2),
		arma.WithPadding(arma.PadConstant),
	}
	return arma.New(bn, []float64{1}, append(defaults, opts...)...)
}
