package design

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-arma/dsp/filter/arma"
)

// MovingMedian is a centered running-median filter. It is not
// ARMA-representable, so it implements the arma.Filter capability directly
// instead of going through the difference-equation engine. Instances are
// immutable after construction and safe for concurrent use.
type MovingMedian struct {
	window  int
	padType arma.PadType
}

// NewMovingMedian creates a running median over an odd, centered window.
// An explicit padding policy is required; order statistics have no way to
// extrapolate past unpadded boundaries.
func NewMovingMedian(window int, padType arma.PadType) (*MovingMedian, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("%w: %d (centered window must be odd)", ErrInvalidLength, window)
	}
	if padType == arma.PadNone {
		return nil, ErrUnpaddedNonlinear
	}
	return &MovingMedian{window: window, padType: padType}, nil
}

// Warmup returns the boundary rows needed on each side of the window center.
func (m *MovingMedian) Warmup() int {
	return m.window / 2
}

// Filter applies the running median to every column of input.
func (m *MovingMedian) Filter(input mat.Matrix) (*mat.Dense, error) {
	rows, cols := input.Dims()
	if rows < m.Warmup() {
		return nil, fmt.Errorf("%w: %d rows, warmup %d", arma.ErrInsufficientLength, rows, m.Warmup())
	}

	half := m.window / 2
	padded, err := arma.Pad(input, half, 0, m.padType)
	if err != nil {
		return nil, err
	}

	out := mat.NewDense(rows, cols, nil)
	column := make([]float64, rows+2*half)
	scratch := make([]float64, m.window)
	for c := 0; c < cols; c++ {
		mat.Col(column, c, padded)
		for n := 0; n < rows; n++ {
			copy(scratch, column[n:n+m.window])
			sort.Float64s(scratch)
			out.Set(n, c, scratch[half])
		}
	}

	return out, nil
}

// FrequencyResponse reports that a median has no transfer function; the
// operation is not linear.
func (m *MovingMedian) FrequencyResponse(length int) ([]complex128, error) {
	return nil, fmt.Errorf("%w: moving median of window %d", ErrNoLinearResponse, m.window)
}
