package design

import (
	"github.com/cwbudde/algo-arma/dsp/filter/arma"
)

// Lag designs a pure delay of k samples; negative k yields a lead.
// The default boundary policy is none, so a lead shortens warmup handling
// to pure time alignment and a delay zero-fills its first k outputs.
func Lag(k int, opts ...arma.Option) (*arma.ARMA, error) {
	var bn []float64
	var start int

	if k >= 0 {
		// y(n) = x(n-k): unit tap at offset k past the start index.
		bn = make([]float64, k+1)
		bn[k] = 1
		start = 0
	} else {
		// y(n) = x(n+|k|): unit tap at the start of an acausal window.
		bn = make([]float64, -k+1)
		bn[0] = 1
		start = -k
	}

	defaults := []arma.Option{
		arma.WithStartIndex(start),
		arma.WithPadding(arma.PadNone),
	}
	return arma.New(bn, []float64{1}, append(defaults, opts...)...)
}
