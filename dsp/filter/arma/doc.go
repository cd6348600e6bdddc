// Package arma implements linear time-invariant digital filtering of
// multi-channel time series held as dense matrices (rows = ordered samples,
// columns = independent channels).
//
// The core is a generic ARMA (autoregressive moving-average) engine that
// applies an arbitrary feed-forward/feedback difference equation to a
// complete in-memory sequence. Two evaluation strategies are provided:
//
//   - Time domain: the padded sequence is processed in fixed-size blocks
//     using batched banded matrix multiplies for the feed-forward taps and
//     lower-triangular solves for the feedback recursion.
//   - Frequency domain: each column is transformed, multiplied by the
//     filter's frequency response at the padded length, and transformed
//     back.
//
// Boundary handling is explicit: Pad extends a sequence under a selectable
// policy (zero, constant, periodic, symmetric, or none), and Trim is its
// exact inverse on the row dimension. The padding supplies the warmup
// samples a recursive filter needs before its output has settled.
//
// Filters are immutable after construction and safe for concurrent use on
// independent inputs. Multiple filters compose into a Chain whose combined
// frequency response is the element-wise product of its members' responses.
//
// # Usage
//
// A centered three-tap average with edge replication:
//
//	f, err := arma.New(
//		[]float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
//		[]float64{1},
//		arma.WithStartIndex(1),
//		arma.WithPadding(arma.PadConstant),
//	)
//	if err != nil {
//		...
//	}
//	out, err := f.Filter(seq)
//
// Coefficient factories for common designs (moving average, Butterworth,
// notch, lag, derivative, running median) live in dsp/filter/design.
package arma
