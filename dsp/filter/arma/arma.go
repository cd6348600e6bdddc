package arma

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-arma/internal/fourier"
)

// Coefficient validation errors.
var (
	ErrNoCoefficients  = errors.New("arma: coefficient vectors must be non-empty")
	ErrNotNormalized   = errors.New("arma: feedback coefficients must be normalized to an[0] == 1")
	ErrStartIndexRange = errors.New("arma: start index outside feed-forward coefficient range")
)

// blockSizeLimit bounds the banded coefficient matrices built per block
// while keeping the batched linear-algebra calls large enough to amortize.
const blockSizeLimit = 64

// ARMA evaluates the difference equation
//
//	y(n) = sum_j bn(j)*x(n+s-j) - sum_{j>=1} an(j)*y(n-j)
//
// over every column of a sequence, where s is the start index marking the
// feed-forward tap aligned with the current output sample. Instances are
// immutable after construction and safe for concurrent use on independent
// inputs.
type ARMA struct {
	bn []float64
	an []float64

	startIndex        int
	backward          bool
	inFrequencyDomain bool
	padType           PadType
}

// Option mutates the filter configuration during construction.
type Option func(*ARMA)

// WithStartIndex marks which feed-forward tap aligns with the current
// output sample, allowing centered or lead (acausal) taps.
func WithStartIndex(index int) Option {
	return func(f *ARMA) {
		f.startIndex = index
	}
}

// WithBackward processes sequences in reverse time order, turning the
// causal recursion into its anti-causal counterpart.
func WithBackward(backward bool) Option {
	return func(f *ARMA) {
		f.backward = backward
	}
}

// WithFrequencyDomain evaluates the filter by spectral multiplication
// instead of the blocked time-domain recursion.
func WithFrequencyDomain(inFrequencyDomain bool) Option {
	return func(f *ARMA) {
		f.inFrequencyDomain = inFrequencyDomain
	}
}

// WithPadding sets the boundary policy applied before filtering.
func WithPadding(padType PadType) Option {
	return func(f *ARMA) {
		f.padType = padType
	}
}

// New creates an ARMA filter from feed-forward taps bn and feedback taps an.
// Both slices are copied and must be non-empty; an[0] must be exactly 1
// since the recursion never divides by it.
func New(bn, an []float64, opts ...Option) (*ARMA, error) {
	f := &ARMA{
		bn:      append([]float64(nil), bn...),
		an:      append([]float64(nil), an...),
		padType: PadNone,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if len(f.bn) == 0 || len(f.an) == 0 {
		return nil, fmt.Errorf("%w: len(bn)=%d, len(an)=%d", ErrNoCoefficients, len(f.bn), len(f.an))
	}
	if f.an[0] != 1 {
		return nil, fmt.Errorf("%w: an[0]=%g", ErrNotNormalized, f.an[0])
	}
	if f.startIndex < 0 || f.startIndex >= len(f.bn) {
		return nil, fmt.Errorf("%w: index %d, len(bn)=%d", ErrStartIndexRange, f.startIndex, len(f.bn))
	}

	return f, nil
}

// Coefficients returns copies of the feed-forward and feedback taps.
func (f *ARMA) Coefficients() (bn, an []float64) {
	return append([]float64(nil), f.bn...), append([]float64(nil), f.an...)
}

// StartIndex returns the feed-forward tap aligned with the current sample.
func (f *ARMA) StartIndex() int {
	return f.startIndex
}

// Padding returns the configured boundary policy.
func (f *ARMA) Padding() PadType {
	return f.padType
}

// Warmup returns the minimum number of boundary rows needed so that the
// acausal tap range is covered and the feedback recursion has settled
// (three time constants per feedback order).
func (f *ARMA) Warmup() int {
	w := len(f.bn) - f.startIndex - 1
	if f.startIndex > w {
		w = f.startIndex
	}
	if ar := 3 * (len(f.an) - 1); ar > w {
		w = ar
	}
	return w
}

// Filter applies the filter to every column of input and returns the
// filtered sequence. The input must have at least Warmup() rows.
func (f *ARMA) Filter(input mat.Matrix) (*mat.Dense, error) {
	rows, _ := input.Dims()
	if rows < 1 {
		return nil, fmt.Errorf("%w: empty input", ErrZeroLengthInput)
	}
	if rows < f.Warmup() {
		return nil, fmt.Errorf("%w: %d rows, warmup %d", ErrInsufficientLength, rows, f.Warmup())
	}

	padded, err := Pad(input, f.Warmup(), f.startIndex, f.padType)
	if err != nil {
		return nil, err
	}
	if d, ok := input.(*mat.Dense); ok && d == padded {
		// Pad returned the input itself; work on a copy.
		padded = mat.DenseCopyOf(d)
	}

	if f.inFrequencyDomain {
		return f.filterFrequencyDomain(padded)
	}
	return f.filterTimeDomain(padded)
}

// filterTimeDomain runs the blocked difference equation over the padded
// sequence: a banded feed-forward multiply per block, then a banded
// lower-triangular solve for the feedback recursion. Only adjacent blocks
// couple, because the recursion's memory cannot exceed the feedback order.
func (f *ARMA) filterTimeDomain(padded *mat.Dense) (*mat.Dense, error) {
	if f.backward {
		reverseRows(padded)
	}

	rows, cols := padded.Dims()
	output := mat.NewDense(rows, cols, nil)
	blockSize := min(blockSizeLimit, rows)

	// Feed-forward pass; blocks are independent.
	bBand := bandMatrix(f.bn, blockSize)
	bRows, _ := bBand.Dims()
	for idx := 0; idx < rows; idx += blockSize {
		cc := min(rows-idx, blockSize)
		rc := min(rows-idx, bRows)

		var contrib mat.Dense
		contrib.Mul(bBand.Slice(0, rc, 0, cc), padded.Slice(idx, idx+cc, 0, cols))

		dst := output.Slice(idx, idx+rc, 0, cols).(*mat.Dense)
		dst.Add(dst, &contrib)
	}

	// Feedback pass; blocks strictly in increasing time order.
	if len(f.an) > 1 {
		aBand := bandMatrix(f.an, blockSize)
		for idx := 0; idx < rows; idx += blockSize {
			cc := min(rows-idx, blockSize)

			if idx > 0 {
				if m := min(len(f.an)-1, cc); m > 0 {
					var coupling mat.Dense
					coupling.Mul(aBand.Slice(blockSize, blockSize+m, 0, blockSize),
						output.Slice(idx-blockSize, idx, 0, cols))

					dst := output.Slice(idx, idx+m, 0, cols).(*mat.Dense)
					dst.Sub(dst, &coupling)
				}
			}

			rhs := output.Slice(idx, idx+cc, 0, cols).(*mat.Dense)
			var solved mat.Dense
			if err := solved.Solve(lowerBandTriangular(f.an, cc), rhs); err != nil {
				return nil, fmt.Errorf("arma: feedback solve failed: %w", err)
			}
			rhs.Copy(&solved)
		}
	}

	if f.backward {
		reverseRows(output)
	}

	return Trim(output, f.Warmup(), f.startIndex, f.padType)
}

// filterFrequencyDomain multiplies every column's spectrum by the filter
// response at the padded length. The padding must be long enough that the
// circular wraparound of this single-pass convolution stays inside the
// trimmed boundary rows; Warmup covers the coefficient support.
func (f *ARMA) filterFrequencyDomain(padded *mat.Dense) (*mat.Dense, error) {
	rows, cols := padded.Dims()

	h, err := f.FrequencyResponse(rows)
	if err != nil {
		return nil, err
	}

	even := rows%2 == 0
	col := make([]float64, rows)
	for c := 0; c < cols; c++ {
		mat.Col(col, c, padded)

		spec := fourier.Analyze(col)
		for i := range spec {
			spec[i] *= h[i]
		}

		for r, v := range fourier.Synthesize(spec, even) {
			padded.Set(r, c, v)
		}
	}

	return Trim(padded, f.Warmup(), f.startIndex, f.padType)
}

// bandMatrix builds the (len(taps)+blockSize-1) x blockSize banded Toeplitz
// matrix with taps repeated down every column.
func bandMatrix(taps []float64, blockSize int) *mat.Dense {
	band := mat.NewDense(len(taps)+blockSize-1, blockSize, nil)
	for k := 0; k < blockSize; k++ {
		for j, v := range taps {
			band.Set(k+j, k, v)
		}
	}
	return band
}

// lowerBandTriangular builds the n x n lower-triangular band holding taps
// down every column, used to solve one block of the feedback recursion.
func lowerBandTriangular(taps []float64, n int) *mat.TriDense {
	tri := mat.NewTriDense(n, mat.Lower, nil)
	for k := 0; k < n; k++ {
		for j := 0; j < len(taps) && k+j < n; j++ {
			tri.SetTri(k+j, k, taps[j])
		}
	}
	return tri
}

// reverseRows flips the row order of m in place.
func reverseRows(m *mat.Dense) {
	rows, _ := m.Dims()
	for i, j := 0, rows-1; i < j; i, j = i+1, j-1 {
		ri, rj := m.RawRowView(i), m.RawRowView(j)
		for k := range ri {
			ri[k], rj[k] = rj[k], ri[k]
		}
	}
}
