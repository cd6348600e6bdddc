package arma

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by padding, trimming, and filtering.
var (
	ErrZeroLengthInput    = errors.New("arma: cannot pad a zero length sequence")
	ErrInvalidPadding     = errors.New("arma: sequence too short for padding policy")
	ErrInsufficientLength = errors.New("arma: sequence shorter than filter warmup")
	ErrUnknownPadType     = errors.New("arma: unknown pad type")
	ErrResponseLength     = errors.New("arma: response length too short for this filter")
)

// PadType selects the boundary policy used to extend a sequence before
// filtering and to remove the extension afterwards.
type PadType int

const (
	// PadNone applies no boundary extension. A nonzero time shift still
	// appends alignment rows at the end.
	PadNone PadType = iota

	// PadZero extends the sequence with zero rows.
	PadZero

	// PadConstant replicates the first and last rows.
	PadConstant

	// PadPeriodic wraps rows from the opposite end of the sequence.
	PadPeriodic

	// PadSymmetric mirrors rows around the first and last interior samples.
	PadSymmetric
)

// String returns the configuration name of the pad type.
func (p PadType) String() string {
	switch p {
	case PadNone:
		return "none"
	case PadZero:
		return "zero"
	case PadConstant:
		return "constant"
	case PadPeriodic:
		return "periodic"
	case PadSymmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("PadType(%d)", int(p))
	}
}

// Pad extends input with length boundary rows on each side plus timeShift
// alignment rows at the end, filled according to padType. The input occupies
// rows [length, length+rows).
//
// PadNone with a zero timeShift returns the input itself without copying.
func Pad(input mat.Matrix, length, timeShift int, padType PadType) (*mat.Dense, error) {
	rows, cols := input.Dims()

	if padType == PadNone {
		if timeShift <= 0 {
			if d, ok := input.(*mat.Dense); ok {
				return d, nil
			}
			return mat.DenseCopyOf(input), nil
		}
		padded := mat.NewDense(rows+timeShift, cols, nil)
		padded.Slice(0, rows, 0, cols).(*mat.Dense).Copy(input)
		return padded, nil
	}

	if rows < 1 {
		return nil, fmt.Errorf("%w (%d x %d)", ErrZeroLengthInput, rows, cols)
	}

	padded := mat.NewDense(2*length+rows+timeShift, cols, nil)
	padded.Slice(length, length+rows, 0, cols).(*mat.Dense).Copy(input)

	switch padType {
	case PadZero:
		// rows outside the input stay zero

	case PadConstant:
		for k := 0; k < length; k++ {
			for j := 0; j < cols; j++ {
				padded.Set(k, j, input.At(0, j))
				padded.Set(rows+length+k, j, input.At(rows-1, j))
			}
		}

	case PadPeriodic:
		if rows < length {
			return nil, fmt.Errorf("%w: periodic padding of length %d needs at least %d rows, have %d",
				ErrInvalidPadding, length, length, rows)
		}
		for k := 0; k < length; k++ {
			for j := 0; j < cols; j++ {
				padded.Set(k, j, input.At(rows-length+k, j))
				padded.Set(rows+length+k, j, input.At(k, j))
			}
		}

	case PadSymmetric:
		if rows < length+1 {
			return nil, fmt.Errorf("%w: symmetric padding of length %d needs at least %d rows, have %d",
				ErrInvalidPadding, length, length+1, rows)
		}
		for k := 0; k < length; k++ {
			for j := 0; j < cols; j++ {
				padded.Set(length-1-k, j, input.At(k+1, j))
				padded.Set(rows+length+k, j, input.At(rows-2-k, j))
			}
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPadType, padType)
	}

	return padded, nil
}

// Trim removes the boundary rows added by Pad with the same parameters,
// keeping rows [length+timeShift, rows-length). A filter run over the
// padded sequence writes its output delayed by the time shift, so the
// extra front rows restore alignment; with a zero time shift,
// Trim(Pad(x, ...)) reproduces x exactly for every pad type but PadNone.
func Trim(input mat.Matrix, length, timeShift int, padType PadType) (*mat.Dense, error) {
	rows, cols := input.Dims()

	switch padType {
	case PadNone:
		if timeShift <= 0 {
			if d, ok := input.(*mat.Dense); ok {
				return d, nil
			}
			return mat.DenseCopyOf(input), nil
		}
		if rows <= timeShift {
			return nil, fmt.Errorf("%w: cannot trim %d alignment rows from %d rows",
				ErrInvalidPadding, timeShift, rows)
		}
		d := denseOf(input)
		return mat.DenseCopyOf(d.Slice(timeShift, rows, 0, cols)), nil

	case PadZero, PadConstant, PadPeriodic, PadSymmetric:
		if rows <= 2*length+timeShift {
			return nil, fmt.Errorf("%w: cannot trim %d boundary rows from %d rows",
				ErrInvalidPadding, 2*length+timeShift, rows)
		}
		d := denseOf(input)
		return mat.DenseCopyOf(d.Slice(length+timeShift, rows-length, 0, cols)), nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPadType, padType)
	}
}

// denseOf returns input as a *mat.Dense, copying only if necessary.
func denseOf(input mat.Matrix) *mat.Dense {
	if d, ok := input.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(input)
}
