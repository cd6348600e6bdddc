package arma

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-arma/internal/testutil"
)

func TestPadValues(t *testing.T) {
	input := testutil.SequenceOf(
		[]float64{1, 2, 3, 4},
		[]float64{10, 20, 30, 40},
	)

	tests := []struct {
		name    string
		padType PadType
		col0    []float64
	}{
		{
			name:    "zero",
			padType: PadZero,
			col0:    []float64{0, 0, 1, 2, 3, 4, 0, 0},
		},
		{
			name:    "constant",
			padType: PadConstant,
			col0:    []float64{1, 1, 1, 2, 3, 4, 4, 4},
		},
		{
			name:    "periodic",
			padType: PadPeriodic,
			col0:    []float64{3, 4, 1, 2, 3, 4, 1, 2},
		},
		{
			name:    "symmetric",
			padType: PadSymmetric,
			col0:    []float64{3, 2, 1, 2, 3, 4, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded, err := Pad(input, 2, 0, tt.padType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			rows, cols := padded.Dims()
			if rows != 8 || cols != 2 {
				t.Fatalf("shape: got %dx%d, want 8x2", rows, cols)
			}

			got := mat.Col(nil, 0, padded)
			testutil.RequireSliceNearlyEqual(t, got, tt.col0, 0)

			// second channel padded independently with the same policy
			want1 := make([]float64, len(tt.col0))
			for i, v := range tt.col0 {
				want1[i] = 10 * v
			}
			testutil.RequireSliceNearlyEqual(t, mat.Col(nil, 1, padded), want1, 0)
		})
	}
}

func TestPadTimeShiftRows(t *testing.T) {
	input := testutil.SequenceOf([]float64{1, 2, 3})

	padded, err := Pad(input, 2, 1, PadZero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, _ := padded.Dims()
	if rows != 2*2+3+1 {
		t.Fatalf("rows: got %d, want 8", rows)
	}
	if padded.At(7, 0) != 0 {
		t.Fatalf("alignment row must stay zero, got %v", padded.At(7, 0))
	}
}

func TestPadNone(t *testing.T) {
	input := testutil.SequenceOf([]float64{1, 2, 3})

	t.Run("zero shift returns input", func(t *testing.T) {
		padded, err := Pad(input, 5, 0, PadNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if padded != input {
			t.Fatal("expected the input itself, got a copy")
		}
	})

	t.Run("shift appends rows", func(t *testing.T) {
		padded, err := Pad(input, 5, 2, PadNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, mat.Col(nil, 0, padded), []float64{1, 2, 3, 0, 0}, 0)
	})

	t.Run("trim drops shift rows", func(t *testing.T) {
		padded := testutil.SequenceOf([]float64{9, 9, 1, 2, 3})
		trimmed, err := Trim(padded, 5, 2, PadNone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, mat.Col(nil, 0, trimmed), []float64{1, 2, 3}, 0)
	})
}

func TestTrimInvertsPad(t *testing.T) {
	input := testutil.SequenceOf(
		[]float64{1.5, -2, 3.25, 4, -5.5, 6},
		[]float64{0.5, 0.25, -0.125, 7, 8, -9},
	)

	for _, padType := range []PadType{PadZero, PadConstant, PadPeriodic, PadSymmetric} {
		padded, err := Pad(input, 2, 0, padType)
		if err != nil {
			t.Fatalf("%v: pad: %v", padType, err)
		}
		trimmed, err := Trim(padded, 2, 0, padType)
		if err != nil {
			t.Fatalf("%v: trim: %v", padType, err)
		}
		testutil.RequireDenseEqual(t, trimmed, input)
	}
}

func TestTrimShiftRealignsWindow(t *testing.T) {
	input := testutil.SequenceOf([]float64{1, 2, 3, 4, 5, 6})

	// With a time shift the kept window starts shift rows later; a filter
	// writing its output delayed by the shift lands back on the input rows.
	padded, err := Pad(input, 2, 1, PadConstant)
	if err != nil {
		t.Fatalf("pad: %v", err)
	}
	trimmed, err := Trim(padded, 2, 1, PadConstant)
	if err != nil {
		t.Fatalf("trim: %v", err)
	}

	want := []float64{2, 3, 4, 5, 6, 6}
	testutil.RequireSliceNearlyEqual(t, mat.Col(nil, 0, trimmed), want, 0)
}

// emptySequence is a sequence with zero rows, which mat.NewDense cannot
// represent directly.
type emptySequence struct{}

func (emptySequence) Dims() (int, int)    { return 0, 1 }
func (emptySequence) At(_, _ int) float64 { panic("empty sequence") }
func (emptySequence) T() mat.Matrix       { return emptySequence{} }

func TestPadErrors(t *testing.T) {
	short := testutil.SequenceOf([]float64{1, 2, 3})

	tests := []struct {
		name    string
		input   mat.Matrix
		length  int
		padType PadType
		want    error
	}{
		{"zero length input", emptySequence{}, 2, PadZero, ErrZeroLengthInput},
		{"periodic too short", short, 4, PadPeriodic, ErrInvalidPadding},
		{"symmetric too short", short, 3, PadSymmetric, ErrInvalidPadding},
		{"unknown pad type", short, 1, PadType(99), ErrUnknownPadType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pad(tt.input, tt.length, 0, tt.padType)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPadBoundaryLengths(t *testing.T) {
	// periodic allows rows == length, symmetric needs rows == length+1
	input := testutil.SequenceOf([]float64{1, 2, 3})

	if _, err := Pad(input, 3, 0, PadPeriodic); err != nil {
		t.Fatalf("periodic with rows == length: %v", err)
	}
	if _, err := Pad(input, 2, 0, PadSymmetric); err != nil {
		t.Fatalf("symmetric with rows == length+1: %v", err)
	}
}
