// Package testutil provides deterministic signal generators and tolerance
// helpers shared by the filter package tests.
package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Ramp generates the sequence start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// SequenceOf builds a dense sequence from per-channel sample slices.
// All columns must have the same length.
func SequenceOf(columns ...[]float64) *mat.Dense {
	rows := len(columns[0])
	seq := mat.NewDense(rows, len(columns), nil)
	for c, col := range columns {
		for r, v := range col {
			seq.Set(r, c, v)
		}
	}
	return seq
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any bin differs by more than eps in magnitude.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("bin count mismatch: got %d, want %d", len(got), len(want))
	}
	for k := range got {
		re := math.Abs(real(got[k]) - real(want[k]))
		im := math.Abs(imag(got[k]) - imag(want[k]))
		if re > eps || im > eps {
			t.Fatalf("bin %d: got %v, want %v (eps %v)", k, got[k], want[k], eps)
		}
	}
}

// RequireDenseEqual fails t unless got and want have identical shape and
// every element matches exactly.
func RequireDenseEqual(t *testing.T, got, want mat.Matrix) {
	t.Helper()
	RequireDenseNearlyEqual(t, got, want, 0)
}

// RequireDenseNearlyEqual fails t unless got and want have identical shape
// and every element pair is within eps (absolute tolerance).
func RequireDenseNearlyEqual(t *testing.T, got, want mat.Matrix, eps float64) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", gr, gc, wr, wc)
	}
	for r := 0; r < gr; r++ {
		for c := 0; c < gc; c++ {
			diff := math.Abs(got.At(r, c) - want.At(r, c))
			if diff > eps {
				t.Fatalf("element (%d,%d): got %v, want %v (diff %v > eps %v)",
					r, c, got.At(r, c), want.At(r, c), diff, eps)
			}
		}
	}
}
