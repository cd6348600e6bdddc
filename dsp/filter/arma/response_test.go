package arma

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-arma/internal/testutil"
)

func TestResponseLengthTooShort(t *testing.T) {
	f, err := New([]float64{1, 1, 1, 1, 1}, []float64{1}, WithStartIndex(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.FrequencyResponse(4); !errors.Is(err, ErrResponseLength) {
		t.Fatalf("got %v, want ErrResponseLength", err)
	}
	if _, err := f.FrequencyResponse(5); err != nil {
		t.Fatalf("length equal to support must succeed, got %v", err)
	}
}

func TestCenteredAverageResponseIsReal(t *testing.T) {
	// A centered symmetric FIR has a purely real (zero-phase) response:
	// H(w) = (1 + 2 cos w) / 3.
	f, err := New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, []float64{1}, WithStartIndex(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const length = 16
	h, err := f.FrequencyResponse(length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h) != length/2+1 {
		t.Fatalf("bin count: got %d, want %d", len(h), length/2+1)
	}

	want := make([]complex128, len(h))
	for k := range want {
		w := 2 * math.Pi * float64(k) / length
		want[k] = complex((1+2*math.Cos(w))/3, 0)
	}
	testutil.RequireComplexNearlyEqual(t, h, want, 1e-12)
}

func TestZeroFeedbackSpectrumBin(t *testing.T) {
	// A(w) = 1 + e^{-jw} vanishes at Nyquist; the response there is
	// defined as 1, never NaN or Inf.
	f, err := New([]float64{1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const length = 8
	h, err := f.FrequencyResponse(length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nyquist := h[len(h)-1]
	if nyquist != 1 {
		t.Fatalf("nyquist bin: got %v, want 1", nyquist)
	}
	for k, v := range h {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("bin %d is not finite: %v", k, v)
		}
	}
}

func TestBackwardResponseIsConjugate(t *testing.T) {
	bn := []float64{0.5, 0.3, 0.2}
	an := []float64{1, -0.4}

	forward, err := New(bn, an)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backward, err := New(bn, an, WithBackward(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const length = 32
	hf, err := forward.FrequencyResponse(length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hb, err := backward.FrequencyResponse(length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := make([]complex128, len(hf))
	for k, v := range hf {
		want[k] = cmplx.Conj(v)
	}
	testutil.RequireComplexNearlyEqual(t, hb, want, 1e-12)
}

func TestAcausalTapsWrapAround(t *testing.T) {
	// With the start index past the tap, bn = [1, 0] is a pure one-sample
	// lead: the acausal head wraps to the end of the coefficient vector
	// and multiplies the spectrum by e^{+jw}.
	f, err := New([]float64{1, 0}, []float64{1}, WithStartIndex(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const length = 16
	h, err := f.FrequencyResponse(length)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := make([]complex128, len(h))
	for k := range want {
		w := 2 * math.Pi * float64(k) / length
		want[k] = cmplx.Exp(complex(0, w))
	}
	testutil.RequireComplexNearlyEqual(t, h, want, 1e-12)
}
