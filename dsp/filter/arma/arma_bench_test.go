package arma

import (
	"testing"

	"github.com/cwbudde/algo-arma/internal/testutil"
)

func benchInput(rows, cols int) [][]float64 {
	columns := make([][]float64, cols)
	for c := range columns {
		columns[c] = testutil.DeterministicSine(float64(c+1), float64(rows), 1, rows)
	}
	return columns
}

func BenchmarkFilterFIR(b *testing.B) {
	f, err := New([]float64{0.1, 0.2, 0.4, 0.2, 0.1}, []float64{1},
		WithStartIndex(2), WithPadding(PadSymmetric))
	if err != nil {
		b.Fatal(err)
	}
	input := testutil.SequenceOf(benchInput(4096, 3)...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Filter(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterIIR(b *testing.B) {
	f, err := New([]float64{0.5, 0.3, 0.2}, []float64{1, -0.5, 0.06},
		WithPadding(PadSymmetric))
	if err != nil {
		b.Fatal(err)
	}
	input := testutil.SequenceOf(benchInput(4096, 3)...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Filter(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilterFrequencyDomain(b *testing.B) {
	f, err := New([]float64{0.1, 0.2, 0.4, 0.2, 0.1}, []float64{1},
		WithStartIndex(2), WithPadding(PadSymmetric), WithFrequencyDomain(true))
	if err != nil {
		b.Fatal(err)
	}
	input := testutil.SequenceOf(benchInput(4096, 3)...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Filter(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFrequencyResponse(b *testing.B) {
	f, err := New([]float64{0.5, 0.3, 0.2}, []float64{1, -0.5, 0.06})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.FrequencyResponse(4096); err != nil {
			b.Fatal(err)
		}
	}
}
