package energy_test

import (
	"testing"

	"github.com/katalvlaran/labs/energy"
	"github.com/katalvlaran/labs/sequence"
)

// benchmarkEnergy scores one fixed random sequence of length n per
// iteration. It resets the timer after setup and fails on unexpected
// errors.
func benchmarkEnergy(b *testing.B, n int) {
	s, err := sequence.Random(n, sequence.NewRand(1))
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = energy.Energy(s); err != nil {
			b.Fatalf("Energy failed: %v", err)
		}
	}
}

// BenchmarkEnergy_N32 benchmarks the O(N²) evaluator at N=32.
func BenchmarkEnergy_N32(b *testing.B) {
	benchmarkEnergy(b, 32)
}

// BenchmarkEnergy_N128 benchmarks the evaluator at N=128.
func BenchmarkEnergy_N128(b *testing.B) {
	benchmarkEnergy(b, 128)
}

// BenchmarkEnergy_N512 benchmarks the evaluator at N=512.
func BenchmarkEnergy_N512(b *testing.B) {
	benchmarkEnergy(b, 512)
}

// BenchmarkSpectrum_N128 benchmarks the full sidelobe spectrum at N=128.
func BenchmarkSpectrum_N128(b *testing.B) {
	s, err := sequence.Random(128, sequence.NewRand(1))
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = energy.Spectrum(s); err != nil {
			b.Fatalf("Spectrum failed: %v", err)
		}
	}
}
