package covariance_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/eigenref/covariance"
	"github.com/katalvlaran/eigenref/matrix"
)

// benchmarkCompute runs the covariance kernel on an n×p sample matrix filled
// with deterministic pseudo-random values. It resets the timer after setup
// and fails on unexpected errors.
func benchmarkCompute(b *testing.B, n, p int) {
	sample, err := matrix.NewDense[float64](n, p)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	data := sample.Data()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	dst, err := matrix.NewDense[float64](p, p)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err = covariance.Compute(sample, dst); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_Small benchmarks a 16×8 sample reduction.
func BenchmarkCompute_Small(b *testing.B) {
	benchmarkCompute(b, 16, 8)
}

// BenchmarkCompute_Medium benchmarks a 256×32 sample reduction.
func BenchmarkCompute_Medium(b *testing.B) {
	benchmarkCompute(b, 256, 32)
}

// BenchmarkCompute_Tall benchmarks a 4096×16 sample reduction (many
// observations, few features — the FPGA validation shape).
func BenchmarkCompute_Tall(b *testing.B) {
	benchmarkCompute(b, 4096, 16)
}
