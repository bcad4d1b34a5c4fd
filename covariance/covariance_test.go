package covariance_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigenref/covariance"
	"github.com/katalvlaran/eigenref/matrix"
)

// fillRandom populates an n×p matrix with deterministic pseudo-random values
// in [-1, 1), seeded per test for reproducibility.
func fillRandom(t *testing.T, m *matrix.Dense[float64], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}

// TestCompute_NilAndShape verifies the validation contract: nil inputs and
// wrongly shaped destinations are rejected with sentinels.
func TestCompute_NilAndShape(t *testing.T) {
	sample, err := matrix.NewDense[float64](4, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, covariance.Compute[float64](nil, sample), covariance.ErrNilMatrix)
	assert.ErrorIs(t, covariance.Compute[float64](sample, nil), covariance.ErrNilMatrix)

	bad, err := matrix.NewDense[float64](4, 4) // should be 3x3
	require.NoError(t, err)
	assert.ErrorIs(t, covariance.Compute(sample, bad), covariance.ErrShapeMismatch)
}

// TestCompute_BruteForce cross-checks every covariance entry against a
// straight re-computation of the defining sum on random small matrices.
func TestCompute_BruteForce(t *testing.T) {
	const (
		n = 7
		p = 5
	)
	sample, err := matrix.NewDense[float64](n, p)
	require.NoError(t, err)
	fillRandom(t, sample, 42)

	cov, err := matrix.NewDense[float64](p, p)
	require.NoError(t, err)
	require.NoError(t, covariance.Compute(sample, cov))

	var row, col, k int
	for row = 0; row < p; row++ {
		for col = 0; col < p; col++ {
			var want float64
			for k = 0; k < n; k++ {
				a, errA := sample.At(k, row)
				require.NoError(t, errA)
				b, errB := sample.At(k, col)
				require.NoError(t, errB)
				want += a * b
			}
			got, errAt := cov.At(row, col)
			require.NoError(t, errAt)
			assert.InDelta(t, want, got, 1e-12,
				"entry (%d,%d) must equal the column dot product", row, col)
		}
	}
}

// TestCompute_Symmetry verifies Cov(row,col) == Cov(col,row) exactly: both
// entries are produced by the same associative summation order.
func TestCompute_Symmetry(t *testing.T) {
	sample, err := matrix.NewDense[float64](10, 6)
	require.NoError(t, err)
	fillRandom(t, sample, 7)

	cov, err := matrix.NewDense[float64](6, 6)
	require.NoError(t, err)
	require.NoError(t, covariance.Compute(sample, cov))

	var i, j int
	for i = 0; i < 6; i++ {
		for j = 0; j < 6; j++ {
			a, errA := cov.At(i, j)
			require.NoError(t, errA)
			b, errB := cov.At(j, i)
			require.NoError(t, errB)
			assert.Equal(t, a, b, "covariance must be exactly symmetric")
		}
	}
}

// TestCompute_NoNormalization pins the deliberate absence of the n−1
// divisor: a constant column of ones yields n, not n/(n−1).
func TestCompute_NoNormalization(t *testing.T) {
	const n = 5
	sample, err := matrix.NewDense[float64](n, 2)
	require.NoError(t, err)
	var k int
	for k = 0; k < n; k++ {
		require.NoError(t, sample.Set(k, 0, 1)) // column of ones
		require.NoError(t, sample.Set(k, 1, 2)) // column of twos
	}

	cov, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, covariance.Compute(sample, cov))

	v00, _ := cov.At(0, 0)
	v01, _ := cov.At(0, 1)
	v11, _ := cov.At(1, 1)
	assert.Equal(t, float64(n), v00, "1·1 summed n times")
	assert.Equal(t, float64(2*n), v01, "1·2 summed n times")
	assert.Equal(t, float64(4*n), v11, "2·2 summed n times")
}

// TestCompute_Float32Promotion verifies the mixed-precision contract for
// narrow storage: products form in float32, accumulation in float64, and
// the result is stored back as float32.
func TestCompute_Float32Promotion(t *testing.T) {
	sample, err := matrix.NewDense[float32](3, 2)
	require.NoError(t, err)
	vals := [][2]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}
	for k, row := range vals {
		require.NoError(t, sample.Set(k, 0, row[0]))
		require.NoError(t, sample.Set(k, 1, row[1]))
	}

	cov, err := matrix.NewDense[float32](2, 2)
	require.NoError(t, err)
	require.NoError(t, covariance.Compute(sample, cov))

	var want float64
	for _, row := range vals {
		want += float64(row[0] * row[1]) // product in float32, sum in float64
	}
	got, errAt := cov.At(0, 1)
	require.NoError(t, errAt)
	assert.Equal(t, float32(want), got, "storage rounding happens once, at the end")
}

// TestComputeBatch_SlotIsolation verifies that every slot of the batch is
// reduced independently: one slot's data never leaks into another's output.
func TestComputeBatch_SlotIsolation(t *testing.T) {
	const (
		count = 3
		n     = 4
		p     = 2
	)
	samples, err := matrix.NewBatch[float64](count, n, p)
	require.NoError(t, err)

	// slot i is filled with the constant value i+1
	var i, r, c int
	for i = 0; i < count; i++ {
		m, errM := samples.Matrix(i)
		require.NoError(t, errM)
		for r = 0; r < n; r++ {
			for c = 0; c < p; c++ {
				require.NoError(t, m.Set(r, c, float64(i+1)))
			}
		}
	}

	covs, err := matrix.NewBatch[float64](count, p, p)
	require.NoError(t, err)
	require.NoError(t, covariance.ComputeBatch(samples, covs))

	for i = 0; i < count; i++ {
		m, errM := covs.Matrix(i)
		require.NoError(t, errM)
		want := float64(n * (i + 1) * (i + 1)) // n·v² for constant columns
		for r = 0; r < p; r++ {
			for c = 0; c < p; c++ {
				got, errAt := m.At(r, c)
				require.NoError(t, errAt)
				assert.Equal(t, want, got, "slot %d entry (%d,%d)", i, r, c)
			}
		}
	}
}

// TestComputeBatch_ShapeMismatch verifies batch-level validation.
func TestComputeBatch_ShapeMismatch(t *testing.T) {
	samples, err := matrix.NewBatch[float64](2, 4, 3)
	require.NoError(t, err)

	bad, err := matrix.NewBatch[float64](2, 4, 4) // must be 3x3 per slot
	require.NoError(t, err)
	assert.ErrorIs(t, covariance.ComputeBatch(samples, bad), covariance.ErrShapeMismatch)

	short, err := matrix.NewBatch[float64](1, 3, 3) // wrong count
	require.NoError(t, err)
	assert.ErrorIs(t, covariance.ComputeBatch(samples, short), covariance.ErrShapeMismatch)
}
