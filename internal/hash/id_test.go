package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
			assert.Equal(t, tt.id, Sum([]byte(tt.data)))
		})
	}
}

func TestFingerprint(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20, 30}

	require.Equal(t, Fingerprint(xs, ys), Fingerprint([]float64{1, 2, 3}, []float64{10, 20, 30}))
	require.NotEqual(t, Fingerprint(xs, ys), Fingerprint(xs, []float64{10, 20, 31}))
	require.NotEqual(t, Fingerprint(xs, ys), Fingerprint(xs[:2], ys[:2]))
	require.NotEqual(t, Fingerprint(nil, nil), Fingerprint([]float64{0}, []float64{0}))
}

func BenchmarkFingerprint(b *testing.B) {
	xs := make([]float64, 1000)
	ys := make([]float64, 1000)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i * i)
	}
	b.ResetTimer()
	for b.Loop() {
		Fingerprint(xs, ys)
	}
}
