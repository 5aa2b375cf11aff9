package matrix_test

import (
	"testing"

	"github.com/katalvlaran/stoich/matrix"
)

// benchmarkEliminate runs forward elimination + back-substitution on an
// n×(n+1) matrix with a dense, well-conditioned integer pattern.
func benchmarkEliminate(b *testing.B, n int) {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n+1)
		for j := range rows[i] {
			rows[i][j] = int64((i+1)*(j+2)%7 + 1) // deterministic, non-zero
		}
		rows[i][i] += int64(8 * n) // strict diagonal dominance keeps pivots non-zero
	}
	base, err := matrix.FromInts(rows)
	if err != nil {
		b.Fatalf("FromInts: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := base.CloneDense()
		if err := matrix.ForwardEliminate(m, n); err != nil {
			b.Fatalf("ForwardEliminate: %v", err)
		}
		if err := matrix.BackSubstitute(m, n); err != nil {
			b.Fatalf("BackSubstitute: %v", err)
		}
	}
}

// BenchmarkEliminate_Small is a typical reaction size (5 elements).
func BenchmarkEliminate_Small(b *testing.B) { benchmarkEliminate(b, 5) }

// BenchmarkEliminate_Medium stresses fraction growth on 12 elements.
func BenchmarkEliminate_Medium(b *testing.B) { benchmarkEliminate(b, 12) }
