package jug_test

import (
	"testing"

	"github.com/katalvlaran/waterjug/jug"
)

// BenchmarkSolve_Small measures the classic 3/5 query.
func BenchmarkSolve_Small(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = jug.Solve(3, 5, 4)
	}
}

// BenchmarkSolve_Coprime runs a query whose answer sits deep in a large space.
func BenchmarkSolve_Coprime(b *testing.B) {
	const x, y = 997, 1009
	b.ReportAllocs()
	b.SetBytes(int64((x + 1) * (y + 1)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = jug.Solve(x, y, 500)
	}
}

// BenchmarkSearch_Exhaust measures a full sweep of the reachable space on infeasible input.
func BenchmarkSearch_Exhaust(b *testing.B) {
	const x, y = 600, 900
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = jug.Search(x, y, 301)
	}
}

// BenchmarkFeasible measures the gcd pre-check alone.
func BenchmarkFeasible(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = jug.Feasible(1_000_003, 999_983, 12345)
	}
}
