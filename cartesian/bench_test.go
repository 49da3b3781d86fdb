package cartesian_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/cartesian"
)

// BenchmarkIndexRoundTrip measures PosFromIndex followed by IndexFromPos on
// a 256×256×16 grid.
// Complexity: O(1) per cell.
func BenchmarkIndexRoundTrip(b *testing.B) {
	g, err := cartesian.New3D(256, 256, 16)
	if err != nil {
		b.Fatalf("setup New3D failed: %v", err)
	}
	n := g.TotalSize()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := g.PosFromIndex(i % n)
		_, _ = g.IndexFromPos(p)
	}
}

// BenchmarkNeighborIndexes measures the all-directions neighbor lookup on a
// wrapping 3D grid with 26 directions, reusing one buffer.
// Complexity: O(d) per call, d = 26.
func BenchmarkNeighborIndexes(b *testing.B) {
	g, err := cartesian.New3D(64, 64, 64, cartesian.WithWrap(true, true, true), cartesian.WithDiagonals())
	if err != nil {
		b.Fatalf("setup New3D failed: %v", err)
	}
	n := g.TotalSize()
	buf := make([]int, g.DirectionsCount())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, _ = g.NeighborIndexes(i%n, buf)
	}
}
