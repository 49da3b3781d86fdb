package floodfill_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/floodfill"
)

// BenchmarkFillOpen fills an open 512×512 grid with a reused queue.
// Complexity: O(N·4).
func BenchmarkFillOpen(b *testing.B) {
	g, err := cartesian.New2D(512, 512)
	if err != nil {
		b.Fatalf("setup New2D failed: %v", err)
	}
	d, err := cartesian.NewData(g, true)
	if err != nil {
		b.Fatalf("setup NewData failed: %v", err)
	}
	buf := make([]int, 0, g.TotalSize())
	pred := func(v bool) bool { return v }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := floodfill.Fill(d, cartesian.XY(256, 256), pred, floodfill.WithQueue(buf)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponentsStriped finds 64 vertical stripes on a 128×128 grid.
func BenchmarkComponentsStriped(b *testing.B) {
	g, err := cartesian.New2D(128, 128)
	if err != nil {
		b.Fatalf("setup New2D failed: %v", err)
	}
	d, err := cartesian.NewDataFunc(g, func(p cartesian.Position) bool { return p.X%2 == 0 })
	if err != nil {
		b.Fatalf("setup NewDataFunc failed: %v", err)
	}
	pred := func(v bool) bool { return v }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := floodfill.Components(d, pred); err != nil {
			b.Fatal(err)
		}
	}
}
