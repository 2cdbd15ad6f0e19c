package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// BenchmarkGenerate measures generation of a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Generate(500, 500, gridgraph.WithSeed(int64(i)))
	}
}

// BenchmarkConnectedComponents measures component labelling
// on a deterministic random 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.Generate(1000, 1000, gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkMinClearance measures corner-to-corner clearance on a 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkMinClearance(b *testing.B) {
	gg, err := gridgraph.Generate(1000, 1000, gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.MinClearance(gg.Start(), gg.Goal())
	}
}
