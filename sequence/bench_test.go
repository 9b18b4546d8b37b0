package sequence_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/sequence"
	"github.com/katalvlaran/taut/tangency"
)

// ringFixture builds n equal disks on a circle plus their visit order.
func ringFixture(n int) (*tangency.Graph, []string) {
	disks := make([]geom.Disk, 0, n)
	seq := make([]string, 0, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		id := fmt.Sprintf("d%d", i)
		disks = append(disks, geom.Disk{
			ID:     id,
			Center: geom.Point{X: 500 * math.Cos(phi), Y: 500 * math.Sin(phi)},
			Radius: 50,
		})
		seq = append(seq, id)
	}
	g, err := tangency.Build(disks)
	if err != nil {
		panic(err)
	}
	return g, seq
}

// BenchmarkFindPath_Ring12Free measures the free chirality search on a
// closed 12-disk ring.
func BenchmarkFindPath_Ring12Free(b *testing.B) {
	g, seq := ringFixture(12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sequence.FindPath(g, seq, sequence.WithClosed())
	}
}

// BenchmarkFindPath_Ring12Pinned measures the pinned all-counterclockwise
// solve on the same ring.
func BenchmarkFindPath_Ring12Pinned(b *testing.B) {
	g, seq := ringFixture(12)
	chir := make([]geom.Chirality, len(seq))
	for i := range chir {
		chir[i] = geom.CCW
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sequence.FindPath(g, seq, sequence.WithClosed(), sequence.WithChiralities(chir...))
	}
}
