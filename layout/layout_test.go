package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/layout"
)

// requireSeparated checks the pairwise spacing contract.
func requireSeparated(t *testing.T, disks []geom.Disk, spacing float64) {
	t.Helper()
	var i, j int
	for i = 0; i < len(disks); i++ {
		for j = i + 1; j < len(disks); j++ {
			gap := disks[i].Center.Distance(disks[j].Center)
			limit := (disks[i].Radius + disks[j].Radius) * spacing
			require.GreaterOrEqual(t, gap, limit-1e-9, "disks %d and %d too close", i, j)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	first, err := layout.Random(6, 42)
	require.NoError(t, err)
	second, err := layout.Random(6, 42)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRandom_Properties(t *testing.T) {
	var n int
	for n = 4; n <= 8; n++ {
		disks, err := layout.Random(n, int64(100+n))
		require.NoError(t, err)
		require.Len(t, disks, n)

		var i int
		for i = 0; i < n; i++ {
			require.Equal(t, fmt.Sprintf("d%d", i), disks[i].ID)
			require.GreaterOrEqual(t, disks[i].Radius, 30.0)
			require.LessOrEqual(t, disks[i].Radius, 50.0)
		}
		requireSeparated(t, disks, 1.5)
	}
}

func TestRandom_CountValidation(t *testing.T) {
	_, err := layout.Random(0, 1)
	require.ErrorIs(t, err, layout.ErrNonPositiveCount)
}

func TestFromGraph6_CompleteGraph(t *testing.T) {
	// "C~" is K4.
	disks, err := layout.FromGraph6("C~")
	require.NoError(t, err)
	require.Len(t, disks, 4)

	var i int
	for i = 0; i < len(disks); i++ {
		require.Equal(t, fmt.Sprintf("d%d", i), disks[i].ID)
		require.Equal(t, 50.0, disks[i].Radius)
	}
	requireSeparated(t, disks, 1.5)

	// The scaling pins the tightest pair exactly onto the spacing limit.
	m := minGap(disks)
	require.InDelta(t, 2*50*1.5, m, 1e-6)
}

func TestFromGraph6_Cycle(t *testing.T) {
	// "Dhc" is the 5-cycle.
	disks, err := layout.FromGraph6("Dhc")
	require.NoError(t, err)
	require.Len(t, disks, 5)
	requireSeparated(t, disks, 1.5)
}

func TestFromGraph6_Deterministic(t *testing.T) {
	first, err := layout.FromGraph6("Dhc", layout.WithSeed(7))
	require.NoError(t, err)
	second, err := layout.FromGraph6("Dhc", layout.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFromGraph6_Options(t *testing.T) {
	// "Bw" is the triangle.
	disks, err := layout.FromGraph6("Bw", layout.WithRadius(10), layout.WithSpacing(2))
	require.NoError(t, err)
	require.Len(t, disks, 3)

	var i int
	for i = 0; i < len(disks); i++ {
		require.Equal(t, 10.0, disks[i].Radius)
	}
	requireSeparated(t, disks, 2)
	require.InDelta(t, 2*10*2, minGap(disks), 1e-6)
}

func TestFromGraph6_SingleNode(t *testing.T) {
	disks, err := layout.FromGraph6("@")
	require.NoError(t, err)
	require.Len(t, disks, 1)
	require.Equal(t, "d0", disks[0].ID)
	require.Equal(t, geom.Point{}, disks[0].Center)
}

func TestFromGraph6_Errors(t *testing.T) {
	// Truncated edge bytes.
	_, err := layout.FromGraph6("C")
	require.ErrorIs(t, err, layout.ErrBadGraph6)

	// "?" decodes to the empty graph.
	_, err = layout.FromGraph6("?")
	require.ErrorIs(t, err, layout.ErrNoNodes)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { layout.WithRadius(0) })
	require.Panics(t, func() { layout.WithSpacing(0.5) })
	require.Panics(t, func() { layout.WithIterations(0) })
}

func minGap(disks []geom.Disk) float64 {
	m := disks[0].Center.Distance(disks[1].Center)
	var i, j int
	for i = 0; i < len(disks); i++ {
		for j = i + 1; j < len(disks); j++ {
			if d := disks[i].Center.Distance(disks[j].Center); d < m {
				m = d
			}
		}
	}

	return m
}
