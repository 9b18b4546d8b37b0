package dubins_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taut/dubins"
	"github.com/katalvlaran/taut/geom"
)

const tol = 1e-9

// TestMinimalPath_StraightAhead: aligned poses ten radii apart reduce to a
// pure straight run; LSL wins the tie with RSR by evaluation order.
func TestMinimalPath_StraightAhead(t *testing.T) {
	start := dubins.Pose{X: 0, Y: 0, Theta: 0}
	end := dubins.Pose{X: 10, Y: 0, Theta: 0}

	p := dubins.MinimalPath(start, end)
	require.True(t, p.Valid)
	require.Equal(t, dubins.LSL, p.Type)
	require.InDelta(t, 10, p.TotalLength, tol)

	// Both turn arcs are degenerate; only the straight run remains.
	require.Len(t, p.Segments, 1)
	seg, ok := p.Segments[0].(geom.TangentSegment)
	require.True(t, ok)
	require.InDelta(t, 0, seg.Start.X, tol)
	require.InDelta(t, 0, seg.Start.Y, tol)
	require.InDelta(t, 10, seg.End.X, tol)
	require.InDelta(t, 0, seg.End.Y, tol)
}

// TestMinimalPath_UTurn: the half-circle left turn is the shortest way to
// reverse heading two radii away. LSR, RSL and RLR all measure π; LSR wins
// by evaluation order.
func TestMinimalPath_UTurn(t *testing.T) {
	start := dubins.Pose{X: 0, Y: 0, Theta: 0}
	end := dubins.Pose{X: 0, Y: 2, Theta: math.Pi}

	p := dubins.MinimalPath(start, end)
	require.True(t, p.Valid)
	require.Equal(t, dubins.LSR, p.Type)
	require.InDelta(t, math.Pi, p.TotalLength, tol)

	all := dubins.AllPaths(start, end)
	require.Len(t, all, 6)

	require.Equal(t, dubins.LSL, all[0].Type)
	require.False(t, all[0].Valid, "coincident turning circles cannot form LSL")
	require.True(t, math.IsInf(all[0].TotalLength, 1))

	require.Equal(t, dubins.RSR, all[1].Type)
	require.True(t, all[1].Valid)
	require.InDelta(t, 3*math.Pi+4, all[1].TotalLength, tol)

	require.True(t, all[2].Valid)
	require.InDelta(t, math.Pi, all[2].TotalLength, tol)
	require.True(t, all[3].Valid)
	require.InDelta(t, math.Pi, all[3].TotalLength, tol)

	require.Equal(t, dubins.LRL, all[4].Type)
	require.False(t, all[4].Valid)

	require.Equal(t, dubins.RLR, all[5].Type)
	require.True(t, all[5].Valid)
	require.InDelta(t, math.Pi, all[5].TotalLength, tol)
}

// TestMinimalPath_CCCOnly: turning circles closer than 2r invalidate every
// CSC word, leaving the three-arc weave. The shorter middle-circle side
// gives total 2π − 4·acos(D/4r).
func TestMinimalPath_CCCOnly(t *testing.T) {
	start := dubins.Pose{X: 0, Y: 0, Theta: 0}
	end := dubins.Pose{X: 1, Y: 0, Theta: 0}

	p := dubins.MinimalPath(start, end)
	require.True(t, p.Valid)
	require.Equal(t, dubins.LRL, p.Type)
	require.InDelta(t, 2*math.Pi-4*math.Acos(0.25), p.TotalLength, tol)
	require.Len(t, p.Segments, 3)

	all := dubins.AllPaths(start, end)
	for _, cand := range all[:4] {
		require.False(t, cand.Valid, "CSC word %s should be invalid below the 2r bound", cand.Type)
		require.True(t, math.IsInf(cand.TotalLength, 1))
		require.Empty(t, cand.Segments)
	}
}

// TestMinimalPath_SegmentChain: consecutive segments must share endpoints
// and the chain must start and end at the pose positions.
func TestMinimalPath_SegmentChain(t *testing.T) {
	cases := []struct {
		name       string
		start, end dubins.Pose
	}{
		{"straight ahead", dubins.Pose{X: 0, Y: 0, Theta: 0}, dubins.Pose{X: 10, Y: 0, Theta: 0}},
		{"u-turn", dubins.Pose{X: 0, Y: 0, Theta: 0}, dubins.Pose{X: 0, Y: 2, Theta: math.Pi}},
		{"ccc weave", dubins.Pose{X: 0, Y: 0, Theta: 0}, dubins.Pose{X: 1, Y: 0, Theta: 0}},
		{"skew", dubins.Pose{X: -3, Y: 7, Theta: 1.1}, dubins.Pose{X: 14, Y: -2, Theta: -2.4}},
		{"long diagonal", dubins.Pose{X: 0, Y: 0, Theta: math.Pi / 4}, dubins.Pose{X: 40, Y: 25, Theta: -math.Pi / 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := dubins.MinimalPath(tc.start, tc.end)
			require.True(t, p.Valid)
			require.NotEmpty(t, p.Segments)

			first := p.Segments[0].From()
			require.InDelta(t, tc.start.X, first.X, 1e-6)
			require.InDelta(t, tc.start.Y, first.Y, 1e-6)

			last := p.Segments[len(p.Segments)-1].To()
			require.InDelta(t, tc.end.X, last.X, 1e-6)
			require.InDelta(t, tc.end.Y, last.Y, 1e-6)

			for i := 1; i < len(p.Segments); i++ {
				prev := p.Segments[i-1].To()
				next := p.Segments[i].From()
				require.InDelta(t, prev.X, next.X, 1e-6, "gap before segment %d", i)
				require.InDelta(t, prev.Y, next.Y, 1e-6, "gap before segment %d", i)
			}

			// Total equals the sum of the pieces. Degenerate runs shorter
			// than the arc epsilon are charged but not emitted.
			require.InDelta(t, p.TotalLength, geom.PathLength(p.Segments), 1e-6)
		})
	}
}

// TestMinimalPath_Fallback: identical poses admit no word at all; the
// straight connector of length zero is returned instead of a failure.
func TestMinimalPath_Fallback(t *testing.T) {
	pose := dubins.Pose{X: 5, Y: -3, Theta: 0.7}

	p := dubins.MinimalPath(pose, pose)
	require.True(t, p.Valid)
	require.Equal(t, dubins.Straight, p.Type)
	require.Zero(t, p.TotalLength)
	require.Empty(t, p.Segments)
}

func TestMinimalPath_RadiusScaling(t *testing.T) {
	start := dubins.Pose{X: 0, Y: 0, Theta: 0}
	end := dubins.Pose{X: 40, Y: 0, Theta: 0}

	small := dubins.MinimalPath(start, end, dubins.WithMinRadius(1))
	large := dubins.MinimalPath(start, end, dubins.WithMinRadius(5))
	require.True(t, small.Valid)
	require.True(t, large.Valid)
	require.InDelta(t, 40, small.TotalLength, tol)
	require.InDelta(t, 40, large.TotalLength, tol)

	// At r=20 the LSL centers sit exactly on the 2r bound: still valid.
	exact := dubins.AllPaths(start, end, dubins.WithMinRadius(20))
	require.True(t, exact[0].Valid)
	require.InDelta(t, 40, exact[0].TotalLength, tol)

	// At r=25 the same pair falls below the bound and LSL drops out.
	tight := dubins.AllPaths(start, end, dubins.WithMinRadius(25))
	require.False(t, tight[0].Valid, "LSL centers 40 apart are below the 2r=50 bound")
}

func TestWithMinRadius_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { dubins.WithMinRadius(0) })
	require.Panics(t, func() { dubins.WithMinRadius(-2) })
}

// TestAllPaths_Determinism: repeated evaluation yields identical results.
func TestAllPaths_Determinism(t *testing.T) {
	start := dubins.Pose{X: -3, Y: 7, Theta: 1.1}
	end := dubins.Pose{X: 14, Y: -2, Theta: -2.4}

	first := dubins.AllPaths(start, end)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, dubins.AllPaths(start, end))
	}
}
