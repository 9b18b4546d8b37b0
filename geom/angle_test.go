package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taut/geom"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{math.Pi, -math.Pi}, // π maps to the low end of [-π, π)
		{3 * math.Pi, -math.Pi},
		{2 * math.Pi, 0},
		{-2 * math.Pi, 0},
		{5 * math.Pi / 2, math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}

	for _, tc := range cases {
		require.InDelta(t, tc.want, geom.NormalizeAngle(tc.in), tol, "normalize(%v)", tc.in)
	}
}

func TestCCWDelta(t *testing.T) {
	require.InDelta(t, 0, geom.CCWDelta(1.0, 1.0), tol)
	require.InDelta(t, math.Pi/2, geom.CCWDelta(0, math.Pi/2), tol)
	require.InDelta(t, 3*math.Pi/2, geom.CCWDelta(math.Pi/2, 0), tol)
	// Wrap across the ±π seam.
	require.InDelta(t, 0.2, geom.CCWDelta(math.Pi-0.1, -math.Pi+0.1), tol)
	// Inputs outside the principal range are folded.
	require.InDelta(t, math.Pi/2, geom.CCWDelta(4*math.Pi, math.Pi/2), tol)
	// Rounding noise on coincident angles never reads as a full turn.
	require.Zero(t, geom.CCWDelta(1.0, 1.0-1e-13))
	require.Zero(t, geom.CCWDelta(1.0, 1.0+1e-13))
}

// TestArcLength_WrapDirection pins the directional convention: the same
// angle pair measures complementary arcs under opposite chirality, and the
// two always sum to the full circumference.
func TestArcLength_WrapDirection(t *testing.T) {
	const r = 50.0

	ccw := geom.ArcLength(r, 0, math.Pi/2, geom.CCW)
	cw := geom.ArcLength(r, 0, math.Pi/2, geom.CW)
	require.InDelta(t, r*math.Pi/2, ccw, tol)
	require.InDelta(t, r*3*math.Pi/2, cw, tol)
	require.InDelta(t, 2*math.Pi*r, ccw+cw, tol)

	// Identical angles measure an empty arc, never a full turn.
	require.InDelta(t, 0, geom.ArcLength(r, 1.2, 1.2, geom.CCW), tol)
	require.InDelta(t, 0, geom.ArcLength(r, 1.2, 1.2, geom.CW), tol)
}

// TestArcLength_NearFullTurn: as the target angle approaches the start from
// against the travel direction, the arc approaches the full circumference.
func TestArcLength_NearFullTurn(t *testing.T) {
	const (
		r   = 50.0
		eps = 1e-7
	)

	got := geom.ArcLength(r, 1.0, 1.0-eps, geom.CCW)
	require.InDelta(t, 2*math.Pi*r, got, r*eps*2)

	got = geom.ArcLength(r, 1.0, 1.0+eps, geom.CW)
	require.InDelta(t, 2*math.Pi*r, got, r*eps*2)
}

func TestArcLength_NonNegative(t *testing.T) {
	angles := []float64{-3, -1.5, 0, 0.8, 2.9}
	for _, from := range angles {
		for _, to := range angles {
			require.GreaterOrEqual(t, geom.ArcLength(10, from, to, geom.CCW), 0.0)
			require.GreaterOrEqual(t, geom.ArcLength(10, from, to, geom.CW), 0.0)
		}
	}
}

func TestPointOnCircle(t *testing.T) {
	c := geom.Point{X: 3, Y: -2}
	p := geom.PointOnCircle(c, 5, math.Pi)
	require.InDelta(t, -2, p.X, tol)
	require.InDelta(t, -2, p.Y, tol)

	// PointAt is the disk-level view of the same construction.
	d := geom.Disk{ID: "d", Center: c, Radius: 5}
	q := d.PointAt(math.Pi)
	require.InDelta(t, p.X, q.X, tol)
	require.InDelta(t, p.Y, q.Y, tol)
}
