package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/taut/geom"
)

const tol = 1e-9

// TestBitangents_TwoEqualDisks pins the canonical two-disk configuration:
// equal radii 50 at distance 150 admit all four tangents; the RSR tangent
// runs along the top of both circles (touch angle π/2) with length 150.
func TestBitangents_TwoEqualDisks(t *testing.T) {
	d0 := geom.Disk{ID: "d0", Center: geom.Point{X: 0, Y: 0}, Radius: 50}
	d1 := geom.Disk{ID: "d1", Center: geom.Point{X: 150, Y: 0}, Radius: 50}

	segs := geom.Bitangents(d0, d1)
	require.Len(t, segs, 4)

	require.Equal(t, geom.LSL, segs[0].Type)
	require.Equal(t, geom.RSR, segs[1].Type)
	require.Equal(t, geom.LSR, segs[2].Type)
	require.Equal(t, geom.RSL, segs[3].Type)

	rsr := segs[1]
	require.InDelta(t, 0, rsr.Start.X, tol)
	require.InDelta(t, 50, rsr.Start.Y, tol)
	require.InDelta(t, 150, rsr.End.X, tol)
	require.InDelta(t, 50, rsr.End.Y, tol)
	require.InDelta(t, 150, rsr.Length, tol)

	// Touch angle π/2 on both disks.
	require.InDelta(t, math.Pi/2, d0.AngleOf(rsr.Start), tol)
	require.InDelta(t, math.Pi/2, d1.AngleOf(rsr.End), tol)

	// LSL mirrors it along the bottom.
	lsl := segs[0]
	require.InDelta(t, -50, lsl.Start.Y, tol)
	require.InDelta(t, -50, lsl.End.Y, tol)
	require.InDelta(t, 150, lsl.Length, tol)
}

// TestBitangents_TouchGeometry checks the defining tangency properties over
// a spread of configurations: every endpoint sits exactly on its circle and
// the straight run is perpendicular to both touch radii.
func TestBitangents_TouchGeometry(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Disk
		want int
	}{
		{"equal radii, wide apart", disk("a", 0, 0, 50), disk("b", 150, 0, 50), 4},
		{"unequal radii", disk("a", -20, 35, 12), disk("b", 90, -40, 31), 4},
		{"diagonal placement", disk("a", 3, 4, 5), disk("b", 60, 80, 25), 4},
		{"overlapping, outer only", disk("a", 0, 0, 50), disk("b", 80, 0, 50), 2},
		{"near-tangent interior", disk("a", 0, 0, 30), disk("b", 25, 0, 10), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs := geom.Bitangents(tc.a, tc.b)
			require.Len(t, segs, tc.want)

			for _, s := range segs {
				// Endpoints on their circles.
				require.True(t, scalar.EqualWithinAbs(tc.a.Center.Distance(s.Start), tc.a.Radius, tol),
					"start of %s not on circle a", s.Type)
				require.True(t, scalar.EqualWithinAbs(tc.b.Center.Distance(s.End), tc.b.Radius, tol),
					"end of %s not on circle b", s.Type)

				// Perpendicular to the touch radii.
				dir := s.End.Sub(s.Start)
				n := dir.Norm()
				require.Greater(t, n, 0.0)
				dir = dir.Scale(1 / n)
				radialA := s.Start.Sub(tc.a.Center).Scale(1 / tc.a.Radius)
				radialB := s.End.Sub(tc.b.Center).Scale(1 / tc.b.Radius)
				require.True(t, scalar.EqualWithinAbs(dir.Dot(radialA), 0, tol),
					"%s not perpendicular at start", s.Type)
				require.True(t, scalar.EqualWithinAbs(dir.Dot(radialB), 0, tol),
					"%s not perpendicular at end", s.Type)

				// Length matches the endpoints.
				require.InDelta(t, s.Start.Distance(s.End), s.Length, tol)
			}
		})
	}
}

// TestBitangents_ChiralityConsistency verifies that the travel direction at
// each touch point matches the wrap direction the tangent type declares.
func TestBitangents_ChiralityConsistency(t *testing.T) {
	a := disk("a", -20, 35, 12)
	b := disk("b", 90, -40, 31)

	segs := geom.Bitangents(a, b)
	require.Len(t, segs, 4)

	for _, s := range segs {
		dir := s.End.Sub(s.Start)
		if dir.Norm() < tol {
			continue // degenerate inner tangent of touching disks
		}

		requireWrapMatches(t, s.Type.Departure(), s.Start.Sub(a.Center), dir)
		requireWrapMatches(t, s.Type.Arrival(), s.End.Sub(b.Center), dir)
	}
}

// requireWrapMatches asserts that moving along dir at a boundary point with
// the given radial vector is consistent with the claimed wrap direction.
func requireWrapMatches(t *testing.T, want geom.Chirality, radial, dir geom.Point) {
	t.Helper()
	cross := radial.Cross(dir)
	if want == geom.CCW {
		require.Greater(t, cross, 0.0, "expected counter-clockwise travel")
	} else {
		require.Less(t, cross, 0.0, "expected clockwise travel")
	}
}

// TestBitangents_CoincidentCenters pins the degenerate boundary case: the
// result is empty and free of NaN, never a poisoned segment list.
func TestBitangents_CoincidentCenters(t *testing.T) {
	a := disk("a", 10, 10, 5)
	b := disk("b", 10, 10, 9)

	require.Empty(t, geom.Bitangents(a, b))

	// Sub-epsilon separation counts as coincident too.
	b.Center = geom.Point{X: 10 + 1e-12, Y: 10}
	require.Empty(t, geom.Bitangents(a, b))
}

func TestBitangents_ContainedDisk(t *testing.T) {
	outer := disk("outer", 0, 0, 50)
	inner := disk("inner", 10, 0, 10)

	require.Empty(t, geom.Bitangents(outer, inner))
	require.Empty(t, geom.Bitangents(inner, outer))
}

// TestBitangents_MutuallyTangent: disks touching at a single point sit on
// the inner-pair existence boundary; the inner tangents degenerate to the
// contact point but must still be returned.
func TestBitangents_MutuallyTangent(t *testing.T) {
	a := disk("a", 0, 0, 50)
	b := disk("b", 100, 0, 50)

	segs := geom.Bitangents(a, b)
	require.Len(t, segs, 4)

	require.InDelta(t, 0, segs[2].Length, 1e-6)
	require.InDelta(t, 0, segs[3].Length, 1e-6)
	for _, s := range segs {
		require.False(t, math.IsNaN(s.Start.X) || math.IsNaN(s.Start.Y))
		require.False(t, math.IsNaN(s.End.X) || math.IsNaN(s.End.Y))
	}
}

// TestPointTangents_Basic: from (2,0) to the unit disk the touch points sit
// at ±60°, the CCW-entering tangent first.
func TestPointTangents_Basic(t *testing.T) {
	d := disk("d", 0, 0, 1)
	p := geom.Point{X: 2, Y: 0}

	tans := geom.PointTangents(p, d)
	require.Len(t, tans, 2)

	require.Equal(t, geom.CCW, tans[0].Chirality)
	require.Equal(t, geom.CW, tans[1].Chirality)
	require.InDelta(t, math.Pi/3, tans[0].Angle, tol)
	require.InDelta(t, -math.Pi/3, tans[1].Angle, tol)

	for _, pt := range tans {
		// Touch point on the circle, tangent perpendicular to the radius.
		require.InDelta(t, 1, d.Center.Distance(pt.Touch), tol)
		dir := pt.Touch.Sub(p)
		require.InDelta(t, 0, pt.Touch.Sub(d.Center).Dot(dir), tol)
		require.InDelta(t, math.Sqrt(3), pt.Length, tol)
	}
}

func TestPointTangents_PointInside(t *testing.T) {
	d := disk("d", 0, 0, 10)

	require.Nil(t, geom.PointTangents(geom.Point{X: 3, Y: 4}, d))
	// On the boundary there is no proper tangent line either.
	require.Nil(t, geom.PointTangents(geom.Point{X: 10, Y: 0}, d))
}

func disk(id string, x, y, r float64) geom.Disk {
	return geom.Disk{ID: id, Center: geom.Point{X: x, Y: y}, Radius: r}
}
