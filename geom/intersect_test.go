package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taut/geom"
)

func TestIntersectsDisk_Crossing(t *testing.T) {
	d := disk("d", 0, 0, 10)

	// Straight through the center.
	require.True(t, geom.IntersectsDisk(geom.Point{X: -20, Y: 0}, geom.Point{X: 20, Y: 0}, d))
	// Off-center but well inside the radius.
	require.True(t, geom.IntersectsDisk(geom.Point{X: -20, Y: 5}, geom.Point{X: 20, Y: 5}, d))
	// Segment entirely inside the disk.
	require.True(t, geom.IntersectsDisk(geom.Point{X: -3, Y: 0}, geom.Point{X: 3, Y: 1}, d))
}

func TestIntersectsDisk_Miss(t *testing.T) {
	d := disk("d", 0, 0, 10)

	require.False(t, geom.IntersectsDisk(geom.Point{X: -20, Y: 15}, geom.Point{X: 20, Y: 15}, d))
	require.False(t, geom.IntersectsDisk(geom.Point{X: 11, Y: 0}, geom.Point{X: 30, Y: 0}, d))
	// Line through the disk but the segment stops short of it.
	require.False(t, geom.IntersectsDisk(geom.Point{X: 20, Y: 0}, geom.Point{X: 12, Y: 0}, d))
}

// TestIntersectsDisk_EndpointContact: a segment that starts or ends exactly
// on the boundary and leaves outward is tangency, not penetration. This is
// the shape of every tangent segment an envelope is made of.
func TestIntersectsDisk_EndpointContact(t *testing.T) {
	d := disk("d", 0, 0, 10)

	require.False(t, geom.IntersectsDisk(geom.Point{X: 10, Y: 0}, geom.Point{X: 30, Y: 0}, d))
	require.False(t, geom.IntersectsDisk(geom.Point{X: -25, Y: 0}, geom.Point{X: -10, Y: 0}, d))
	// Tangent line touching the top of the disk.
	require.False(t, geom.IntersectsDisk(geom.Point{X: -20, Y: 10}, geom.Point{X: 20, Y: 10}, d))
}

// TestIntersectsDisk_GrazingChord: a chord much shorter than the radius is
// floating-point residue of an exact tangent construction, never a
// collision.
func TestIntersectsDisk_GrazingChord(t *testing.T) {
	d := disk("d", 0, 0, 100)

	// Secant line 1e-5 inside the boundary: chord ≈ 2·sqrt(2·r·1e-5) ≈ 0.09,
	// far below 1% of the radius.
	require.False(t, geom.IntersectsDisk(geom.Point{X: -50, Y: 100 - 1e-5}, geom.Point{X: 50, Y: 100 - 1e-5}, d))

	// One radius-percent deep the chord is ~28 units: a real collision.
	require.True(t, geom.IntersectsDisk(geom.Point{X: -50, Y: 99}, geom.Point{X: 50, Y: 99}, d))
}

// TestIntersectsDisk_BoundaryChord: both endpoints exactly on the circle
// with the chord cutting through the interior must register even though the
// clipped quadratic can lose the roots at t=0 and t=1.
func TestIntersectsDisk_BoundaryChord(t *testing.T) {
	d := disk("d", 0, 0, 10)

	require.True(t, geom.IntersectsDisk(geom.Point{X: -10, Y: 0}, geom.Point{X: 10, Y: 0}, d))
	require.True(t, geom.IntersectsDisk(geom.Point{X: 0, Y: -10}, geom.Point{X: 0, Y: 10}, d))
}

func TestIntersectsDisk_DegenerateSegment(t *testing.T) {
	d := disk("d", 0, 0, 10)

	require.False(t, geom.IntersectsDisk(geom.Point{X: 1, Y: 1}, geom.Point{X: 1, Y: 1}, d))
}

func TestSegmentsIntersect(t *testing.T) {
	p := func(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

	// Proper crossing.
	require.True(t, geom.SegmentsIntersect(p(0, 0), p(10, 10), p(0, 10), p(10, 0)))

	// Disjoint.
	require.False(t, geom.SegmentsIntersect(p(0, 0), p(10, 0), p(0, 5), p(10, 5)))

	// Shared endpoint is touching, not crossing.
	require.False(t, geom.SegmentsIntersect(p(0, 0), p(10, 10), p(10, 10), p(20, 0)))

	// T-junction: one endpoint in the other segment's interior.
	require.False(t, geom.SegmentsIntersect(p(0, 0), p(10, 0), p(5, 0), p(5, 10)))

	// Colinear overlap is excluded by the strict test.
	require.False(t, geom.SegmentsIntersect(p(0, 0), p(10, 0), p(5, 0), p(15, 0)))
}

func TestDistanceToSegment(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}

	require.InDelta(t, 5, geom.DistanceToSegment(geom.Point{X: 5, Y: 5}, a, b), tol)
	require.InDelta(t, 5, geom.DistanceToSegment(geom.Point{X: -5, Y: 0}, a, b), tol)
	require.InDelta(t, 5, geom.DistanceToSegment(geom.Point{X: 13, Y: 4}, a, b), tol)
	// Degenerate segment behaves as a point.
	require.InDelta(t, 5, geom.DistanceToSegment(geom.Point{X: 3, Y: 4}, a, a), tol)
}
