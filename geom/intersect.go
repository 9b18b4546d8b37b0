// Package geom — collision predicates.
//
// These tests decide whether a candidate segment cuts through material. They
// are deliberately forgiving at the boundary: endpoint contact and grazing
// chords produced by exact tangent constructions must not count as
// penetration, or every valid envelope would reject itself.
package geom

import "math"

// IntersectsDisk reports whether the segment p1→p2 passes through the
// interior of disk d.
//
// The test is hybrid:
//
//  1. Quadratic line/circle intersection, with the chord clipped to the open
//     parameter interval (ParamEps, 1−ParamEps) so endpoint contact does not
//     register.
//  2. A midpoint-inside fallback for chords the clipped quadratic misses,
//     such as a diameter whose both endpoints sit exactly on the boundary
//     with a degenerate discriminant.
//  3. A grazing exemption in both branches: chords shorter than
//     GrazeFraction of the radius are floating-point residue of tangency,
//     not penetration.
//
// Complexity: O(1).
func IntersectsDisk(p1, p2 Point, d Disk) bool {
	// 1) Solve |p1 + t·(p2−p1) − center|² = r² for t.
	dir := p2.Sub(p1)
	a := dir.Dot(dir)
	if a < Eps*Eps {
		// Degenerate segment: a single point cuts no chord.
		return false
	}

	f := p1.Sub(d.Center)
	b := 2 * f.Dot(dir)
	c := f.Dot(f) - d.Radius*d.Radius
	disc := b*b - 4*a*c
	if disc <= 0 {
		// Tangent line or no contact at all.
		return midpointInside(p1, p2, d)
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	// 2) Clip the chord to the open interior of the parameter range.
	lo := math.Max(t1, ParamEps)
	hi := math.Min(t2, 1-ParamEps)
	if hi <= lo {
		return midpointInside(p1, p2, d)
	}

	// 3) Grazing exemption on the clipped chord length.
	chord := (hi - lo) * math.Sqrt(a)

	return chord >= GrazeFraction*d.Radius
}

// midpointInside is the fallback branch of IntersectsDisk: if the segment
// midpoint sits inside the disk, derive the implied chord from its depth and
// apply the same grazing exemption.
func midpointInside(p1, p2 Point, d Disk) bool {
	mid := Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	depth := mid.Distance(d.Center)
	if depth >= d.Radius {
		return false
	}

	halfChord := math.Sqrt(math.Max(0, d.Radius*d.Radius-depth*depth))

	return 2*halfChord >= GrazeFraction*d.Radius
}

// SegmentsIntersect reports whether segments p1→p2 and q1→q2 properly cross.
// Proper means the interiors intersect at a single point: colinear overlaps
// and configurations that merely touch at an endpoint return false.
//
// Complexity: O(1).
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := q2.Sub(q1).Cross(p1.Sub(q1))
	d2 := q2.Sub(q1).Cross(p2.Sub(q1))
	d3 := p2.Sub(p1).Cross(q1.Sub(p1))
	d4 := p2.Sub(p1).Cross(q2.Sub(p1))

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// DistanceToSegment returns the Euclidean distance from p to the closest
// point of segment a→b.
//
// Complexity: O(1).
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den < Eps*Eps {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Distance(a.Add(ab.Scale(t)))
}
