// Package geom — tangent line constructions.
//
// Two constructions live here:
//
//   - Bitangents: the up-to-four common tangents of two disks, classified by
//     the wrap directions they are compatible with (LSL, RSR, LSR, RSL).
//   - PointTangents: the two tangents from a free point to a disk, tagged
//     with the wrap direction they feed into.
//
// Both report non-existence with an empty result; acos inputs are clamped so
// no NaN coordinate can ever leak into a segment.
package geom

import "math"

// Bitangents returns the common tangent segments running from disk a to
// disk b, in the fixed order LSL, RSR, LSR, RSL.
//
// Existence:
//
//   - The outer pair (LSL, RSR) exists iff D ≥ |r₁−r₂| − Eps, where D is the
//     center distance. Touch radii are parallel, so both disks are touched at
//     the same boundary angle θ∓γ with γ = acos((r₁−r₂)/D) off the
//     center-to-center bearing θ.
//   - The inner pair (LSR, RSL) exists iff D ≥ r₁+r₂ − Eps. Touch radii are
//     antiparallel: the start disk is touched at θ∓β with β = acos((r₁+r₂)/D)
//     and the end disk half a turn away.
//   - Coincident centers (D < Eps) admit no tangent at all; the result is nil.
//
// Mutually tangent disks sit exactly on the inner-pair boundary; Eps keeps
// their degenerate (zero-length) inner tangents present so downstream solvers
// see a connected topology.
//
// Complexity: O(1).
func Bitangents(a, b Disk) []TangentSegment {
	// 1) Coincident centers: no tangent line exists in any direction.
	D := a.Center.Distance(b.Center)
	if D < Eps {
		return nil
	}

	// 2) Bearing of the center-to-center line; all touch angles offset from it.
	theta := math.Atan2(b.Center.Y-a.Center.Y, b.Center.X-a.Center.X)

	out := make([]TangentSegment, 0, 4)

	// 3) Outer pair: same-side wrap, shared touch angle on both circles.
	//    θ−γ keeps both wraps counter-clockwise (LSL), θ+γ clockwise (RSR).
	if D >= math.Abs(a.Radius-b.Radius)-Eps {
		gamma := math.Acos(clampUnit((a.Radius - b.Radius) / D))
		out = append(out,
			newBitangent(LSL, a, b, theta-gamma, theta-gamma),
			newBitangent(RSR, a, b, theta+gamma, theta+gamma),
		)
	}

	// 4) Inner pair: crossing tangents flip the wrap direction, so the end
	//    disk is touched half a turn from the start disk's touch angle.
	if D >= a.Radius+b.Radius-Eps {
		beta := math.Acos(clampUnit((a.Radius + b.Radius) / D))
		out = append(out,
			newBitangent(LSR, a, b, theta-beta, theta-beta+math.Pi),
			newBitangent(RSL, a, b, theta+beta, theta+beta+math.Pi),
		)
	}

	return out
}

// newBitangent assembles a classified tangent segment from its touch angles.
func newBitangent(t TangentType, a, b Disk, angleA, angleB float64) TangentSegment {
	start := a.PointAt(angleA)
	end := b.PointAt(angleB)

	return TangentSegment{
		Type:        t,
		Start:       start,
		End:         end,
		Length:      start.Distance(end),
		StartDiskID: a.ID,
		EndDiskID:   b.ID,
	}
}

// PointTangent is one of the two tangent lines from a free point to a disk.
// Chirality is the wrap direction a traveler entering the disk along the
// tangent (point → touch) continues in; a traveler leaving the disk through
// the same touch point toward the same free point must be wrapping in the
// opposite direction.
type PointTangent struct {
	Point     Point     // the free endpoint
	Touch     Point     // the touch point on the disk boundary
	Angle     float64   // boundary angle of Touch on the disk
	Chirality Chirality // wrap direction entering the disk via this tangent
	Length    float64   // distance from Point to Touch
}

// PointTangents returns the two tangents from p to disk d, CCW-entering
// first. The touch angles sit at ±acos(r/dist) off the center-to-point
// bearing. Points inside or on the boundary of d (dist ≤ r + Eps) admit no
// proper tangent line and yield nil; callers routing from boundary points
// handle that case by seeding the boundary angle directly.
//
// Complexity: O(1).
func PointTangents(p Point, d Disk) []PointTangent {
	dist := p.Distance(d.Center)
	if dist <= d.Radius+Eps {
		return nil
	}

	// Touch angles offset symmetrically from the center-to-point bearing.
	bearing := math.Atan2(p.Y-d.Center.Y, p.X-d.Center.X)
	offset := math.Acos(clampUnit(d.Radius / dist))

	out := make([]PointTangent, 0, 2)
	var angle float64
	for _, angle = range [2]float64{bearing + offset, bearing - offset} {
		touch := d.PointAt(angle)
		dir := touch.Sub(p)

		// The wrap direction follows the sign of radial × travel: positive
		// means the traveler curls counter-clockwise around the center.
		ch := CW
		if touch.Sub(d.Center).Cross(dir) > 0 {
			ch = CCW
		}

		out = append(out, PointTangent{
			Point:     p,
			Touch:     touch,
			Angle:     angle,
			Chirality: ch,
			Length:    dir.Norm(),
		})
	}

	return out
}
