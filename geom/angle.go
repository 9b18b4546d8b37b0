// Package geom — angle arithmetic for directed arcs.
//
// The arc functions here never pick the shorter way around a circle. A wrap
// direction is always supplied by the caller, and the angular extent follows
// from it alone. This is what lets an envelope hug almost a full disk
// boundary when its tangent touch points land close together.
package geom

import "math"

const twoPi = 2 * math.Pi

// angleSnap collapses angular deltas indistinguishable from coincident
// angles at double precision. Exact tangent constructions produce touch
// angles that differ from pose angles by a few ulps; reading that noise as
// a full 2π wrap would charge an entire extra turn.
const angleSnap = 1e-12

// NormalizeAngle maps an angle to [-π, π).
//
// Complexity: O(1).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle+math.Pi, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a - math.Pi
}

// CCWDelta returns the counter-clockwise angular distance from one boundary
// angle to another, in [0, 2π). Equal angles yield 0, never 2π; deltas
// within angleSnap of 0 or of a full turn also collapse to 0, so rounding
// noise on coincident angles never reads as "wrap the whole circle".
//
// Complexity: O(1).
func CCWDelta(from, to float64) float64 {
	d := math.Mod(to-from, twoPi)
	if d < 0 {
		d += twoPi
	}
	if d < angleSnap || d > twoPi-angleSnap {
		return 0
	}
	return d
}

// ArcLength returns the length of the directed arc of radius r from angle
// `from` to angle `to`, traveled in the given wrap direction. The result is
// always ≥ 0: a CW request between angles that are CCW-close simply measures
// the long way around.
//
// Degenerate cases:
//   - from == to (mod 2π) yields 0, never a full turn.
//   - to approaching from against the travel direction approaches 2πr.
//
// Complexity: O(1).
func ArcLength(r, from, to float64, c Chirality) float64 {
	if c == CCW {
		return r * CCWDelta(from, to)
	}
	return r * CCWDelta(to, from)
}

// PointOnCircle returns the point at the given boundary angle of the circle
// centered at c with radius r.
//
// Complexity: O(1).
func PointOnCircle(c Point, r, angle float64) Point {
	return Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

// clampUnit clips x to [-1, 1] so acos/asin arguments perturbed by rounding
// never produce NaN.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
