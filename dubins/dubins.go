// Package dubins — the six-word path constructions.
package dubins

import (
	"math"

	"github.com/katalvlaran/taut/geom"
)

// MinimalPath returns the shortest valid Dubins path from start to end.
//
// All six words are evaluated in the fixed order LSL, RSR, LSR, RSL, LRL,
// RLR; a later word replaces the best only when strictly shorter, so ties
// resolve deterministically in favor of the earlier word. When no word is
// valid for the configuration, the straight connector between the two
// positions is returned (Type Straight, Valid=true) so the caller always
// receives a drawable path.
//
// Complexity: O(1).
func MinimalPath(start, end Pose, opts ...Option) Path {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Evaluate the six words, keeping the first strictly shortest.
	best := invalidPath(Straight, start, end)
	var w PathType
	for _, w = range words {
		p := computeWord(w, start, end, cfg.MinRadius)
		if p.Valid && p.TotalLength < best.TotalLength {
			best = p
		}
	}

	// 3) Straight-line fallback when the word system has no answer.
	if !best.Valid {
		return straightPath(start, end)
	}

	return best
}

// AllPaths returns all six word candidates in the fixed evaluation order.
// Invalid words report Valid=false with TotalLength=+Inf; the slice always
// has exactly six entries.
//
// Complexity: O(1).
func AllPaths(start, end Pose, opts ...Option) []Path {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	out := make([]Path, 0, len(words))
	var w PathType
	for _, w = range words {
		out = append(out, computeWord(w, start, end, cfg.MinRadius))
	}

	return out
}

// computeWord dispatches a single word to its construction.
func computeWord(t PathType, start, end Pose, r float64) Path {
	if t == LRL || t == RLR {
		return cccPath(t, start, end, r)
	}
	return cscPath(t, start, end, r)
}

// turningCenter returns the center of the pose's turning circle for the
// given turn direction. The circle passes through the pose position and is
// tangent to the heading there: a CCW circle sits to the left of the
// heading, a CW circle to the right.
func turningCenter(p Pose, c geom.Chirality, r float64) geom.Point {
	if c == geom.CCW {
		return geom.Point{X: p.X - r*math.Sin(p.Theta), Y: p.Y + r*math.Cos(p.Theta)}
	}
	return geom.Point{X: p.X + r*math.Sin(p.Theta), Y: p.Y - r*math.Cos(p.Theta)}
}

// cscPath builds an arc–straight–arc word. The straight run is the common
// tangent of the two turning circles whose classification matches the word,
// so wrap directions line up at both touch points and the junctions stay
// tangent-continuous.
//
// Validity requires the circle centers to be at least 2r apart (with
// tolerance); closer configurations belong to the CCC words.
func cscPath(t PathType, start, end Pose, r float64) Path {
	dep := geom.Chirality(t[0])
	arr := geom.Chirality(t[2])

	// 1) Turning circles of the two poses.
	d1 := geom.Disk{Center: turningCenter(start, dep, r), Radius: r}
	d2 := geom.Disk{Center: turningCenter(end, arr, r), Radius: r}
	if d1.Center.Distance(d2.Center) < 2*r-geom.Eps {
		return invalidPath(t, start, end)
	}

	// 2) The word names exactly one of the four classified bitangents.
	var tangent geom.TangentSegment
	found := false
	var cand geom.TangentSegment
	for _, cand = range geom.Bitangents(d1, d2) {
		if cand.Type == geom.TangentType(t) {
			tangent = cand
			found = true
			break
		}
	}
	if !found {
		return invalidPath(t, start, end)
	}

	// 3) Arc from the start pose to the departure touch point, and from the
	//    arrival touch point to the end pose, each in its word direction.
	phi0 := d1.AngleOf(start.Point())
	a1 := d1.AngleOf(tangent.Start)
	arc1 := geom.ArcLength(r, phi0, a1, dep)

	a2 := d2.AngleOf(tangent.End)
	phi1 := d2.AngleOf(end.Point())
	arc2 := geom.ArcLength(r, a2, phi1, arr)

	// 4) Assemble, dropping degenerate runs but charging their length.
	segs := make([]geom.Segment, 0, 3)
	if arc1 > geom.DefaultArcEps {
		segs = append(segs, geom.ArcSegment{
			Center: d1.Center, Radius: r,
			StartAngle: phi0, EndAngle: a1,
			Chirality: dep, Length: arc1,
		})
	}
	if tangent.Length > geom.DefaultArcEps {
		segs = append(segs, geom.TangentSegment{
			Type:   tangent.Type,
			Start:  tangent.Start,
			End:    tangent.End,
			Length: tangent.Length,
		})
	}
	if arc2 > geom.DefaultArcEps {
		segs = append(segs, geom.ArcSegment{
			Center: d2.Center, Radius: r,
			StartAngle: a2, EndAngle: phi1,
			Chirality: arr, Length: arc2,
		})
	}

	return Path{
		Type:        t,
		Segments:    segs,
		TotalLength: arc1 + tangent.Length + arc2,
		Valid:       true,
		Start:       start,
		End:         end,
	}
}

// cccPath builds an arc–arc–arc word: a middle circle of the opposite turn
// direction externally tangent to both endpoint turning circles. The middle
// center sits at 2r from both endpoints' centers, rotated α = acos(D/4r)
// off the center-to-center bearing; both sides are tried and the shorter
// valid one kept.
//
// Validity requires the endpoint circle centers to be at most 4r apart and
// not coincident.
func cccPath(t PathType, start, end Pose, r float64) Path {
	outerDir := geom.Chirality(t[0])
	midDir := geom.Chirality(t[1])

	c1 := turningCenter(start, outerDir, r)
	c2 := turningCenter(end, outerDir, r)
	D := c1.Distance(c2)
	if D < geom.Eps || D > 4*r+geom.Eps {
		return invalidPath(t, start, end)
	}

	bearing := math.Atan2(c2.Y-c1.Y, c2.X-c1.X)
	alpha := math.Acos(clampUnit(D / (4 * r)))

	best := invalidPath(t, start, end)
	var side float64
	for _, side = range [2]float64{alpha, -alpha} {
		c3 := geom.PointOnCircle(c1, 2*r, bearing+side)
		cand := cccAssemble(t, start, end, r, c1, c2, c3, outerDir, midDir)
		if cand.TotalLength < best.TotalLength {
			best = cand
		}
	}

	return best
}

// cccAssemble measures the three arcs of a CCC candidate for one middle
// circle placement. Touch points are the midpoints of the center pairs; the
// opposite wrap direction of the middle circle makes the junction velocities
// agree without any extra alignment step.
func cccAssemble(t PathType, start, end Pose, r float64, c1, c2, c3 geom.Point, outerDir, midDir geom.Chirality) Path {
	phi0 := math.Atan2(start.Y-c1.Y, start.X-c1.X)
	a1 := math.Atan2(c3.Y-c1.Y, c3.X-c1.X)
	arc1 := geom.ArcLength(r, phi0, a1, outerDir)

	m1 := math.Atan2(c1.Y-c3.Y, c1.X-c3.X)
	m2 := math.Atan2(c2.Y-c3.Y, c2.X-c3.X)
	arcMid := geom.ArcLength(r, m1, m2, midDir)

	a2 := math.Atan2(c3.Y-c2.Y, c3.X-c2.X)
	phi1 := math.Atan2(end.Y-c2.Y, end.X-c2.X)
	arc2 := geom.ArcLength(r, a2, phi1, outerDir)

	segs := make([]geom.Segment, 0, 3)
	if arc1 > geom.DefaultArcEps {
		segs = append(segs, geom.ArcSegment{
			Center: c1, Radius: r,
			StartAngle: phi0, EndAngle: a1,
			Chirality: outerDir, Length: arc1,
		})
	}
	if arcMid > geom.DefaultArcEps {
		segs = append(segs, geom.ArcSegment{
			Center: c3, Radius: r,
			StartAngle: m1, EndAngle: m2,
			Chirality: midDir, Length: arcMid,
		})
	}
	if arc2 > geom.DefaultArcEps {
		segs = append(segs, geom.ArcSegment{
			Center: c2, Radius: r,
			StartAngle: a2, EndAngle: phi1,
			Chirality: outerDir, Length: arc2,
		})
	}

	return Path{
		Type:        t,
		Segments:    segs,
		TotalLength: arc1 + arcMid + arc2,
		Valid:       true,
		Start:       start,
		End:         end,
	}
}

// straightPath is the fallback connector between two positions.
func straightPath(start, end Pose) Path {
	length := start.Point().Distance(end.Point())

	var segs []geom.Segment
	if length > geom.DefaultArcEps {
		segs = []geom.Segment{geom.TangentSegment{
			Start:  start.Point(),
			End:    end.Point(),
			Length: length,
		}}
	}

	return Path{
		Type:        Straight,
		Segments:    segs,
		TotalLength: length,
		Valid:       true,
		Start:       start,
		End:         end,
	}
}

// clampUnit clips acos arguments perturbed by rounding into [-1, 1].
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
