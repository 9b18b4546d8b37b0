package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/tangency"
)

// FindPathFromPoints routes a chain of anchor points through a field of disk
// obstacles. Each consecutive anchor pair is connected independently and the
// legs are concatenated:
//
//   - both anchors on the same disk boundary: the shorter boundary arc,
//     never the chord through the interior;
//   - unobstructed pairs: a single straight run;
//   - everything else: a Dijkstra search over (disk, wrap direction) nodes,
//     entering the field by point tangents, moving between disks along outer
//     tangency-graph edges, and leaving by a point tangent to the goal or by
//     a final arc when the goal sits on a disk boundary.
//
// Anchors may lie exactly on disk boundaries; straight runs departing such an
// anchor must point outward (tangential departures pass). Anchors strictly
// inside a disk are rejected. The search is best-effort shortest: transit
// costs charge the wrap-consistent arc on the departure disk plus the tangent
// length.
func FindPathFromPoints(anchors []geom.Point, obstacles []geom.Disk, opts ...Option) (Result, error) {
	// --- 1. Apply options ---
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// --- 2. Validate anchors ---
	if len(anchors) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewAnchors, len(anchors))
	}
	var (
		i int
		p geom.Point
		d geom.Disk
	)
	for i, p = range anchors {
		for _, d = range obstacles {
			if d.Contains(p, cfg.BoundaryTol) {
				return Result{}, fmt.Errorf("%w: anchor %d in disk %q", ErrAnchorInsideDisk, i, d.ID)
			}
		}
	}

	// --- 3. Build the transit graph once, shared by every leg.
	//     Transit is outer tangents only: inner tangents flip the wrap
	//     direction mid-field ---
	var g *tangency.Graph
	if len(obstacles) > 0 {
		var err error
		g, err = tangency.Build(obstacles, tangency.WithOuterOnly())
		if err != nil {
			return Result{}, fmt.Errorf("route: %w", err)
		}
	}

	// --- 4. Route every consecutive pair ---
	var (
		path  []geom.Segment
		total float64
	)
	for i = 0; i+1 < len(anchors); i++ {
		legs, legLen, err := solvePair(anchors[i], anchors[i+1], obstacles, g, cfg)
		if err != nil {
			return Result{}, fmt.Errorf("%w (anchors %d-%d)", err, i, i+1)
		}
		path = append(path, legs...)
		total += legLen
	}

	return Result{Path: path, Length: round1e9(total)}, nil
}

// solvePair connects one anchor pair, trying the cheap constructions before
// falling back to the graph search.
func solvePair(p, q geom.Point, disks []geom.Disk, g *tangency.Graph, cfg Options) ([]geom.Segment, float64, error) {
	// 1) Both anchors on one disk's boundary: the envelope follows the rim.
	var d geom.Disk
	for _, d = range disks {
		if onBoundary(p, d, cfg.BoundaryTol) && onBoundary(q, d, cfg.BoundaryTol) {
			return boundaryArc(p, q, d, cfg.ArcEps)
		}
	}

	// 2) Straight shot if nothing blocks it and boundary anchors depart
	//    outward.
	if straightClear(p, q, disks, cfg.BoundaryTol) {
		run := geom.TangentSegment{Start: p, End: q, Length: p.Distance(q)}
		return []geom.Segment{run}, run.Length, nil
	}

	// 3) Graph search around the obstacles.
	return dijkstra(p, q, disks, g, cfg)
}

// boundaryArc emits the shorter rim arc between two boundary points of one
// disk. Counter-clockwise wins exact half-turn ties.
func boundaryArc(p, q geom.Point, d geom.Disk, arcEps float64) ([]geom.Segment, float64, error) {
	from := d.AngleOf(p)
	to := d.AngleOf(q)

	ch := geom.CCW
	if geom.CCWDelta(from, to) > math.Pi {
		ch = geom.CW
	}
	length := geom.ArcLength(d.Radius, from, to, ch)
	if length <= arcEps {
		return nil, 0, nil
	}
	arc := geom.ArcSegment{
		DiskID:     d.ID,
		Center:     d.Center,
		Radius:     d.Radius,
		StartAngle: from,
		EndAngle:   to,
		Chirality:  ch,
		Length:     length,
	}

	return []geom.Segment{arc}, length, nil
}

// straightClear reports whether the run p→q misses every disk interior and
// departs outward from any boundary the endpoints sit on.
func straightClear(p, q geom.Point, disks []geom.Disk, boundaryTol float64) bool {
	var d geom.Disk
	for _, d = range disks {
		if geom.IntersectsDisk(p, q, d) {
			return false
		}
	}
	return departsOutward(p, q, disks, boundaryTol) &&
		departsOutward(q, p, disks, boundaryTol)
}

// departsOutward checks the chord direction against the outward normal of
// every disk whose boundary the anchor sits on. Tangential departures pass;
// directions cutting back into the disk do not.
func departsOutward(anchor, toward geom.Point, disks []geom.Disk, boundaryTol float64) bool {
	away := toward.Sub(anchor)
	norm := away.Norm()
	if norm < geom.Eps {
		return true
	}
	away = away.Scale(1 / norm)

	var d geom.Disk
	for _, d = range disks {
		if !onBoundary(anchor, d, boundaryTol) {
			continue
		}
		outward := anchor.Sub(d.Center).Scale(1 / d.Radius)
		if outward.Dot(away) < -departEps {
			return false
		}
	}

	return true
}

// onBoundary reports whether p sits on d's rim within tol.
func onBoundary(p geom.Point, d geom.Disk, tol float64) bool {
	return math.Abs(p.Distance(d.Center)-d.Radius) <= tol
}

// tangentClear reports whether a tangent run misses every disk interior
// except the disk it touches.
func tangentClear(a, b geom.Point, touchedID string, disks []geom.Disk) bool {
	var d geom.Disk
	for _, d = range disks {
		if d.ID == touchedID {
			continue
		}
		if geom.IntersectsDisk(a, b, d) {
			return false
		}
	}

	return true
}

// departEps tolerates exactly tangential departures from a boundary anchor.
const departEps = 1e-9

// roundScale pins reported lengths to 1e-9 so serialized results are
// byte-stable across platforms.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
