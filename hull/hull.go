package hull

import (
	"fmt"
	"math"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/sequence"
	"github.com/katalvlaran/taut/tangency"
)

// hullTol is the slack granted to third disks in the all-on-the-left test,
// so colinear and mutually tangent configurations stay on the hull.
const hullTol = 1e-7

const roundScale = 1e9

// Hull computes the convex closure of the disk set: the disks whose
// boundaries touch the hull of the union, in counter-clockwise order, plus
// the closed envelope wrapped around all of them.
//
// The hull is found by gift wrapping with tangent lines: starting at the
// bottom of the lowest disk, the walk repeatedly takes the outgoing tangent
// that departs first along the current rim and keeps every disk on its left.
// Disks swallowed by others never surface in the walk.
func Hull(disks []geom.Disk, opts ...Option) (Result, error) {
	if len(disks) == 0 {
		return Result{}, ErrNoDisks
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Build validates ids and radii and serves the envelope solve below.
	g, err := tangency.Build(disks)
	if err != nil {
		return Result{}, fmt.Errorf("hull: %w", err)
	}
	if len(disks) == 1 {
		return singleDisk(disks[0], 0), nil
	}

	// --- 1. Gift-wrap the disk set. ---
	start := lowest(disks)
	order, err := wrap(disks, start)
	if err != nil {
		return Result{}, err
	}
	if len(order) == 1 {
		// Every other disk is swallowed by the lowest one.
		return singleDisk(disks[start], start), nil
	}

	// --- 2. Solve the closed all-counter-clockwise envelope over the order. ---
	seq := make([]string, len(order))
	chir := make([]geom.Chirality, len(order))
	var i int
	for i = 0; i < len(order); i++ {
		seq[i] = disks[order[i]].ID
		chir[i] = geom.CCW
	}
	res, err := sequence.FindPath(g, seq,
		sequence.WithClosed(),
		sequence.WithChiralities(chir...),
		sequence.WithArcEpsilon(cfg.ArcEps))
	if err != nil {
		return Result{}, fmt.Errorf("hull: %w", err)
	}

	return Result{
		Sequence:    seq,
		HullIndices: order,
		Path:        res.Path,
		Perimeter:   res.Length,
	}, nil
}

// wrap walks the hull tangents counter-clockwise from the bottom of the
// start disk and returns the visited input indices in order.
func wrap(disks []geom.Disk, start int) ([]int, error) {
	order := []int{start}

	cur := start
	curAngle := -math.Pi / 2
	firstTo := -1
	var firstDep float64

	// A disk can surface at most once per other disk, so 2n hops is already
	// generous; beyond that the geometry is numerically broken.
	limit := 2*len(disks) + 4
	var step int
	for step = 0; step < limit; step++ {
		to, t, ok := nextTangent(disks, cur, curAngle)
		if !ok {
			if cur == start && len(order) == 1 {
				return order, nil
			}
			return nil, ErrDegenerate
		}

		dep := disks[cur].AngleOf(t.Start)
		if firstTo < 0 {
			firstTo, firstDep = to, dep
		} else if cur == start && to == firstTo && math.Abs(geom.NormalizeAngle(dep-firstDep)) < 1e-9 {
			// Back at the opening tangent: drop the re-appended start and
			// the cycle is closed.
			return order[:len(order)-1], nil
		}

		order = append(order, to)
		curAngle = disks[to].AngleOf(t.End)
		cur = to
	}

	return nil, ErrDegenerate
}

// nextTangent picks the hull tangent leaving cur first along the rim when
// rolling counter-clockwise from fromAngle. Candidates must keep every disk
// on their left.
func nextTangent(disks []geom.Disk, cur int, fromAngle float64) (int, geom.TangentSegment, bool) {
	bestTo := -1
	bestDelta := math.Inf(1)
	var bestT geom.TangentSegment

	var j int
	for j = 0; j < len(disks); j++ {
		if j == cur {
			continue
		}
		t, ok := leftTangent(disks[cur], disks[j])
		if !ok || !allLeft(disks, cur, j, t) {
			continue
		}
		delta := geom.CCWDelta(fromAngle, disks[cur].AngleOf(t.Start))
		better := delta < bestDelta-1e-12
		if !better && math.Abs(delta-bestDelta) <= 1e-12 && t.Length < bestT.Length-1e-12 {
			// Colinear departures: hop to the nearest disk so grazing
			// contacts surface in the walk instead of being skipped.
			better = true
		}
		if better {
			bestTo, bestDelta, bestT = j, delta, t
		}
	}
	if bestTo < 0 {
		return 0, geom.TangentSegment{}, false
	}

	return bestTo, bestT, true
}

// leftTangent returns the counter-clockwise outer tangent from a to b.
func leftTangent(a, b geom.Disk) (geom.TangentSegment, bool) {
	var t geom.TangentSegment
	for _, t = range geom.Bitangents(a, b) {
		if t.Type == geom.LSL {
			if t.Length < geom.Eps {
				// Internal tangency: the smaller disk never reaches the hull.
				return geom.TangentSegment{}, false
			}
			return t, true
		}
	}

	return geom.TangentSegment{}, false
}

// allLeft reports whether every disk other than i and j stays entirely on
// the left of the directed tangent t.
func allLeft(disks []geom.Disk, i, j int, t geom.TangentSegment) bool {
	u := t.End.Sub(t.Start).Scale(1 / t.Length)
	n := geom.Point{X: -u.Y, Y: u.X}

	var k int
	for k = 0; k < len(disks); k++ {
		if k == i || k == j {
			continue
		}
		if disks[k].Center.Sub(t.Start).Dot(n) < disks[k].Radius-hullTol {
			return false
		}
	}

	return true
}

// lowest returns the index of the disk with the lowest boundary point,
// breaking ties toward the smaller center X and then the input order.
func lowest(disks []geom.Disk) int {
	best := 0
	var i int
	for i = 1; i < len(disks); i++ {
		bi := disks[i].Center.Y - disks[i].Radius
		bb := disks[best].Center.Y - disks[best].Radius
		if bi < bb || (bi == bb && disks[i].Center.X < disks[best].Center.X) {
			best = i
		}
	}

	return best
}

// singleDisk is the one-disk hull: the full rim split into two half turns.
func singleDisk(d geom.Disk, idx int) Result {
	half := math.Pi * d.Radius
	arc := func(from, to float64) geom.ArcSegment {
		return geom.ArcSegment{
			DiskID:     d.ID,
			Center:     d.Center,
			Radius:     d.Radius,
			StartAngle: from,
			EndAngle:   to,
			Chirality:  geom.CCW,
			Length:     half,
		}
	}

	return Result{
		Sequence:    []string{d.ID},
		HullIndices: []int{idx},
		Path:        []geom.Segment{arc(-math.Pi/2, math.Pi/2), arc(math.Pi/2, -math.Pi/2)},
		Perimeter:   math.Round(2*half*roundScale) / roundScale,
	}
}
