// Package tangency — graph construction.
package tangency

import (
	"fmt"

	"github.com/katalvlaran/taut/geom"
)

// Build constructs the tangency graph for a disk layout.
//
// For every ordered pair of distinct disks it computes the common tangents
// (geom.Bitangents), optionally restricts them to the outer pair, and, with
// collision checks enabled, discards every candidate that cuts through a
// disk other than its own two endpoints or crosses an obstacle wall.
//
// Validation (in order):
//  1. The disk list must be non-empty (ErrNoDisks).
//  2. Every radius must be positive (ErrNonPositiveRadius).
//  3. Disk ids must be unique (ErrDuplicateDiskID).
//
// The input slice is copied; later mutation of the caller's disks does not
// affect the graph.
//
// Complexity: O(n³ + n²·m) worst case for n disks and m obstacle walls.
func Build(disks []geom.Disk, opts ...Option) (*Graph, error) {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the disk list.
	if len(disks) == 0 {
		return nil, ErrNoDisks
	}

	g := &Graph{
		disks:  make([]geom.Disk, len(disks)),
		byID:   make(map[string]geom.Disk, len(disks)),
		byPair: make(map[pairKey][]int),
		byFrom: make(map[string][]int),
	}
	copy(g.disks, disks)

	var d geom.Disk
	for _, d = range g.disks {
		if d.Radius <= 0 {
			return nil, fmt.Errorf("%w: disk %q has radius %v", ErrNonPositiveRadius, d.ID, d.Radius)
		}
		if _, dup := g.byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDiskID, d.ID)
		}
		g.byID[d.ID] = d
	}

	// 3) Enumerate ordered pairs in input order; the per-pair tangent order
	//    comes from geom.Bitangents. Both give the graph a stable edge order.
	var i, j int
	for i = 0; i < len(g.disks); i++ {
		for j = 0; j < len(g.disks); j++ {
			if i == j {
				continue
			}

			var t geom.TangentSegment
			for _, t = range geom.Bitangents(g.disks[i], g.disks[j]) {
				if cfg.OuterOnly && !t.Type.Outer() {
					continue
				}
				if cfg.CheckCollisions && blocked(t, g.disks, i, j, cfg.Obstacles) {
					continue
				}

				idx := len(g.Edges)
				g.Edges = append(g.Edges, t)
				key := pairKey{from: t.StartDiskID, to: t.EndDiskID}
				g.byPair[key] = append(g.byPair[key], idx)
				g.byFrom[t.StartDiskID] = append(g.byFrom[t.StartDiskID], idx)
			}
		}
	}

	return g, nil
}

// blocked reports whether a candidate tangent cuts through any disk other
// than its two endpoint disks (indices i, j) or crosses an obstacle wall.
func blocked(t geom.TangentSegment, disks []geom.Disk, i, j int, walls []Obstacle) bool {
	var k int
	for k = range disks {
		if k == i || k == j {
			continue
		}
		if geom.IntersectsDisk(t.Start, t.End, disks[k]) {
			return true
		}
	}

	var w Obstacle
	for _, w = range walls {
		if geom.SegmentsIntersect(t.Start, t.End, w.A, w.B) {
			return true
		}
	}

	return false
}
