package layout

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	glayout "gonum.org/v1/gonum/graph/layout"

	"github.com/katalvlaran/taut/geom"
)

// FromGraph6 decodes a graph6 string, runs a force-directed layout over the
// graph and scales the node positions into a set of non-overlapping disks.
// Node i becomes disk "di" with the configured radius; the layout is scaled
// so its tightest node pair sits exactly at the spacing limit and the whole
// configuration is centered on the origin.
//
// The layout is deterministic for a fixed seed and iteration budget.
func FromGraph6(g6 string, opts ...Option) ([]geom.Disk, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// --- 1. Decode and sanity-check the graph. ---
	g := graph6.Graph(g6)
	if !graph6.IsValid(g) {
		return nil, fmt.Errorf("%w: %q", ErrBadGraph6, g6)
	}
	ids := nodeIDs(g)
	if len(ids) == 0 {
		return nil, ErrNoNodes
	}

	// --- 2. Force-directed layout with a fixed jitter seed. ---
	eades := glayout.EadesR2{
		Updates:   cfg.Iterations,
		Repulsion: 1,
		Rate:      0.05,
		Theta:     0.2,
		Src:       rand.NewSource(cfg.Seed),
	}
	optimizer := glayout.NewOptimizerR2(g, eades.Update)
	for optimizer.Update() {
	}

	coords := make([]geom.Point, len(ids))
	var i int
	for i = 0; i < len(ids); i++ {
		v := optimizer.Coord2(ids[i])
		coords[i] = geom.Point{X: v.X, Y: v.Y}
	}

	// --- 3. Scale the tightest pair onto the spacing limit. ---
	if len(coords) > 1 {
		m := minPairDistance(coords)
		if m < 1e-9 {
			return nil, fmt.Errorf("%w: nodes collapsed during layout", ErrPlacement)
		}
		scale := 2 * cfg.Radius * cfg.Spacing / m
		for i = 0; i < len(coords); i++ {
			coords[i] = coords[i].Scale(scale)
		}
	}

	// --- 4. Center on the origin and mint the disks. ---
	var centroid geom.Point
	for i = 0; i < len(coords); i++ {
		centroid = centroid.Add(coords[i])
	}
	centroid = centroid.Scale(1 / float64(len(coords)))

	disks := make([]geom.Disk, len(coords))
	for i = 0; i < len(coords); i++ {
		disks[i] = geom.Disk{
			ID:     fmt.Sprintf("d%d", i),
			Center: coords[i].Sub(centroid),
			Radius: cfg.Radius,
		}
	}

	return disks, nil
}

// nodeIDs collects the graph's node ids in ascending order.
func nodeIDs(g graph.Graph) []int64 {
	it := g.Nodes()
	n := it.Len()
	if n < 0 {
		n = 0
	}
	ids := make([]int64, 0, n)
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// minPairDistance returns the smallest center distance over all point pairs.
func minPairDistance(pts []geom.Point) float64 {
	m := math.Inf(1)
	var i, j int
	for i = 0; i < len(pts); i++ {
		for j = i + 1; j < len(pts); j++ {
			if d := pts[i].Distance(pts[j]); d < m {
				m = d
			}
		}
	}

	return m
}
