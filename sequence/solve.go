package sequence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/tangency"
)

// FindPath computes the shortest envelope that visits the graph's disks in
// exactly the given order. The result alternates tangent runs and boundary
// arcs; with WithClosed the chain loops back onto its own start.
//
// Without pinned chiralities only outer tangents are considered, so both
// candidate envelopes keep a uniform wrap direction end to end. Pinning the
// chiralities switches to a direct per-hop lookup that can also use inner
// tangents; if a pinned hop no longer exists in the graph, FindPath falls
// back to the free search.
func FindPath(g *tangency.Graph, seq []string, opts ...Option) (Result, error) {
	// --- 1. Apply options ---
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// --- 2. Validate the graph and the sequence ---
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if len(seq) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrShortSequence, len(seq))
	}
	disks := make([]geom.Disk, len(seq))
	var (
		i  int
		id string
		ok bool
	)
	for i, id = range seq {
		disks[i], ok = g.Disk(id)
		if !ok {
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownDisk, id)
		}
		if i > 0 && seq[i-1] == id {
			return Result{}, fmt.Errorf("%w: %q", ErrRepeatedDisk, id)
		}
	}
	if cfg.Closed && seq[0] == seq[len(seq)-1] {
		return Result{}, fmt.Errorf("%w: %q closes onto itself", ErrRepeatedDisk, seq[0])
	}
	if len(cfg.Chiralities) != 0 && len(cfg.Chiralities) != len(seq) {
		return Result{}, fmt.Errorf("%w: %d chiralities for %d disks",
			ErrChiralityCount, len(cfg.Chiralities), len(seq))
	}

	// --- 3. Pinned wrap directions: direct lookup, free fallback when stale ---
	if len(cfg.Chiralities) > 0 {
		if res, solved := solvePinned(g, disks, cfg.Chiralities, cfg); solved {
			return res, nil
		}
	}

	// --- 4. Free search over wrap directions ---
	return solveFree(g, disks, cfg)
}

// solveFree evaluates both uniform-chirality chains and keeps the shorter.
// Outer tangents carry the wrap direction across each hop unchanged, so the
// (step, chirality) state space splits into two independent chains; a chain
// dies as soon as one of its hops has no surviving outer tangent.
func solveFree(g *tangency.Graph, disks []geom.Disk, cfg Options) (Result, error) {
	var (
		best    Result
		bestLen = math.Inf(1)
		c       geom.Chirality
	)
	for _, c = range []geom.Chirality{geom.CCW, geom.CW} {
		edges, alive := chainEdges(g, disks, c, cfg.Closed)
		if !alive {
			continue
		}
		chir := make([]geom.Chirality, len(disks))
		var i int
		for i = range chir {
			chir[i] = c
		}
		path, total := assemble(disks, edges, chir, cfg.Closed, cfg.ArcEps)
		if total < bestLen {
			bestLen = total
			best = Result{Path: path, Chiralities: chir, Length: round1e9(total)}
		}
	}
	if math.IsInf(bestLen, 1) {
		return Result{}, ErrNoPath
	}
	return best, nil
}

// chainEdges collects the outer tangent of the given chirality for every hop
// of the sequence, including the closing hop when closed. Reports false if
// any hop is missing from the graph.
func chainEdges(g *tangency.Graph, disks []geom.Disk, c geom.Chirality, closed bool) ([]geom.TangentSegment, bool) {
	want := geom.LSL
	if c == geom.CW {
		want = geom.RSR
	}
	hops := len(disks) - 1
	if closed {
		hops = len(disks)
	}
	edges := make([]geom.TangentSegment, 0, hops)
	var k int
	for k = 0; k < hops; k++ {
		edge, ok := findEdge(g, disks[k].ID, disks[(k+1)%len(disks)].ID, want)
		if !ok {
			return nil, false
		}
		edges = append(edges, edge)
	}
	return edges, true
}

// solvePinned resolves every hop to the tangent type the pinned wrap
// directions dictate. Reports false when any hop has no surviving edge of
// that type, signalling the caller to fall back to the free search.
func solvePinned(g *tangency.Graph, disks []geom.Disk, chir []geom.Chirality, cfg Options) (Result, bool) {
	n := len(disks)
	hops := n - 1
	if cfg.Closed {
		hops = n
	}
	edges := make([]geom.TangentSegment, 0, hops)
	var k int
	for k = 0; k < hops; k++ {
		next := (k + 1) % n
		want := geom.TangentType(chir[k].String() + "S" + chir[next].String())
		edge, ok := findEdge(g, disks[k].ID, disks[next].ID, want)
		if !ok {
			return Result{}, false
		}
		edges = append(edges, edge)
	}
	path, total := assemble(disks, edges, chir, cfg.Closed, cfg.ArcEps)
	out := Result{
		Path:        path,
		Chiralities: append([]geom.Chirality(nil), chir...),
		Length:      round1e9(total),
	}
	return out, true
}

// findEdge returns the first surviving tangent of the wanted type between
// two disks, in construction order.
func findEdge(g *tangency.Graph, fromID, toID string, want geom.TangentType) (geom.TangentSegment, bool) {
	var e geom.TangentSegment
	for _, e = range g.Between(fromID, toID) {
		if e.Type == want {
			return e, true
		}
	}
	return geom.TangentSegment{}, false
}

// assemble interleaves the hop tangents with the boundary arcs that connect
// them: before each tangent after the first, the arc on the shared disk from
// the previous landing angle to the next departure angle, strictly in that
// disk's wrap direction. Closed chains additionally emit the seam arc on the
// first disk. Degenerate arcs are charged but omitted from the path.
func assemble(disks []geom.Disk, edges []geom.TangentSegment, chir []geom.Chirality, closed bool, arcEps float64) ([]geom.Segment, float64) {
	path := make([]geom.Segment, 0, 2*len(edges))
	var (
		total  float64
		arcLen float64
		k      int
	)
	for k = 0; k < len(edges); k++ {
		if k > 0 {
			path, arcLen = appendArc(path, disks[k],
				disks[k].AngleOf(edges[k-1].End),
				disks[k].AngleOf(edges[k].Start),
				chir[k], arcEps)
			total += arcLen
		}
		path = append(path, edges[k])
		total += edges[k].Length
	}
	if closed {
		last := edges[len(edges)-1]
		path, arcLen = appendArc(path, disks[0],
			disks[0].AngleOf(last.End),
			disks[0].AngleOf(edges[0].Start),
			chir[0], arcEps)
		total += arcLen
	}
	return path, total
}

// appendArc appends the boundary arc between two angles unless its length is
// within the degenerate threshold. The length is returned either way.
func appendArc(path []geom.Segment, d geom.Disk, from, to float64, c geom.Chirality, arcEps float64) ([]geom.Segment, float64) {
	length := geom.ArcLength(d.Radius, from, to, c)
	if length > arcEps {
		path = append(path, geom.ArcSegment{
			DiskID:     d.ID,
			Center:     d.Center,
			Radius:     d.Radius,
			StartAngle: from,
			EndAngle:   to,
			Chirality:  c,
			Length:     length,
		})
	}
	return path, length
}

// roundScale pins reported lengths to 1e-9 so serialized results are
// byte-stable across platforms.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
