package route

import (
	"container/heap"

	"github.com/katalvlaran/taut/geom"
	"github.com/katalvlaran/taut/tangency"
)

// nodeKey identifies a search state: a disk plus the wrap direction the path
// holds while riding its boundary.
type nodeKey struct {
	disk string
	ch   geom.Chirality
}

// arrival is one tentative or settled landing on a wrap node.
type arrival struct {
	key    nodeKey
	cost   float64
	angle  float64             // boundary angle where the path lands
	via    geom.TangentSegment // tangent that landed here; zero for seeds
	seeded bool                // boundary anchor, no incoming tangent
	prev   *arrival
}

// exit is one completed candidate: a settled node plus the pieces reaching
// the goal from it.
type exit struct {
	node       *arrival
	arcTo      float64 // boundary angle where the path leaves the node's disk
	tangent    geom.TangentSegment
	hasTangent bool
	cost       float64
}

// dijkstra connects p to q around the disks, riding boundaries between
// tangent runs. Nodes are settled in cost order with a lazy-decrease-key
// heap: shorter tentative arrivals push duplicates, stale entries are
// skipped on pop.
//
// The landing angle is frozen when a node settles, so transit costs after
// ties are best-effort rather than provably optimal; the search promises a
// realizable short path, not the global optimum.
func dijkstra(p, q geom.Point, disks []geom.Disk, g *tangency.Graph, cfg Options) ([]geom.Segment, float64, error) {
	if g == nil {
		return nil, 0, ErrNoRoute
	}
	r := &runner{
		goal:    q,
		disks:   disks,
		g:       g,
		cfg:     cfg,
		dist:    make(map[nodeKey]float64, 2*len(disks)),
		settled: make(map[nodeKey]bool, 2*len(disks)),
		pq:      make(arrivalPQ, 0, 2*len(disks)),
	}
	r.seed(p)
	r.process()
	if r.best == nil {
		return nil, 0, ErrNoRoute
	}
	segs, total := r.rebuild(r.best)

	return segs, total, nil
}

// runner holds the mutable state of one search.
type runner struct {
	goal    geom.Point
	disks   []geom.Disk
	g       *tangency.Graph
	cfg     Options
	dist    map[nodeKey]float64
	settled map[nodeKey]bool
	pq      arrivalPQ
	best    *exit
}

// seed enqueues every reachable entry node. A start anchor sitting on a rim
// boards that disk in both wrap directions free of charge; all other disks
// are entered by their point tangents.
func (r *runner) seed(p geom.Point) {
	heap.Init(&r.pq)

	var (
		d  geom.Disk
		ch geom.Chirality
		pt geom.PointTangent
	)
	for _, d = range r.disks {
		if onBoundary(p, d, r.cfg.BoundaryTol) {
			angle := d.AngleOf(p)
			for _, ch = range []geom.Chirality{geom.CCW, geom.CW} {
				r.push(&arrival{
					key:    nodeKey{disk: d.ID, ch: ch},
					angle:  angle,
					seeded: true,
				})
			}
			continue
		}
		for _, pt = range geom.PointTangents(p, d) {
			if !tangentClear(p, pt.Touch, d.ID, r.disks) {
				continue
			}
			if !departsOutward(p, pt.Touch, r.disks, r.cfg.BoundaryTol) {
				continue
			}
			r.push(&arrival{
				key:   nodeKey{disk: d.ID, ch: pt.Chirality},
				cost:  pt.Length,
				angle: pt.Angle,
				via: geom.TangentSegment{
					Start:     p,
					End:       pt.Touch,
					Length:    pt.Length,
					EndDiskID: d.ID,
				},
			})
		}
	}
}

// push enqueues an arrival if it strictly improves on the best tentative
// cost for its node.
func (r *runner) push(a *arrival) {
	if have, ok := r.dist[a.key]; ok && a.cost >= have {
		return
	}
	r.dist[a.key] = a.cost
	heap.Push(&r.pq, a)
}

// process settles nodes in cost order, offering a goal completion from each
// before relaxing its transit edges. Once the cheapest open node cannot beat
// the best completion, the search stops.
func (r *runner) process() {
	var u *arrival
	for r.pq.Len() > 0 {
		u = heap.Pop(&r.pq).(*arrival)
		if r.settled[u.key] {
			continue // stale lazy entry
		}
		if r.best != nil && u.cost >= r.best.cost {
			break
		}
		r.settled[u.key] = true
		r.tryExit(u)
		r.relax(u)
	}
}

// tryExit offers the completion from a settled node: the rim arc to the goal
// when the goal sits on this disk, or an arc plus the reversing point
// tangent otherwise. Entering a disk along a tangent with one wrap direction
// means leaving through the same touch geometry with the opposite one, so
// the exit tangent is the one tagged ch.Opposite().
func (r *runner) tryExit(u *arrival) {
	d, ok := r.g.Disk(u.key.disk)
	if !ok {
		return
	}

	if onBoundary(r.goal, d, r.cfg.BoundaryTol) {
		to := d.AngleOf(r.goal)
		r.offer(&exit{
			node:  u,
			arcTo: to,
			cost:  u.cost + geom.ArcLength(d.Radius, u.angle, to, u.key.ch),
		})
		return
	}

	var pt geom.PointTangent
	for _, pt = range geom.PointTangents(r.goal, d) {
		if pt.Chirality != u.key.ch.Opposite() {
			continue
		}
		if !tangentClear(pt.Touch, r.goal, d.ID, r.disks) {
			continue
		}
		if !departsOutward(r.goal, pt.Touch, r.disks, r.cfg.BoundaryTol) {
			continue
		}
		r.offer(&exit{
			node:  u,
			arcTo: pt.Angle,
			tangent: geom.TangentSegment{
				Start:       pt.Touch,
				End:         r.goal,
				Length:      pt.Length,
				StartDiskID: d.ID,
			},
			hasTangent: true,
			cost: u.cost +
				geom.ArcLength(d.Radius, u.angle, pt.Angle, u.key.ch) +
				pt.Length,
		})
	}
}

// offer keeps the strictly cheapest completion; ties keep the first found.
func (r *runner) offer(e *exit) {
	if r.best == nil || e.cost < r.best.cost {
		r.best = e
	}
}

// relax extends a settled node along every outer tangent departing its disk
// in the node's wrap direction, charging the rim arc up to the tangent's
// departure angle plus the tangent length.
func (r *runner) relax(u *arrival) {
	d, ok := r.g.Disk(u.key.disk)
	if !ok {
		return
	}

	var e geom.TangentSegment
	for _, e = range r.g.From(u.key.disk) {
		if e.Type.Departure() != u.key.ch {
			continue
		}
		end, found := r.g.Disk(e.EndDiskID)
		if !found {
			continue
		}
		arc := geom.ArcLength(d.Radius, u.angle, d.AngleOf(e.Start), u.key.ch)
		r.push(&arrival{
			key:   nodeKey{disk: e.EndDiskID, ch: e.Type.Arrival()},
			cost:  u.cost + arc + e.Length,
			angle: end.AngleOf(e.End),
			via:   e,
			prev:  u,
		})
	}
}

// rebuild walks the predecessor chain of the winning completion and emits
// the concrete segments in travel order.
func (r *runner) rebuild(best *exit) ([]geom.Segment, float64) {
	var chain []*arrival
	var n *arrival
	for n = best.node; n != nil; n = n.prev {
		chain = append(chain, n)
	}
	var i, j int
	for i, j = 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var (
		segs  []geom.Segment
		total float64
	)
	if !chain[0].seeded {
		segs = append(segs, chain[0].via)
		total += chain[0].via.Length
	}
	var prev *arrival
	for i = 1; i < len(chain); i++ {
		prev = chain[i-1]
		d, _ := r.g.Disk(prev.key.disk)
		segs, total = addArc(segs, total, d,
			prev.angle, d.AngleOf(chain[i].via.Start), prev.key.ch, r.cfg.ArcEps)
		segs = append(segs, chain[i].via)
		total += chain[i].via.Length
	}

	last := chain[len(chain)-1]
	d, _ := r.g.Disk(last.key.disk)
	segs, total = addArc(segs, total, d, last.angle, best.arcTo, last.key.ch, r.cfg.ArcEps)
	if best.hasTangent {
		segs = append(segs, best.tangent)
		total += best.tangent.Length
	}

	return segs, total
}

// addArc appends the rim arc between two angles unless its length is within
// the degenerate threshold; the length is charged either way.
func addArc(segs []geom.Segment, total float64, d geom.Disk, from, to float64, ch geom.Chirality, arcEps float64) ([]geom.Segment, float64) {
	length := geom.ArcLength(d.Radius, from, to, ch)
	if length > arcEps {
		segs = append(segs, geom.ArcSegment{
			DiskID:     d.ID,
			Center:     d.Center,
			Radius:     d.Radius,
			StartAngle: from,
			EndAngle:   to,
			Chirality:  ch,
			Length:     length,
		})
	}

	return segs, total + length
}

// arrivalPQ is a min-heap of *arrival ordered by cost, used with the lazy
// decrease-key pattern: improved arrivals push duplicates, outdated entries
// are ignored when popped.
type arrivalPQ []*arrival

// Len returns the number of items in the heap.
func (pq arrivalPQ) Len() int { return len(pq) }

// Less orders by cost ascending.
func (pq arrivalPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq arrivalPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *arrival.
func (pq *arrivalPQ) Push(x interface{}) { *pq = append(*pq, x.(*arrival)) }

// Pop removes and returns the smallest element.
func (pq *arrivalPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
