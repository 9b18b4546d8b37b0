// Package route connects free anchor points through a field of disk
// obstacles with a taut chain of straight runs and boundary arcs.
//
// Overview:
//
//   - Each consecutive anchor pair is routed independently. An unobstructed
//     pair costs a single straight run; a pair sharing one disk's boundary
//     follows the shorter rim arc, never the chord through the interior.
//   - Blocked pairs fall back to a Dijkstra search whose nodes are
//     (disk, wrap direction) pairs. The field is entered along point-to-disk
//     tangents (two per disk, one per wrap direction), crossed along outer
//     tangency-graph edges, and left along the point tangent that reverses
//     the wrap, or along a final rim arc when the goal itself sits on a
//     boundary.
//   - Transit cost is the wrap-consistent rim arc on the departure disk plus
//     the tangent length. The landing angle freezes when a node settles, so
//     the result is a realizable short path, not a provably optimal one.
//   - Anchors may sit exactly on disk boundaries. Such anchors board their
//     disk in both wrap directions at no cost, and any straight run leaving
//     them must point outward: the dot product of the rim's outward normal
//     with the run direction must be ≥ -1e-9, which admits exactly
//     tangential departures and rejects chords cutting back into the disk.
//
// Options:
//
//   - WithArcEpsilon(eps)        – drop rim arcs shorter than eps (default
//     geom.DefaultArcEps).
//   - WithBoundaryTolerance(tol) – distance within which an anchor counts as
//     on a rim (default 1e-6).
//
// Errors (sentinel):
//
//   - ErrTooFewAnchors     if fewer than two anchors are given.
//   - ErrAnchorInsideDisk  if an anchor is strictly inside an obstacle.
//   - ErrNoRoute           if a pair cannot be connected; the wrapped error
//     names the anchor indices.
//
// Complexity: building the transit graph is O(n³) over n disks; each blocked
// pair then costs O(n² log n) for the search over 2n wrap nodes.
package route
