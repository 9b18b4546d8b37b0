// Package tangency builds the tangency graph: the universe of physically
// possible single-hop tangent connections between disks in a layout.
//
// Overview:
//
//   - Nodes are disks; edges are common tangent segments that survive
//     collision filtering against every other disk (and optional obstacle
//     walls) in the configuration.
//   - For every ordered disk pair both directions are computed, so an edge
//     from a to b and its reverse from b to a are distinct entries; solvers
//     pick the direction they travel.
//   - The graph has no notion of a desired visitation order. It answers one
//     question only: which straight hops are physically available right now.
//
// When to use:
//
//   - As the input to the sequence solver (fixed visitation order) and the
//     point-to-point router, which both consume Between/From lookups.
//   - Rebuild the graph from scratch whenever any disk moves or resizes.
//     Construction is a pure function of its inputs; there is no incremental
//     update and no hidden cache.
//
// Options:
//
//   - WithoutCollisionChecks: keep every geometric tangent, even those that
//     cut through third disks. Useful for diagnostics and for callers that
//     filter later.
//   - WithOuterOnly: keep only LSL/RSR tangents, forbidding the crossing
//     "star" topologies inner tangents introduce.
//   - WithObstacles: straight walls that block tangents crossing them.
//
// Errors (sentinel):
//
//   - ErrNoDisks            if the disk list is empty.
//   - ErrDuplicateDiskID    if two disks share an id.
//   - ErrNonPositiveRadius  if any disk has radius ≤ 0.
//
// Complexity: O(n²) tangent candidates, each filtered against O(n) disks and
// O(m) obstacle walls, so O(n³ + n²·m) worst case for n disks and m walls.
// Typical layouts hold tens of disks, where a full rebuild is microseconds.
package tangency
