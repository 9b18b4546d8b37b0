// Package sequence solves the fixed-visitation-order envelope problem: given
// a tangency graph and an ordered list of disk ids, it produces the shortest
// chain of boundary arcs and tangent runs that visits the disks in exactly
// that order.
//
// Overview:
//
//   - The state space is (step, chirality): at each disk of the sequence the
//     envelope wraps either counter-clockwise or clockwise. Dynamic
//     programming over the steps finds the cheapest chirality assignment.
//   - Only outer tangents (LSL, RSR) are eligible transitions in the free
//     search. Outer tangents preserve the wrap direction, which is what
//     guarantees the envelope cannot cross itself between consecutive disks.
//   - The transition cost charges the arc needed on the departure disk to
//     rotate from the previous tangent's landing angle to the next tangent's
//     departure angle, strictly in the wrap direction (wrapping past 2π if
//     that is what the chirality demands), plus the tangent's straight length.
//   - With WithChiralities the caller pins the wrap direction per disk and
//     the solver does a direct per-hop edge lookup instead of the DP; inner
//     tangents (LSR, RSL) become reachable this way, since a pinned flip
//     names them explicitly. If any pinned hop has no surviving edge (the
//     topology went stale after a disk moved), the solver falls back to the
//     full DP search rather than failing.
//   - WithClosed closes the loop: the closing tangent from the last disk
//     back to the first and the two wrap arcs around the seam are charged
//     and emitted, producing an alternating cycle of tangents and arcs.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph is nil.
//   - ErrShortSequence   if fewer than two disks are named.
//   - ErrUnknownDisk     if a named disk is not in the graph.
//   - ErrRepeatedDisk    if the same disk appears twice in a row (including
//     the wrap-around pair of a closed sequence).
//   - ErrChiralityCount  if WithChiralities supplies a list whose length is
//     not exactly one entry per disk.
//   - ErrNoPath          if no chirality assignment reaches the last disk.
//
// Determinism: ties resolve by the fixed iteration order (counter-clockwise
// chain first); total lengths are rounded to 1e-9 to keep serialized output
// byte-stable across platforms.
//
// Complexity: O(n) DP steps over a constant number of chirality states with
// O(1) edge lookups, so O(n) overall for a sequence of n disks.
package sequence
