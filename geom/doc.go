// Package geom provides the planar primitives shared by every envelope
// solver in taut: points, disks, oriented arcs, tangent segments, and the
// exact constructions that connect them.
//
// Overview:
//
//   - A Disk is a circle with an identifier; envelopes wrap disk boundaries.
//   - A Chirality tags the wrap direction of an arc: CCW ("L") or CW ("R").
//   - Bitangents computes the up-to-four common tangent lines of two disks,
//     each tagged with a TangentType (LSL, RSR, LSR, RSL) naming the wrap
//     direction it is compatible with on the start and end disk.
//   - PointTangents computes the two tangent lines from a free point to a
//     disk, tagged with the wrap direction they feed into.
//   - ArcLength measures a directed arc between two boundary angles without
//     ever choosing the "short way around" on its own: the chirality decides.
//   - IntersectsDisk and SegmentsIntersect are the collision predicates used
//     to keep envelopes from cutting through material.
//
// Conventions:
//
//   - Angles are radians measured counter-clockwise from the positive x-axis,
//     exactly as math.Atan2 reports them.
//   - Chirality CCW means boundary angles increase along the travel direction;
//     CW means they decrease. There is no hidden "shorter arc" normalization
//     anywhere in this package.
//   - Geometric non-existence (tangents that do not exist, arcs of zero
//     extent) is reported through empty results and zero values, never through
//     errors. Errors are reserved for malformed inputs at the solver layers.
//
// Numeric policy:
//
//   - All acos/asin inputs are clamped to [-1, 1] before use; no NaN ever
//     escapes a constructor.
//   - Existence checks use the absolute tolerance Eps (1e-9) so mutually
//     tangent disks still admit their degenerate inner tangents.
//   - Collision predicates ignore endpoint contact via ParamEps and forgive
//     grazing chords shorter than GrazeFraction of the disk radius.
//
// Complexity: every function in this package is O(1) except the sampling
// helpers, which are O(n) in the requested sample count.
package geom
