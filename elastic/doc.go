// Package elastic separates an envelope's shape from its coordinates so the
// shape survives disk motion.
//
// A solved path is concrete: every arc has a center and every tangent has
// endpoints. FromPath strips that down to the topological skeleton: which
// disks, in what order, wrapped in which direction, connected by which
// tangent class. The skeleton is stable JSON and contains no coordinates at
// all. Later, against moved or resized disks, Reconstruct re-derives each
// tangent from live geometry by its stored type and slides each arc's
// endpoints onto the new touch points. As long as the topology stays valid
// the envelope follows the disks like a rubber band.
//
// Topology does go stale: disks drift until a stored tangent class no longer
// exists, or a tangent starts cutting through a disk it used to clear.
// Reconstruct reports the first hard failure as an error; Validate walks the
// whole envelope and accumulates every issue into a Report so a caller can
// decide whether to re-solve.
//
// Errors (sentinel):
//
//   - ErrEmptyPath    if FromPath is given nothing to freeze.
//   - ErrFreeTangent  if a path tangent has no disk binding on one side and
//     therefore no coordinate-free identity.
//   - ErrUnknownDisk  if a stored disk id is absent from the live disk set.
//   - ErrNoTangent    if a stored tangent type no longer exists between its
//     two disks.
//
// The JSON form is a tagged union: arcs serialize with "type":"diskArc" and
// tangents with "type":"tangent", and Envelope.UnmarshalJSON dispatches on
// the tag.
package elastic
