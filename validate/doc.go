// Package validate checks finished paths against the two geometric rules
// every envelope must satisfy: no self-intersections and no penetration
// into disk interiors.
//
// The checks are sampling-based. Each segment is flattened into a chord
// chain (SamplesPerSegment chords per segment) and the chains are tested
// pairwise for proper crossings; sample points are tested against every
// disk the segment does not legitimately touch. Contact with a segment's
// own disk is never an issue: arcs ride their rim and tangents meet their
// endpoint disks by construction.
//
// SelfIntersections and OutsideDisks report one class of finding each;
// Run merges both into a Summary. A Summary with Valid == false carries
// human-readable issue strings with approximate coordinates, meant for
// logs and test failures rather than machine consumption.
//
// Tolerances:
//
//   - Eps gates the penetration test: a point counts as inside only when
//     it sits more than Eps below the rim. The default of 1e-6 absorbs
//     the floating-point dust of reconstruction while still catching any
//     real overlap.
//   - Crossing detection has no tolerance knob: it uses strict proper
//     intersection, so chords that merely share an endpoint (as every
//     adjacent pair does) never count.
package validate
